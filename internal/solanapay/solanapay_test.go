package solanapay

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRecipient = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgHkv"
	testReference = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	testMint      = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

func mustAmount(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

func TestEncodeURL(t *testing.T) {
	recipient, err := ValidateAddress(testRecipient)
	require.NoError(t, err)
	reference := solana.MustPublicKeyFromBase58(testReference)
	mint := solana.MustPublicKeyFromBase58(testMint)

	t.Run("full fields in fixed order", func(t *testing.T) {
		url, err := EncodeURL(Fields{
			Recipient:  recipient,
			Amount:     mustAmount(t, "1.5"),
			SPLToken:   &mint,
			References: []solana.PublicKey{reference},
			Label:      "Hawamoni - Campus Payment",
			Message:    "Payment request",
			Memo:       "rent",
		})
		require.NoError(t, err)
		assert.Equal(t,
			"solana:"+testRecipient+
				"?amount=1.5"+
				"&spl-token="+testMint+
				"&reference="+testReference+
				"&label=Hawamoni+-+Campus+Payment"+
				"&message=Payment+request"+
				"&memo=rent",
			url)
	})

	t.Run("direct request example", func(t *testing.T) {
		url, err := EncodeURL(Fields{
			Recipient:  recipient,
			Amount:     mustAmount(t, "1.5"),
			References: []solana.PublicKey{reference},
			Memo:       "rent",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, Scheme))
		assert.Contains(t, url, testRecipient)
		assert.Contains(t, url, "amount=1.5")
		assert.Contains(t, url, "reference="+testReference)
	})

	t.Run("deterministic", func(t *testing.T) {
		f := Fields{
			Recipient:  recipient,
			Amount:     mustAmount(t, "0.000000001"),
			References: []solana.PublicKey{reference},
			Label:      "label with spaces & symbols",
			Memo:       "rent",
		}
		first, err := EncodeURL(f)
		require.NoError(t, err)
		second, err := EncodeURL(f)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		url, err := EncodeURL(Fields{Recipient: recipient})
		require.NoError(t, err)
		assert.Equal(t, "solana:"+testRecipient, url)
	})

	t.Run("missing recipient", func(t *testing.T) {
		_, err := EncodeURL(Fields{Amount: mustAmount(t, "1")})
		assert.ErrorIs(t, err, ErrMissingRecipient)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := EncodeURL(Fields{Recipient: recipient, Amount: mustAmount(t, "-1")})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}

func TestParseURL(t *testing.T) {
	recipient := solana.MustPublicKeyFromBase58(testRecipient)
	reference := solana.MustPublicKeyFromBase58(testReference)

	t.Run("round trip preserves amount exactly", func(t *testing.T) {
		amounts := []string{
			"1", "1.5", "0.000000001", "123456789.123456789",
			"30.00", "10.00", "0.1", "999999999.999999999",
		}
		for _, s := range amounts {
			t.Run(s, func(t *testing.T) {
				amount := mustAmount(t, s)
				f := Fields{
					Recipient:  recipient,
					Amount:     amount,
					References: []solana.PublicKey{reference},
				}
				encoded, err := EncodeURL(f)
				require.NoError(t, err)
				parsed, err := ParseURL(encoded)
				require.NoError(t, err)
				require.NotNil(t, parsed.Amount)
				assert.True(t, parsed.Amount.Equal(*amount),
					"parsed %s, want %s", parsed.Amount, amount)
			})
		}
	})

	t.Run("round trip preserves text fields", func(t *testing.T) {
		f := Fields{
			Recipient:  recipient,
			Amount:     mustAmount(t, "2.5"),
			References: []solana.PublicKey{reference},
			Label:      "Family Savings - Dues Payment",
			Message:    "Group dues: October",
			Memo:       "Dues payment for Family Savings",
		}
		encoded, err := EncodeURL(f)
		require.NoError(t, err)
		parsed, err := ParseURL(encoded)
		require.NoError(t, err)
		assert.Equal(t, f.Label, parsed.Label)
		assert.Equal(t, f.Message, parsed.Message)
		assert.Equal(t, f.Memo, parsed.Memo)
		assert.Equal(t, f.References, parsed.References)
		assert.Equal(t, recipient, parsed.Recipient)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := ParseURL("bitcoin:" + testRecipient)
		assert.ErrorIs(t, err, ErrNotPaymentURL)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		_, err := ParseURL("solana:not-a-valid-address?amount=1")
		assert.ErrorIs(t, err, ErrInvalidRecipient)
	})

	t.Run("scientific notation rejected", func(t *testing.T) {
		_, err := ParseURL("solana:" + testRecipient + "?amount=1e9")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("solana:"+testRecipient+"?amount=1.5"))
	assert.False(t, IsValid("https://example.com"))
	assert.False(t, IsValid("solana:junk"))
}

func TestValidateAddress(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pk, err := ValidateAddress(testRecipient)
		require.NoError(t, err)
		assert.Equal(t, testRecipient, pk.String())
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := ValidateAddress("not-a-valid-address")
		assert.ErrorIs(t, err, ErrInvalidRecipient)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ValidateAddress("")
		assert.ErrorIs(t, err, ErrMissingRecipient)
	})
}
