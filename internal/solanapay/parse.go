package solanapay

import (
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// ParseURL decodes a transfer request URL back into its fields.
// It is the inverse of EncodeURL: for any valid fields f,
// ParseURL(EncodeURL(f)) returns f with amounts compared exactly.
func ParseURL(raw string) (*Fields, error) {
	if !strings.HasPrefix(raw, Scheme) {
		return nil, ErrNotPaymentURL
	}
	rest := strings.TrimPrefix(raw, Scheme)

	recipientPart := rest
	queryPart := ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		recipientPart = rest[:i]
		queryPart = rest[i+1:]
	}

	recipient, err := ValidateAddress(recipientPart)
	if err != nil {
		return nil, err
	}
	f := &Fields{Recipient: recipient}

	if queryPart == "" {
		return f, nil
	}
	values, err := url.ParseQuery(queryPart)
	if err != nil {
		return nil, ErrNotPaymentURL
	}

	if s := values.Get("amount"); s != "" {
		if !validAmountString(s) {
			return nil, ErrInvalidAmount
		}
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		if amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		f.Amount = &amount
	}
	if s := values.Get("spl-token"); s != "" {
		mint, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, ErrInvalidSPLToken
		}
		f.SPLToken = &mint
	}
	for _, s := range values["reference"] {
		ref, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, ErrInvalidReference
		}
		f.References = append(f.References, ref)
	}
	f.Label = values.Get("label")
	f.Message = values.Get("message")
	f.Memo = values.Get("memo")

	return f, nil
}

// IsValid reports whether raw parses as a transfer request URL with a
// recipient present.
func IsValid(raw string) bool {
	f, err := ParseURL(raw)
	return err == nil && !f.Recipient.IsZero()
}
