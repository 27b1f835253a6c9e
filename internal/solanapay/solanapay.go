// Package solanapay encodes and parses Solana Pay transfer request URLs.
//
// A transfer request has the form:
//
//	solana:<recipient>?amount=<n>&spl-token=<mint>&reference=<pk>&label=<s>&message=<s>&memo=<s>
//
// Encoding is deterministic: the same fields always produce a
// byte-identical URL. Optional fields are omitted entirely when unset and
// field order is fixed.
package solanapay

import (
	"errors"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Scheme is the URL scheme prefix for Solana Pay transfer requests.
const Scheme = "solana:"

var (
	ErrMissingRecipient = errors.New("solanapay: recipient is required")
	ErrInvalidRecipient = errors.New("solanapay: recipient is not a valid public key")
	ErrNegativeAmount   = errors.New("solanapay: amount must not be negative")
	ErrInvalidAmount    = errors.New("solanapay: amount is not a plain decimal number")
	ErrInvalidReference = errors.New("solanapay: reference is not a valid public key")
	ErrInvalidSPLToken  = errors.New("solanapay: spl-token is not a valid mint address")
	ErrNotPaymentURL    = errors.New("solanapay: not a solana pay URL")
)

// Fields are the logical contents of a transfer request URL.
type Fields struct {
	Recipient  solana.PublicKey
	Amount     *decimal.Decimal // nil means the payer chooses the amount
	SPLToken   *solana.PublicKey
	References []solana.PublicKey
	Label      string
	Message    string
	Memo       string
}

// ValidateAddress checks that s is a syntactically valid base58-encoded
// 32-byte public key and returns it.
func ValidateAddress(s string) (solana.PublicKey, error) {
	if strings.TrimSpace(s) == "" {
		return solana.PublicKey{}, ErrMissingRecipient
	}
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, ErrInvalidRecipient
	}
	return pk, nil
}

// validAmount rejects negative values and anything decimal parsed from a
// non-plain form. Scientific notation never appears in a transfer URL.
func validAmountString(s string) bool {
	return !strings.ContainsAny(s, "eE+")
}
