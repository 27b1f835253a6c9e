// Package validation checks user-supplied payment input before any
// generation work happens. Every failure is field-attributable and comes
// back as a DomainError safe to show next to the offending field.
package validation

import (
	"fmt"
	"strings"

	"hawamoni/internal/errors"
	"hawamoni/internal/models"
	"hawamoni/internal/solanapay"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Recipient validates a wallet address.
func Recipient(addr string) (solana.PublicKey, error) {
	pk, err := solanapay.ValidateAddress(addr)
	if err != nil {
		return solana.PublicKey{}, errors.ErrInvalidRecipient.WithCause(err)
	}
	return pk, nil
}

// Amount parses a decimal amount string and requires it to be positive.
// Parsing as a decimal keeps the caller's precision; native floats would
// not survive 9 fractional digits.
func Amount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.ErrInvalidAmount.WithCause(err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, errors.ErrInvalidAmount
	}
	return d, nil
}

// Category checks a dues category against the enumerated set.
func Category(c models.DuesCategory) error {
	switch c {
	case models.DuesMembership, models.DuesEvent, models.DuesAcademic, models.DuesOther:
		return nil
	default:
		return errors.ErrInvalidCategory
	}
}

// Participants validates every split-bill participant independently. A
// single bad entry blocks the whole submission; the returned error names
// the offending participant.
func Participants(list []models.Participant) error {
	if len(list) == 0 {
		return errors.ErrNoParticipants
	}
	for i, p := range list {
		if strings.TrimSpace(p.Name) == "" {
			return &errors.DomainError{
				Code:    "INVALID_PARTICIPANT",
				Message: fmt.Sprintf("participant %d: name is required", i+1),
			}
		}
		if _, err := solanapay.ValidateAddress(p.WalletAddress); err != nil {
			return &errors.DomainError{
				Code:    "INVALID_PARTICIPANT",
				Message: fmt.Sprintf("participant %d (%s): invalid wallet address", i+1, p.Name),
				Err:     err,
			}
		}
	}
	return nil
}
