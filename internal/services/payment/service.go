// Package payment assembles payment requests end to end: validate the
// input, mint a fresh reference, encode the canonical URL, render its QR
// image and stamp the validity window. Each submission is independent;
// nothing here is persisted or mutated after creation.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "hawamoni/internal/errors"
	"hawamoni/internal/models"
	"hawamoni/internal/services/qrgen"
	"hawamoni/internal/services/reference"
	"hawamoni/internal/solanapay"
	"hawamoni/internal/validation"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	refs reference.Generator
	qr   qrgen.Renderer
	cfg  Config
	now  func() time.Time
}

func NewService(refs reference.Generator, qr qrgen.Renderer, cfg Config) Service {
	return &service{
		refs: refs,
		qr:   qr,
		cfg:  cfg.withDefaults(),
		now:  time.Now,
	}
}

func (s *service) CreateDirectRequest(ctx context.Context, req models.DirectRequest) (*models.EncodedPayment, error) {
	recipient, err := validation.Recipient(req.Recipient)
	if err != nil {
		return nil, err
	}
	amount, err := validation.Amount(req.Amount)
	if err != nil {
		return nil, err
	}

	message := req.Memo
	if message == "" {
		message = "Payment request from Hawamoni"
	}
	return s.generate(recipient, amount, labelDirect, message, req.Memo)
}

func (s *service) CreateSplitBill(ctx context.Context, req models.SplitBillRequest) ([]models.SplitShare, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, &apperrors.DomainError{
			Code:    "INVALID_DESCRIPTION",
			Message: "description is required",
		}
	}
	creator, err := validation.Recipient(req.CreatedBy)
	if err != nil {
		return nil, err
	}
	total, err := validation.Amount(req.TotalAmount)
	if err != nil {
		return nil, err
	}
	if err := validation.Participants(req.Participants); err != nil {
		return nil, err
	}

	count := len(req.Participants)
	shares := SplitShares(total, count)
	message := fmt.Sprintf("Split payment: %s", req.Description)
	memo := fmt.Sprintf("Split %s among %d people", total, count)

	out := make([]models.SplitShare, 0, count)
	for i, p := range req.Participants {
		encoded, err := s.generate(creator, shares[i], labelSplitBill, message, memo)
		if err != nil {
			return nil, err
		}
		out = append(out, models.SplitShare{
			Participant: p,
			Amount:      shares[i],
			Payment:     encoded,
		})
	}
	return out, nil
}

func (s *service) CreateGroupDues(ctx context.Context, req models.GroupDuesRequest) (*models.EncodedPayment, error) {
	collector, err := validation.Recipient(req.CollectedBy)
	if err != nil {
		return nil, err
	}
	amount, err := validation.Amount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validation.Category(req.Category); err != nil {
		return nil, err
	}
	if req.DueDate != nil && req.DueDate.Before(s.now()) {
		return nil, &apperrors.DomainError{
			Code:    "INVALID_DUE_DATE",
			Message: "due date is in the past",
		}
	}

	groupName := strings.TrimSpace(req.GroupName)
	if groupName == "" {
		groupName = "Group"
	}
	label := groupName + " - Dues Payment"
	message := "Group dues: " + req.Description
	memo := "Dues payment for " + groupName
	return s.generate(collector, amount, label, message, memo)
}

func (s *service) Parse(raw string) (*solanapay.Fields, error) {
	return solanapay.ParseURL(raw)
}

func (s *service) ShareableLink(paymentURL, title string) string {
	if title == "" {
		title = "Solana Payment Request"
	}
	return s.cfg.BaseURL + "/payment/share?url=" + url.QueryEscape(paymentURL) +
		"&title=" + url.QueryEscape(title)
}

// generate runs the encode-then-render pipeline for one request. The
// reference is minted here so it is fresh per request; everything after
// it is deterministic.
func (s *service) generate(recipient solana.PublicKey, amount decimal.Decimal, label, message, memo string) (*models.EncodedPayment, error) {
	refs, err := s.refs.Generate(1)
	if err != nil {
		return nil, err
	}

	encoded, err := solanapay.EncodeURL(solanapay.Fields{
		Recipient:  recipient,
		Amount:     &amount,
		References: refs,
		Label:      label,
		Message:    message,
		Memo:       memo,
	})
	if err != nil {
		return nil, apperrors.ErrEncodeFailed.WithCause(err)
	}

	png, err := s.qr.Render(encoded, s.cfg.QRSize, s.cfg.QRLevel)
	if err != nil {
		return nil, err
	}

	refStrings := make([]string, len(refs))
	for i, r := range refs {
		refStrings[i] = r.String()
	}

	return &models.EncodedPayment{
		ID:            uuid.NewString(),
		Recipient:     recipient.String(),
		Amount:        amount,
		Label:         label,
		Message:       message,
		Memo:          memo,
		URL:           encoded,
		QRImage:       png,
		References:    refStrings,
		ShareableLink: s.ShareableLink(encoded, label),
		ExpiresAt:     s.now().Add(s.cfg.Timeout),
	}, nil
}

// SplitShares divides total equally among n participants. Shares are
// truncated to lamport precision and the remainder lands on the first
// participant, so the shares always sum exactly to the total.
func SplitShares(total decimal.Decimal, n int) []decimal.Decimal {
	count := decimal.NewFromInt(int64(n))
	share := total.Div(count).Truncate(shareScale)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = share
	}
	shares[0] = share.Add(total.Sub(share.Mul(count)))
	return shares
}
