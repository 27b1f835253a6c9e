package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DuesCategory enumerates the accepted group-dues categories.
type DuesCategory string

const (
	DuesMembership DuesCategory = "membership"
	DuesEvent      DuesCategory = "event"
	DuesAcademic   DuesCategory = "academic"
	DuesOther      DuesCategory = "other"
)

func (c DuesCategory) String() string { return string(c) }

// PaymentRequest is the transient shape every request flavor reduces to
// before encoding. It is never persisted by this layer and never mutated
// after creation.
type PaymentRequest struct {
	Recipient  string          `json:"recipient"`
	Amount     decimal.Decimal `json:"amount"`
	SPLToken   string          `json:"spl_token,omitempty"`
	Label      string          `json:"label,omitempty"`
	Message    string          `json:"message,omitempty"`
	Memo       string          `json:"memo,omitempty"`
	References []string        `json:"references"`
	ExpiresAt  time.Time       `json:"expires_at"`
}

// EncodedPayment is the canonical URL plus the artifacts derived from it.
// QRImage is a pure function of URL and is regenerated, never patched.
type EncodedPayment struct {
	ID            string          `json:"id"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	Label         string          `json:"label,omitempty"`
	Message       string          `json:"message,omitempty"`
	Memo          string          `json:"memo,omitempty"`
	URL           string          `json:"url"`
	QRImage       []byte          `json:"qr_image"`
	References    []string        `json:"references"`
	ShareableLink string          `json:"shareable_link"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// DirectRequest is a single payment request to one recipient.
type DirectRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Memo      string `json:"memo,omitempty"`
}

// Participant is one member of a split bill.
type Participant struct {
	Name          string `json:"name"`
	WalletAddress string `json:"wallet_address"`
}

// SplitBillRequest divides a total equally among participants.
type SplitBillRequest struct {
	Description  string        `json:"description"`
	TotalAmount  string        `json:"total_amount"`
	CreatedBy    string        `json:"created_by"`
	Participants []Participant `json:"participants"`
}

// SplitShare pairs a participant with their computed share and the
// encoded request for that share.
type SplitShare struct {
	Participant Participant     `json:"participant"`
	Amount      decimal.Decimal `json:"amount"`
	Payment     *EncodedPayment `json:"payment"`
}

// GroupDuesRequest collects a fixed dues amount for a group.
type GroupDuesRequest struct {
	GroupName   string       `json:"group_name"`
	Amount      string       `json:"amount"`
	Description string       `json:"description"`
	Category    DuesCategory `json:"category"`
	CollectedBy string       `json:"collected_by"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
}
