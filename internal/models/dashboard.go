package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus tracks a withdrawal request through the approval quorum.
type RequestStatus string

const (
	RequestPending        RequestStatus = "pending"
	RequestApproved       RequestStatus = "approved"
	RequestRejected       RequestStatus = "rejected"
	RequestReadyToExecute RequestStatus = "ready_to_execute"
	RequestExecuted       RequestStatus = "executed"
	RequestCancelled      RequestStatus = "cancelled"
)

// Member is a group member as shown on the dashboard.
type Member struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	WalletAddress string    `json:"wallet_address"`
	JoinedAt      time.Time `json:"joined_at"`
	VotingWeight  int       `json:"voting_weight"`
}

// Group is a treasury group. Balance is denominated in SOL; the on-chain
// program owns the actual funds at PDAAddress.
type Group struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	ApprovalsRequired int             `json:"approvals_required"`
	CurrentApprovals  int             `json:"current_approvals"`
	PDAAddress        string          `json:"pda_address"`
	Members           []Member        `json:"members"`
	Role              string          `json:"role"`
	CreatedAt         time.Time       `json:"created_at"`
	LastActivity      time.Time       `json:"last_activity"`
}

// Approval is one member's sign-off on a withdrawal request.
type Approval struct {
	MemberID  string    `json:"member_id"`
	Approved  bool      `json:"approved"`
	Timestamp time.Time `json:"timestamp"`
}

// WithdrawalRequest is a pending multi-signature withdrawal, read-only at
// this layer; the quorum is enforced on-chain.
type WithdrawalRequest struct {
	ID               string          `json:"id"`
	GroupID          string          `json:"group_id"`
	RequesterName    string          `json:"requester_name"`
	RecipientAddress string          `json:"recipient_address"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           string          `json:"reason"`
	Status           RequestStatus   `json:"status"`
	Approvals        []Approval      `json:"approvals"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Activity is one entry in the group activity feed.
type Activity struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// TreasuryStats aggregates dashboard headline numbers.
type TreasuryStats struct {
	TotalBalance    decimal.Decimal `json:"total_balance"`
	GroupCount      int             `json:"group_count"`
	PendingRequests int             `json:"pending_requests"`
	MemberCount     int             `json:"member_count"`
}
