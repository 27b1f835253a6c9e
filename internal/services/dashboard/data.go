package dashboard

import (
	"time"

	"hawamoni/internal/models"

	"github.com/shopspring/decimal"
)

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

var seedMembers = []models.Member{
	{
		ID:            "1",
		Name:          "Akeem Odebiyi",
		Email:         "akeem@example.com",
		Role:          "owner",
		WalletAddress: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgHkv",
		JoinedAt:      ts("2025-09-01T10:00:00Z"),
		VotingWeight:  2,
	},
	{
		ID:            "2",
		Name:          "Sarah Johnson",
		Email:         "sarah@example.com",
		Role:          "member",
		WalletAddress: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		JoinedAt:      ts("2025-09-05T14:30:00Z"),
		VotingWeight:  1,
	},
	{
		ID:            "3",
		Name:          "David Chen",
		Email:         "david@example.com",
		Role:          "member",
		WalletAddress: "AQoKYV7tYpTrFZN6P5oUufbQKAUr9mNYGe1TTJC9wajM",
		JoinedAt:      ts("2025-09-08T09:15:00Z"),
		VotingWeight:  1,
	},
	{
		ID:            "4",
		Name:          "Grace Okafor",
		Email:         "grace@example.com",
		Role:          "member",
		WalletAddress: "HdAobhGso5gDbhEjcqMcnJMBjX7pT9FzWe7JqSMqrMCJ",
		JoinedAt:      ts("2025-09-10T16:45:00Z"),
		VotingWeight:  1,
	},
}

var seedGroups = []models.Group{
	{
		ID:                "group-1",
		Name:              "Family Savings",
		Balance:           decimal.RequireFromString("2.5"),
		ApprovalsRequired: 3,
		CurrentApprovals:  1,
		PDAAddress:        "FamSav1ng2PDA3xKXtg2CW87d97TXJSDpbD5jBkheTqA",
		Members:           seedMembers,
		Role:              "owner",
		CreatedAt:         ts("2025-09-01T10:00:00Z"),
		LastActivity:      ts("2025-09-20T15:30:00Z"),
	},
	{
		ID:                "group-2",
		Name:              "Office Equipment Fund",
		Balance:           decimal.RequireFromString("1.2"),
		ApprovalsRequired: 2,
		CurrentApprovals:  2,
		PDAAddress:        "OffEqu1p2PDA9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsG",
		Members:           seedMembers[:3],
		Role:              "member",
		CreatedAt:         ts("2025-09-05T14:00:00Z"),
		LastActivity:      ts("2025-09-22T11:20:00Z"),
	},
	{
		ID:                "group-3",
		Name:              "Travel Fund 2025",
		Balance:           decimal.RequireFromString("0.8"),
		ApprovalsRequired: 4,
		CurrentApprovals:  0,
		PDAAddress:        "TrvFnd252PDAFZNPLoUufbQKAUr9mNYGe1TTJC9wajM",
		Members:           seedMembers,
		Role:              "member",
		CreatedAt:         ts("2025-09-15T12:00:00Z"),
		LastActivity:      ts("2025-09-23T08:45:00Z"),
	},
}

var seedRequests = []models.WithdrawalRequest{
	{
		ID:               "req-1",
		GroupID:          "group-1",
		RequesterName:    "Sarah Johnson",
		RecipientAddress: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		Amount:           decimal.RequireFromString("0.4"),
		Reason:           "Medical emergency fund",
		Status:           models.RequestPending,
		Approvals: []models.Approval{
			{MemberID: "1", Approved: true, Timestamp: ts("2025-09-21T09:00:00Z")},
		},
		CreatedAt: ts("2025-09-20T15:30:00Z"),
	},
	{
		ID:               "req-2",
		GroupID:          "group-2",
		RequesterName:    "David Chen",
		RecipientAddress: "AQoKYV7tYpTrFZN6P5oUufbQKAUr9mNYGe1TTJC9wajM",
		Amount:           decimal.RequireFromString("0.25"),
		Reason:           "New office chair",
		Status:           models.RequestReadyToExecute,
		Approvals: []models.Approval{
			{MemberID: "1", Approved: true, Timestamp: ts("2025-09-22T10:00:00Z")},
			{MemberID: "2", Approved: true, Timestamp: ts("2025-09-22T11:00:00Z")},
		},
		CreatedAt: ts("2025-09-22T09:30:00Z"),
	},
	{
		ID:               "req-3",
		GroupID:          "group-1",
		RequesterName:    "Grace Okafor",
		RecipientAddress: "HdAobhGso5gDbhEjcqMcnJMBjX7pT9FzWe7JqSMqrMCJ",
		Amount:           decimal.RequireFromString("0.1"),
		Reason:           "Groceries reimbursement",
		Status:           models.RequestExecuted,
		Approvals: []models.Approval{
			{MemberID: "1", Approved: true, Timestamp: ts("2025-09-18T12:00:00Z")},
			{MemberID: "2", Approved: true, Timestamp: ts("2025-09-18T13:00:00Z")},
			{MemberID: "3", Approved: true, Timestamp: ts("2025-09-18T14:00:00Z")},
		},
		CreatedAt: ts("2025-09-18T11:00:00Z"),
	},
}

var seedActivity = []models.Activity{
	{
		ID:        "act-1",
		GroupID:   "group-1",
		Type:      "deposit",
		Actor:     "Akeem Odebiyi",
		Detail:    "Deposited 1.0 SOL",
		Timestamp: ts("2025-09-19T10:00:00Z"),
	},
	{
		ID:        "act-2",
		GroupID:   "group-1",
		Type:      "request_created",
		Actor:     "Sarah Johnson",
		Detail:    "Requested 0.4 SOL for medical emergency fund",
		Timestamp: ts("2025-09-20T15:30:00Z"),
	},
	{
		ID:        "act-3",
		GroupID:   "group-2",
		Type:      "request_approved",
		Actor:     "Sarah Johnson",
		Detail:    "Approved withdrawal request for office chair",
		Timestamp: ts("2025-09-22T11:00:00Z"),
	},
	{
		ID:        "act-4",
		GroupID:   "group-3",
		Type:      "member_joined",
		Actor:     "Grace Okafor",
		Detail:    "Joined the group",
		Timestamp: ts("2025-09-23T08:45:00Z"),
	},
}
