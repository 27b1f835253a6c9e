// Package dashboard serves the read-only treasury view. The data is a
// static snapshot; the remote backend and the on-chain program own the
// live records.
package dashboard

import (
	apperrors "hawamoni/internal/errors"
	"hawamoni/internal/models"

	"github.com/shopspring/decimal"
)

var ErrGroupNotFound = &apperrors.DomainError{
	Code:    "GROUP_NOT_FOUND",
	Message: "group not found",
}

type Service interface {
	Groups() []models.Group
	Group(id string) (*models.Group, error)
	Requests(groupID string) []models.WithdrawalRequest
	Activity(groupID string) []models.Activity
	Stats() models.TreasuryStats
}

type service struct {
	groups   []models.Group
	requests []models.WithdrawalRequest
	activity []models.Activity
}

func NewService() Service {
	return &service{
		groups:   seedGroups,
		requests: seedRequests,
		activity: seedActivity,
	}
}

func (s *service) Groups() []models.Group {
	return s.groups
}

func (s *service) Group(id string) (*models.Group, error) {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return &s.groups[i], nil
		}
	}
	return nil, ErrGroupNotFound
}

func (s *service) Requests(groupID string) []models.WithdrawalRequest {
	if groupID == "" {
		return s.requests
	}
	out := make([]models.WithdrawalRequest, 0)
	for _, r := range s.requests {
		if r.GroupID == groupID {
			out = append(out, r)
		}
	}
	return out
}

func (s *service) Activity(groupID string) []models.Activity {
	if groupID == "" {
		return s.activity
	}
	out := make([]models.Activity, 0)
	for _, a := range s.activity {
		if a.GroupID == groupID {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) Stats() models.TreasuryStats {
	total := decimal.Zero
	members := map[string]struct{}{}
	for _, g := range s.groups {
		total = total.Add(g.Balance)
		for _, m := range g.Members {
			members[m.ID] = struct{}{}
		}
	}
	pending := 0
	for _, r := range s.requests {
		if r.Status == models.RequestPending {
			pending++
		}
	}
	return models.TreasuryStats{
		TotalBalance:    total,
		GroupCount:      len(s.groups),
		PendingRequests: pending,
		MemberCount:     len(members),
	}
}
