package group

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fairsplit/fairsplit/internal/money"
)

// Common errors
var (
	ErrGroupNotFound        = errors.New("group not found")
	ErrInvalidGroupName     = errors.New("group name must not be empty")
	ErrEmptyParticipantList = errors.New("at least one participant is required")
	ErrTooManyParticipants  = errors.New("too many participants")
	ErrDuplicateParticipant = errors.New("duplicate participant names are not allowed")
	ErrGroupNameTaken       = errors.New("group name already exists")
	ErrGroupLimitReached    = errors.New("maximum group limit reached")
)

// ExpenseStore is the slice of the expense repository the group service
// needs: the running total for responses and the cascade when a group is
// deleted.
type ExpenseStore interface {
	TotalByGroup(ctx context.Context, groupID string) (money.Money, error)
	DeleteByGroup(ctx context.Context, groupID string) error
}

// Service handles group business logic
type Service struct {
	repo     Repository
	expenses ExpenseStore
}

// NewService creates a new group service
func NewService(repo Repository, expenses ExpenseStore) *Service {
	return &Service{repo: repo, expenses: expenses}
}

// Create validates the request and registers a new group
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	name := strings.TrimSpace(req.GroupName)
	if name == "" {
		return nil, ErrInvalidGroupName
	}
	if len(req.Participants) == 0 {
		return nil, ErrEmptyParticipantList
	}
	if len(req.Participants) > MaxParticipants {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyParticipants, MaxParticipants)
	}

	seen := make(map[string]struct{}, len(req.Participants))
	for _, p := range req.Participants {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParticipant, p)
		}
		seen[p] = struct{}{}
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= MaxGroups {
		return nil, fmt.Errorf("%w: limit is %d", ErrGroupLimitReached, MaxGroups)
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrGroupNameTaken, name)
	}

	group := &Group{
		GroupID:      uuid.NewString(),
		GroupName:    name,
		Participants: append([]string(nil), req.Participants...),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	return group, nil
}

// List retrieves all groups in creation order
func (s *Service) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}

// TotalExpense returns the sum of all expense amounts recorded for a group
func (s *Service) TotalExpense(ctx context.Context, groupID string) (money.Money, error) {
	return s.expenses.TotalByGroup(ctx, groupID)
}

// Delete removes a group and its entire ledger. Irreversible.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.expenses.DeleteByGroup(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
