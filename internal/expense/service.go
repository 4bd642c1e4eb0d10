package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/group"
)

// Common errors
var (
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrFutureDate       = errors.New("expense date cannot be in the future")
	ErrInvalidDate      = errors.New("invalid expense date")
)

// groupLocks hands out one mutex per group so that ledger appends are
// serialized per group without ever locking two groups at once.
type groupLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *groupLocks) get(groupID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	gl, ok := l.m[groupID]
	if !ok {
		gl = &sync.Mutex{}
		l.m[groupID] = gl
	}
	return gl
}

// Service handles ledger business logic
type Service struct {
	repo   Repository
	groups group.Repository
	locks  groupLocks
}

// NewService creates a new expense service
func NewService(repo Repository, groups group.Repository) *Service {
	return &Service{repo: repo, groups: groups}
}

// Create validates the request, computes the share mapping and appends
// the expense to the group's ledger. Validation and append run under the
// group's lock so a rejected expense never leaves partial state and
// concurrent appends observe a fully committed ledger.
func (s *Service) Create(ctx context.Context, groupID string, req *CreateExpenseRequest) (*Expense, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s", group.ErrGroupNotFound, groupID)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !req.Amount.IsPositive() {
		return nil, split.ErrInvalidAmount
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if !g.HasParticipant(req.PaidBy) {
		return nil, fmt.Errorf("%w: payer %q", split.ErrUnknownParticipant, req.PaidBy)
	}

	strategy := split.ForContributions(req.Contributions)

	lock := s.locks.get(groupID)
	lock.Lock()
	defer lock.Unlock()

	shares, err := strategy.Calculate(req.Amount, g.Participants, req.Contributions)
	if err != nil {
		return nil, err
	}

	expense := &Expense{
		ExpenseID:   uuid.NewString(),
		GroupID:     groupID,
		Description: description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		Date:        date,
		SplitType:   strategy.Type(),
		Shares:      shares,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListByGroup retrieves a group's expenses in insertion order
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]*Expense, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s", group.ErrGroupNotFound, groupID)
	}

	return s.repo.ListByGroup(ctx, groupID)
}

// parseDate interprets the optional wire date. Empty means today; a
// date after today is rejected.
func parseDate(s string) (time.Time, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if strings.TrimSpace(s) == "" {
		return today, nil
	}

	date, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if date.After(today) {
		return time.Time{}, ErrFutureDate
	}
	return date, nil
}
