package expense

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/group"
	"github.com/fairsplit/fairsplit/internal/money"
)

func setup(t *testing.T, participants ...string) (*Service, *group.Group) {
	t.Helper()

	groups := group.NewMemoryRepository()
	g := &group.Group{
		GroupID:      "g1",
		GroupName:    "Test group",
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, groups.Create(context.Background(), g))

	return NewService(NewMemoryRepository(), groups), g
}

func TestCreateEqualSplit(t *testing.T) {
	svc, g := setup(t, "A", "B", "C")
	ctx := context.Background()

	e, err := svc.Create(ctx, g.GroupID, &CreateExpenseRequest{
		Description: "Dinner",
		Amount:      money.FromCents(3000),
		PaidBy:      "A",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ExpenseID)
	assert.Equal(t, split.TypeEqual, e.SplitType)
	assert.Equal(t, map[string]money.Money{
		"A": money.FromCents(1000),
		"B": money.FromCents(1000),
		"C": money.FromCents(1000),
	}, e.Shares)
	assert.False(t, e.Date.After(time.Now().UTC()), "default date must not be in the future")
}

func TestCreateCustomSplit(t *testing.T) {
	svc, g := setup(t, "A", "B")
	ctx := context.Background()

	e, err := svc.Create(ctx, g.GroupID, &CreateExpenseRequest{
		Description: "Groceries",
		Amount:      money.FromCents(2500),
		PaidBy:      "B",
		Date:        "2024-03-01",
		Contributions: map[string]money.Money{
			"A": money.FromCents(2000),
			"B": money.FromCents(500),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, split.TypeCustom, e.SplitType)
	assert.Equal(t, "2024-03-01", e.Date.Format(DateLayout))
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateExpenseRequest
		wantErr error
	}{
		{
			name:    "empty description",
			req:     &CreateExpenseRequest{Description: "  ", Amount: money.FromCents(100), PaidBy: "A"},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "zero amount",
			req:     &CreateExpenseRequest{Description: "x", Amount: 0, PaidBy: "A"},
			wantErr: split.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     &CreateExpenseRequest{Description: "x", Amount: money.FromCents(-100), PaidBy: "A"},
			wantErr: split.ErrInvalidAmount,
		},
		{
			name:    "payer not in group",
			req:     &CreateExpenseRequest{Description: "x", Amount: money.FromCents(100), PaidBy: "Mallory"},
			wantErr: split.ErrUnknownParticipant,
		},
		{
			name:    "unparseable date",
			req:     &CreateExpenseRequest{Description: "x", Amount: money.FromCents(100), PaidBy: "A", Date: "01/02/2024"},
			wantErr: ErrInvalidDate,
		},
		{
			name: "future date",
			req: &CreateExpenseRequest{
				Description: "x",
				Amount:      money.FromCents(100),
				PaidBy:      "A",
				Date:        time.Now().UTC().AddDate(0, 0, 1).Format(DateLayout),
			},
			wantErr: ErrFutureDate,
		},
		{
			name: "contributions mismatch",
			req: &CreateExpenseRequest{
				Description: "x",
				Amount:      money.FromCents(3000),
				PaidBy:      "A",
				Contributions: map[string]money.Money{
					"A": money.FromCents(1500),
					"B": money.FromCents(1499),
				},
			},
			wantErr: split.ErrContributionsMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, g := setup(t, "A", "B")
			ctx := context.Background()

			_, err := svc.Create(ctx, g.GroupID, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)

			// A rejected expense never reaches the ledger
			expenses, listErr := svc.ListByGroup(ctx, g.GroupID)
			require.NoError(t, listErr)
			assert.Empty(t, expenses)
		})
	}
}

func TestCreateUnknownGroup(t *testing.T) {
	svc, _ := setup(t, "A")

	_, err := svc.Create(context.Background(), "nope", &CreateExpenseRequest{
		Description: "x",
		Amount:      money.FromCents(100),
		PaidBy:      "A",
	})
	assert.ErrorIs(t, err, group.ErrGroupNotFound)

	_, err = svc.ListByGroup(context.Background(), "nope")
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	svc, g := setup(t, "A", "B")
	ctx := context.Background()

	// Dates deliberately out of order; the ledger must not resort.
	for _, e := range []struct {
		desc string
		date string
	}{
		{"first", "2024-03-10"},
		{"second", "2024-03-01"},
		{"third", "2024-03-05"},
	} {
		_, err := svc.Create(ctx, g.GroupID, &CreateExpenseRequest{
			Description: e.desc,
			Amount:      money.FromCents(100),
			PaidBy:      "A",
			Date:        e.date,
		})
		require.NoError(t, err)
	}

	expenses, err := svc.ListByGroup(ctx, g.GroupID)
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "first", expenses[0].Description)
	assert.Equal(t, "second", expenses[1].Description)
	assert.Equal(t, "third", expenses[2].Description)
}

func TestConcurrentAppends(t *testing.T) {
	svc, g := setup(t, "A", "B", "C")
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, g.GroupID, &CreateExpenseRequest{
				Description: "concurrent",
				Amount:      money.FromCents(999),
				PaidBy:      "B",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	expenses, err := svc.ListByGroup(ctx, g.GroupID)
	require.NoError(t, err)
	assert.Len(t, expenses, workers)
}
