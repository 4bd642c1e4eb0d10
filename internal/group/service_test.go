package group

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairsplit/fairsplit/internal/money"
)

// fakeExpenses satisfies ExpenseStore without a real ledger.
type fakeExpenses struct {
	totals  map[string]money.Money
	deleted []string
}

func (f *fakeExpenses) TotalByGroup(_ context.Context, groupID string) (money.Money, error) {
	return f.totals[groupID], nil
}

func (f *fakeExpenses) DeleteByGroup(_ context.Context, groupID string) error {
	f.deleted = append(f.deleted, groupID)
	return nil
}

func newTestService() (*Service, *fakeExpenses) {
	expenses := &fakeExpenses{totals: make(map[string]money.Money)}
	return NewService(NewMemoryRepository(), expenses), expenses
}

func TestCreateGroup(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &CreateGroupRequest{
		GroupName:    "Trip to Rome",
		Participants: []string{"Alice", "Bob", "Charlie"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, g.GroupID)
	assert.Equal(t, "Trip to Rome", g.GroupName)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, g.Participants)
	assert.False(t, g.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, g.GroupID)
	require.NoError(t, err)
	assert.Equal(t, g.GroupID, got.GroupID)
}

func TestCreateGroupValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateGroupRequest
		wantErr error
	}{
		{
			name:    "empty name",
			req:     &CreateGroupRequest{GroupName: "   ", Participants: []string{"A"}},
			wantErr: ErrInvalidGroupName,
		},
		{
			name:    "no participants",
			req:     &CreateGroupRequest{GroupName: "Flat"},
			wantErr: ErrEmptyParticipantList,
		},
		{
			name: "too many participants",
			req: &CreateGroupRequest{
				GroupName:    "Flat",
				Participants: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			},
			wantErr: ErrTooManyParticipants,
		},
		{
			name:    "duplicate participant",
			req:     &CreateGroupRequest{GroupName: "Flat", Participants: []string{"A", "B", "A"}},
			wantErr: ErrDuplicateParticipant,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParticipantNamesAreCaseSensitive(t *testing.T) {
	svc, _ := newTestService()

	g, err := svc.Create(context.Background(), &CreateGroupRequest{
		GroupName:    "Mixed case",
		Participants: []string{"alice", "Alice"},
	})
	require.NoError(t, err)
	assert.True(t, g.HasParticipant("alice"))
	assert.True(t, g.HasParticipant("Alice"))
	assert.False(t, g.HasParticipant("ALICE"))
}

func TestCreateGroupNameTaken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateGroupRequest{GroupName: "Weekend", Participants: []string{"A"}})
	require.NoError(t, err)

	// Name uniqueness is case-insensitive
	_, err = svc.Create(ctx, &CreateGroupRequest{GroupName: "weekend", Participants: []string{"B"}})
	assert.ErrorIs(t, err, ErrGroupNameTaken)
}

func TestCreateGroupLimit(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < MaxGroups; i++ {
		_, err := svc.Create(ctx, &CreateGroupRequest{
			GroupName:    fmt.Sprintf("group-%d", i),
			Participants: []string{"A"},
		})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, &CreateGroupRequest{GroupName: "one too many", Participants: []string{"A"}})
	assert.ErrorIs(t, err, ErrGroupLimitReached)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestListInCreationOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := svc.Create(ctx, &CreateGroupRequest{GroupName: name, Participants: []string{"A"}})
		require.NoError(t, err)
	}

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "zeta", groups[0].GroupName)
	assert.Equal(t, "alpha", groups[1].GroupName)
	assert.Equal(t, "mid", groups[2].GroupName)
}

func TestDeleteDiscardsLedger(t *testing.T) {
	svc, expenses := newTestService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &CreateGroupRequest{GroupName: "Doomed", Participants: []string{"A"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, g.GroupID))
	assert.Equal(t, []string{g.GroupID}, expenses.deleted)

	_, err = svc.GetByID(ctx, g.GroupID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, svc.Delete(ctx, g.GroupID), ErrGroupNotFound)
}
