package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/money"
)

// PostgresRepository persists ledgers in PostgreSQL. Insertion order is
// carried by the seq column, not timestamps.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new postgres-backed ledger repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts an expense and its share mapping in one transaction
func (r *PostgresRepository) Append(ctx context.Context, expense *Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (expense_id, group_id, description, amount_cents, paid_by, expense_date, split_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		expense.ExpenseID,
		expense.GroupID,
		expense.Description,
		expense.Amount.Cents(),
		expense.PaidBy,
		expense.Date,
		string(expense.SplitType),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append expense: %w", err)
	}

	shareQuery := `
		INSERT INTO expense_shares (expense_id, participant, amount_cents)
		VALUES ($1, $2, $3)
	`
	for participant, share := range expense.Shares {
		if _, err := tx.ExecContext(ctx, shareQuery, expense.ExpenseID, participant, share.Cents()); err != nil {
			return fmt.Errorf("failed to store share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}
	return nil
}

// ListByGroup retrieves a group's expenses in insertion order
func (r *PostgresRepository) ListByGroup(ctx context.Context, groupID string) ([]*Expense, error) {
	query := `
		SELECT expense_id, group_id, description, amount_cents, paid_by, expense_date, split_type, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		var cents int64
		var splitType string
		if err := rows.Scan(&e.ExpenseID, &e.GroupID, &e.Description, &cents, &e.PaidBy, &e.Date, &splitType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = money.FromCents(cents)
		e.SplitType = split.Type(splitType)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, e := range expenses {
		if e.Shares, err = r.shares(ctx, e.ExpenseID); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// TotalByGroup sums a group's expense amounts
func (r *PostgresRepository) TotalByGroup(ctx context.Context, groupID string) (money.Money, error) {
	var cents int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, query, groupID).Scan(&cents); err != nil {
		return 0, fmt.Errorf("failed to total expenses: %w", err)
	}
	return money.FromCents(cents), nil
}

// DeleteByGroup discards a group's ledger; shares go via ON DELETE CASCADE
func (r *PostgresRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	return nil
}

// shares loads the share mapping for one expense
func (r *PostgresRepository) shares(ctx context.Context, expenseID string) (map[string]money.Money, error) {
	query := `SELECT participant, amount_cents FROM expense_shares WHERE expense_id = $1`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	shares := make(map[string]money.Money)
	for rows.Next() {
		var participant string
		var cents int64
		if err := rows.Scan(&participant, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares[participant] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return shares, nil
}
