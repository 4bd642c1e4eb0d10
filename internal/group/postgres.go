package group

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository persists groups in PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new postgres-backed group repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a group and its participant list in one transaction
func (r *PostgresRepository) Create(ctx context.Context, group *Group) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (group_id, group_name, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, query, group.GroupID, group.GroupName, group.CreatedAt); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	participantQuery := `
		INSERT INTO group_participants (group_id, position, participant_name)
		VALUES ($1, $2, $3)
	`
	for i, name := range group.Participants {
		if _, err := tx.ExecContext(ctx, participantQuery, group.GroupID, i, name); err != nil {
			return fmt.Errorf("failed to add participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit group: %w", err)
	}
	return nil
}

// GetByID retrieves a group by its ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT group_id, group_name, created_at
		FROM groups
		WHERE group_id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.GroupID,
		&group.GroupName,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if group.Participants, err = r.participants(ctx, id); err != nil {
		return nil, err
	}
	return group, nil
}

// GetByName retrieves a group by name, case-insensitively
func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Group, error) {
	query := `
		SELECT group_id, group_name, created_at
		FROM groups
		WHERE LOWER(group_name) = LOWER($1)
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&group.GroupID,
		&group.GroupName,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group by name: %w", err)
	}

	if group.Participants, err = r.participants(ctx, group.GroupID); err != nil {
		return nil, err
	}
	return group, nil
}

// List retrieves all groups in creation order
func (r *PostgresRepository) List(ctx context.Context) ([]*Group, error) {
	query := `
		SELECT group_id, group_name, created_at
		FROM groups
		ORDER BY created_at, group_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(&group.GroupID, &group.GroupName, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, group := range groups {
		if group.Participants, err = r.participants(ctx, group.GroupID); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// Count returns the number of groups
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count groups: %w", err)
	}
	return count, nil
}

// Delete removes a group; participants go with it via ON DELETE CASCADE
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// participants loads a group's participant names in declared order
func (r *PostgresRepository) participants(ctx context.Context, groupID string) ([]string, error) {
	query := `
		SELECT participant_name
		FROM group_participants
		WHERE group_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return names, nil
}
