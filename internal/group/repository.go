package group

import "context"

// Repository handles group persistence. Implementations return
// (nil, nil) rather than an error when a lookup finds nothing; the
// service layer turns that into ErrGroupNotFound.
type Repository interface {
	Create(ctx context.Context, group *Group) error
	GetByID(ctx context.Context, id string) (*Group, error)

	// GetByName matches the group name case-insensitively.
	GetByName(ctx context.Context, name string) (*Group, error)

	// List returns all groups in creation order.
	List(ctx context.Context) ([]*Group, error)

	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
