package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByRoles retrieves every user holding one of the given roles.
	// The scheduler uses it to enumerate eligible employees.
	ListByRoles(ctx context.Context, roles []Role) ([]User, error)

	List(ctx context.Context) ([]User, error)

	CountAll(ctx context.Context) (int64, error)
}
