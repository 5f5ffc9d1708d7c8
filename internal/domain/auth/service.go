package auth

import (
	"context"

	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
)

// AuthService defines authentication and user administration.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	Me(ctx context.Context, actor user.Actor) (UserResponse, error)

	// CreateUser registers a new account; approvers only. An Admin can only
	// create Employee accounts, a SuperAdmin can create any role.
	CreateUser(ctx context.Context, actor user.Actor, req CreateUserRequest) (UserResponse, error)

	ListUsers(ctx context.Context, actor user.Actor) ([]UserResponse, error)

	// EnsureSuperAdmin creates the bootstrap super admin account when the
	// user table is empty. Called once at startup.
	EnsureSuperAdmin(ctx context.Context, name, email, password string) error
}
