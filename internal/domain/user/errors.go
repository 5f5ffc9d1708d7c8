package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrInvalidPasswordLength  = errors.New("password must be at least 8 characters")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrSuperAdminOnly         = errors.New("super admin access required")
	ErrInsufficientPrivileges = errors.New("insufficient privileges for this action")
)
