package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/planning-guru/attendance-backend-go/internal/domain/auth"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         auth.ToUserResponse(u),
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, actor user.Actor) (auth.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return auth.ToUserResponse(u), nil
}

// CreateUser implements auth.AuthService. Admins may only create Employee
// accounts; a SuperAdmin may create any role.
func (s *AuthServiceImpl) CreateUser(ctx context.Context, actor user.Actor, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}
	if !actor.IsApprover() {
		return auth.UserResponse{}, user.ErrAdminAccessRequired
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}
	if role != user.RoleEmployee && !actor.IsSuperAdmin() {
		return auth.UserResponse{}, user.ErrSuperAdminOnly
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	createdBy := actor.UserID
	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   req.Department,
		Designation:  req.Designation,
		Phone:        req.Phone,
		Address:      req.Address,
		CreatedBy:    &createdBy,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.ToUserResponse(created), nil
}

// ListUsers implements auth.AuthService.
func (s *AuthServiceImpl) ListUsers(ctx context.Context, actor user.Actor) ([]auth.UserResponse, error) {
	if !actor.IsApprover() {
		return nil, user.ErrAdminAccessRequired
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, auth.ToUserResponse(u))
	}

	return responses, nil
}

// EnsureSuperAdmin implements auth.AuthService. It seeds the first account so
// a fresh deployment is never locked out.
func (s *AuthServiceImpl) EnsureSuperAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleSuperAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create bootstrap super admin: %w", err)
	}

	slog.Info("Bootstrap super admin created", "user_id", created.ID, "email", email)
	return nil
}
