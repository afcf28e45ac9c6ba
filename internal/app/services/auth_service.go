package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/auth"
)

// AuthService decides whether a login attempt is valid and computes the
// post-login redirect target and user projection
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// redirectFor maps a role to its post-login dashboard
func redirectFor(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "/student-dashboard"
	case models.RoleFaculty:
		return "/faculty-dashboard"
	case models.RoleAdmin:
		return "/admin-dashboard"
	default:
		return "/dashboard"
	}
}

// Login validates the submitted credentials. The same error comes back
// whether the email is unknown, the role doesn't match, or the password is
// wrong, so a caller cannot learn which field failed. The administrative
// account goes through this exact path like every other user.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	role := models.Role(req.UserType)
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmailAndRole(ctx, req.Email, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Login succeeded")

	return &dto.LoginResponse{
		User:     dto.NewUserResponse(user),
		Redirect: redirectFor(user.Role),
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
	}, nil
}

// Register creates a new account. A taken email fails with
// ErrDuplicateAccount and leaves the existing record untouched.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateAccount
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Role:     req.UserType,
		Profile: models.Profile{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			StudentID:  req.StudentID,
			Department: req.Department,
			Semester:   req.Semester,
			Phone:      req.Phone,
		},
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Account created")

	return &dto.RegisterResponse{User: dto.NewUserResponse(user)}, nil
}
