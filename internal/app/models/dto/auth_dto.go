package dto

import "github.com/Sufiyanali07/erp-backend/internal/app/models"

// LoginRequest represents login credentials plus the claimed role
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required,oneof=student faculty admin"`
}

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	UserType   models.Role `json:"userType" binding:"required,oneof=student faculty"`
	FirstName  string      `json:"firstName" binding:"required"`
	LastName   string      `json:"lastName" binding:"required"`
	StudentID  string      `json:"studentId,omitempty"`
	Department string      `json:"department,omitempty"`
	Semester   int         `json:"semester,omitempty"`
	Phone      string      `json:"phone,omitempty"`
}

// UserResponse is the sanitized user projection returned to clients
type UserResponse struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	UserType    string         `json:"userType"`
	DisplayName string         `json:"displayName"`
	Profile     models.Profile `json:"profile"`
}

// TokenResponse represents the issued session token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// LoginResponse is the full session bootstrap payload
type LoginResponse struct {
	User     UserResponse  `json:"user"`
	Redirect string        `json:"redirect"`
	Token    TokenResponse `json:"token"`
}

// RegisterResponse mirrors the login success shape minus the redirect
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse builds the sanitized projection from a stored user
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID.Hex(),
		Email:       user.Email,
		UserType:    string(user.Role),
		DisplayName: user.DisplayName(),
		Profile:     user.Profile,
	}
}
