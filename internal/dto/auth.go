package dto

import (
	"time"

	"HEALTHAPI_BACK-END/internal/models"
)

// RegisterRequest represents the request payload for user registration.
// The profile fields are required when role is "patient".
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin doctor patient"`

	// Patient profile fields
	CPF            *string `json:"cpf,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	Address        *string `json:"address,omitempty"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// UserResponse represents account data in API responses. The password hash
// is never part of it.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// NewUserResponse converts an account model to its API representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
