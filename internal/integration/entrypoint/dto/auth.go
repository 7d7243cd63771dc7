package dto

import (
	"time"

	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Sex      string `json:"sex"`
	Age      int    `json:"age"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// UpdateProfileRequest represents the request body for a profile edit.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Sex      *string `json:"sex"`
	Age      *int    `json:"age"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Sex       string    `json:"sex"`
	Age       int       `json:"age"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse represents the response for register and login.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Sex:       string(user.Sex),
		Age:       user.Age,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToAuthResponse converts a user and its new session to an AuthResponse DTO.
func ToAuthResponse(user *entity.User, session *auth.SessionOutput) AuthResponse {
	return AuthResponse{
		User:      ToUserResponse(user),
		Token:     session.Token.Token,
		ExpiresAt: session.Token.ExpiresAt,
	}
}
