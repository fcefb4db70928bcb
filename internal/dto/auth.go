package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// RegisterRequest carries the fields needed to create an operator account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. The password hash never leaves
// the service layer.
type UserResponse struct {
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to its public DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// ToTokenResponse assembles the auth response for a freshly issued token.
func ToTokenResponse(accessToken string, u *domain.User) TokenResponse {
	return TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        ToUserResponse(u),
	}
}
