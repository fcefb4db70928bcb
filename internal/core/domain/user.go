package domain

import "time"

// User represents an operator account of the application.
type User struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
