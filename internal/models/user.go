package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email, stored lowercased
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserResponse is the public view of a user returned by the API.
// It never carries the password hash.
// swagger:model UserResponse
type UserResponse struct {
	// User identifier
	// example: 7a9c3f4e-2c1b-4f0a-9b1d-8e5a6c7d8e9f
	ID string `json:"id"`

	// Username
	// example: alice1
	Username string `json:"username"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`

	// Creation timestamp, RFC 3339
	CreatedAt string `json:"createdAt"`

	// Last update timestamp, RFC 3339
	UpdatedAt string `json:"updatedAt"`
}

// NewUserResponse builds the public view from a database record.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:        u.UserID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
