package model

import "time"

// User represents an account holder. Hash is the bcrypt password hash
// and never leaves the server.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthUser is the public projection of a user returned by auth actions
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
