package domain

import (
	"strings"
	"time"
)

// User is an account mirrored from the hosted auth provider. The
// password hash exists only for demo accounts created by the dbtool;
// production credentials never reach this service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the fields a caller must always provide.
func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return &InvalidArgumentError{Field: "email", Reason: "must be non-empty"}
	}
	if u.PasswordHash == "" {
		return &InvalidArgumentError{Field: "password_hash", Reason: "must be non-empty"}
	}
	return nil
}
