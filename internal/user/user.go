package user

import "errors"

// Roles a user can hold. ROOT is required to trigger scrape runs.
const (
	RoleRegular = "REGULAR"
	RoleRoot    = "ROOT"
)

// ErrNotFound is returned when a user does not exist
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken is returned on signup with an already registered email
var ErrEmailTaken = errors.New("email already registered")

// User is a registered API user
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
