// Package account defines the durable client account entity and its
// repository. Accounts are created at registration, updated from the profile
// screen, and looked up during login.
package account

import (
	"errors"
	"time"
)

// Account is a registered user's stored profile. ID is assigned by the store
// on insert and never chosen by the caller.
type Account struct {
	ID           int64
	Name         string
	Email        string
	Address      string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email in use")
)
