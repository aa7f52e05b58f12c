package session

import "context"

// SentinelNoUser is the user id reported when no session is persisted.
const SentinelNoUser int64 = -1

// KV is the durable session mirror: a small key-value record of who is
// logged in, surviving process restarts. Save and Clear each take effect
// atomically.
type KV interface {
	// Save persists {userID, email, name} and marks the session logged in.
	Save(ctx context.Context, userID int64, email, name string) error

	// Clear wipes the persisted session entirely.
	Clear(ctx context.Context) error

	// UserID returns the persisted user id, or SentinelNoUser if absent.
	UserID(ctx context.Context) (int64, error)

	// UserEmail returns the persisted email, or "" if absent.
	UserEmail(ctx context.Context) (string, error)

	// UserName returns the persisted display name, or "" if absent.
	UserName(ctx context.Context) (string, error)

	// IsLoggedIn reports whether a logged-in session is persisted.
	IsLoggedIn(ctx context.Context) (bool, error)
}
