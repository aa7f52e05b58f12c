package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/levelup-gaming/levelup/internal/dbx"
)

// Keys of the session table.
const (
	keyUserID   = "user_id"
	keyEmail    = "email"
	keyName     = "name"
	keyLoggedIn = "logged_in"
)

// SQLiteKV implements KV over the session table (key TEXT PRIMARY KEY,
// value TEXT). Bound to a DBTX so it can run inside an outer transaction.
type SQLiteKV struct {
	db dbx.DBTX
}

func NewSQLiteKV(db dbx.DBTX) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Save upserts all session keys in a single statement, so the mirror is
// never observed half-written.
func (r *SQLiteKV) Save(ctx context.Context, userID int64, email, name string) error {
	query := `INSERT INTO session (key, value) VALUES (?, ?), (?, ?), (?, ?), (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query,
		keyUserID, strconv.FormatInt(userID, 10),
		keyEmail, email,
		keyName, name,
		keyLoggedIn, "1")
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear wipes the persisted session.
func (r *SQLiteKV) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// UserID returns the persisted user id, or SentinelNoUser when absent.
func (r *SQLiteKV) UserID(ctx context.Context) (int64, error) {
	v, err := r.get(ctx, keyUserID)
	if err != nil {
		return SentinelNoUser, err
	}
	if v == "" {
		return SentinelNoUser, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return SentinelNoUser, fmt.Errorf("corrupt session user id %q: %w", v, err)
	}
	return id, nil
}

func (r *SQLiteKV) UserEmail(ctx context.Context) (string, error) {
	return r.get(ctx, keyEmail)
}

func (r *SQLiteKV) UserName(ctx context.Context) (string, error) {
	return r.get(ctx, keyName)
}

func (r *SQLiteKV) IsLoggedIn(ctx context.Context) (bool, error) {
	v, err := r.get(ctx, keyLoggedIn)
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

// get returns "" for an absent key.
func (r *SQLiteKV) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}
