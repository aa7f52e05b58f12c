package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/levelup-gaming/levelup/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const accountColumns = `id, name, email, address, password_hash, password_salt, created_at`

// Insert stores a new account and fills in the store-assigned ID.
func (r *SQLiteRepository) Insert(ctx context.Context, a *Account) error {
	query := `INSERT INTO accounts (name, email, address, password_hash, password_salt, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		a.Name, a.Email, a.Address, a.PasswordHash, a.PasswordSalt, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted account id: %w", err)
	}
	a.ID = id
	return nil
}

// Update rewrites an existing account by ID. It expects exactly one row to be
// affected.
func (r *SQLiteRepository) Update(ctx context.Context, a *Account) error {
	query := `UPDATE accounts SET name=?, email=?, address=?, password_hash=?, password_salt=? WHERE id=?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name, a.Email, a.Address, a.PasswordHash, a.PasswordSalt, a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an account by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return ErrNotFound
	}
	return nil
}

// FindByID returns the account with the given ID.
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id=?`, id)
	return scanAccount(row)
}

// FindByEmail returns the account registered under email. Matching is exact
// and case-sensitive, like the rest of the credential flow.
func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email=?`, email)
	return scanAccount(row)
}

// ListAll returns every stored account ordered by ID.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Address,
			&a.PasswordHash, &a.PasswordSalt, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearAll removes every stored account.
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}
	return nil
}

func scanAccount(row *sql.Row) (*Account, error) {
	a := &Account{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Address,
		&a.PasswordHash, &a.PasswordSalt, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return a, nil
}

// isUniqueViolation detects the sqlite UNIQUE constraint error on
// accounts.email without depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
