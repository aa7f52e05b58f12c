package account

import "context"

// Repository describes CRUD and lookup operations over stored accounts.
// Implementations are backed by the local sqlite database.
type Repository interface {
	// Insert stores a new account and fills in its store-assigned ID.
	// Returns ErrDuplicateEmail if the email is already registered.
	Insert(ctx context.Context, a *Account) error

	// Update rewrites an existing account by ID.
	Update(ctx context.Context, a *Account) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id int64) error

	// FindByID returns the account with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*Account, error)

	// FindByEmail returns the account registered under email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// ListAll returns every stored account.
	ListAll(ctx context.Context) ([]Account, error)

	// ClearAll removes every stored account.
	ClearAll(ctx context.Context) error
}
