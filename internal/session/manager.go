// Package session manages the current login session: credential checks
// against the account store, the in-memory observable of the logged-in
// account, and its durable mirror that survives restarts.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/levelup-gaming/levelup/internal/account"
	"github.com/levelup-gaming/levelup/internal/cryptox"
	"github.com/levelup-gaming/levelup/internal/dbx"
	"github.com/levelup-gaming/levelup/internal/logging"
	"github.com/levelup-gaming/levelup/internal/validation"
)

var (
	// ErrInvalidCredentials is returned when no account matches the given
	// email/password pair. It is an expected outcome, not a store fault.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned by operations that need a logged-in account.
	ErrNoSession = errors.New("no active session")
)

// Manager owns the session state machine: LoggedOut → LoggedIn → LoggedOut.
//
// All session-mutating operations are serialized by an internal mutex, so
// concurrent Login/Logout calls cannot interleave their store writes and
// cell publishes. The durable mirror is written before the cell publishes;
// on a store fault the in-memory state is left unchanged.
//
// There is exactly one credential check in the system: authenticate, used by
// both Login and UserExists.
type Manager struct {
	db     *sql.DB
	hasher cryptox.Hasher
	policy validation.Policy
	log    logging.Logger

	mu   sync.Mutex
	cell *Cell
}

// NewManager returns a Manager over the given database. policy governs
// registration-form validation.
func NewManager(db *sql.DB, hasher cryptox.Hasher, policy validation.Policy, log logging.Logger) *Manager {
	return &Manager{
		db:     db,
		hasher: hasher,
		policy: policy,
		log:    log,
		cell:   NewCell(),
	}
}

func (m *Manager) accounts(db dbx.DBTX) account.Repository {
	return account.NewSQLiteRepository(db)
}

func (m *Manager) kv(db dbx.DBTX) KV {
	return NewSQLiteKV(db)
}

// Current returns the logged-in account, or nil.
func (m *Manager) Current() *account.Account {
	return m.cell.Get()
}

// Subscribe returns a channel of session changes and a cancel function.
// The channel receives the new account on login and nil on logout.
func (m *Manager) Subscribe() (<-chan *account.Account, func()) {
	return m.cell.Subscribe()
}

// authenticate is the single authoritative credential check: exact,
// case-sensitive email lookup followed by a constant-time hash verify.
// A miss of either kind is ErrInvalidCredentials.
func (m *Manager) authenticate(ctx context.Context, email, password string) (*account.Account, error) {
	a, err := m.accounts(m.db).FindByEmail(ctx, email)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}
	if !m.hasher.Verify([]byte(password), a.PasswordSalt, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// Login authenticates the pair and, on success, establishes the session:
// the durable mirror and the observable cell are updated together. On
// ErrInvalidCredentials the current session, if any, is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := m.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.establishSession(ctx, a); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "login successful", "user_id", a.ID)
	return a, nil
}

// UserExists reports whether the pair matches a stored account. It shares
// the authenticate step with Login and never mutates session state.
func (m *Manager) UserExists(ctx context.Context, email, password string) (bool, error) {
	_, err := m.authenticate(ctx, email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Register validates the form and inserts a new account with a freshly
// salted password hash. When the form is invalid it returns (nil, nil) and
// the messages are in f.Errors; a duplicate email comes back the same way,
// as a field error. The new account is returned but not logged in; the
// caller decides the next screen.
func (m *Manager) Register(ctx context.Context, f *validation.Form) (*account.Account, error) {
	if !validation.Validate(f, m.policy) {
		return nil, nil
	}

	hash, salt, err := m.hasher.Hash([]byte(f.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &account.Account{
		Name:         strings.TrimSpace(f.Name),
		Email:        strings.TrimSpace(f.Email),
		Address:      strings.TrimSpace(f.Address),
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := m.accounts(m.db).Insert(ctx, a); err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			f.Errors[validation.FieldEmail] = account.ErrDuplicateEmail.Error()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	m.log.Info(ctx, "account registered", "user_id", a.ID)
	return a, nil
}

// Restore resumes a persisted session at cold start. The sentinel id means
// no session and is never used to query the store. If the persisted id no
// longer resolves to an account, the stale mirror is cleared and the session
// stays logged out.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := m.kv(m.db).UserID(ctx)
	if err != nil {
		return err
	}
	if id == SentinelNoUser {
		return nil
	}

	a, err := m.accounts(m.db).FindByID(ctx, id)
	if errors.Is(err, account.ErrNotFound) {
		m.log.Warn(ctx, "persisted session refers to a missing account", "user_id", id)
		return m.clearSession(ctx)
	}
	if err != nil {
		return err
	}

	m.cell.set(a)
	m.log.Info(ctx, "session restored", "user_id", a.ID)
	return nil
}

// LoadByID fetches an account by id and publishes it as the current session.
// account.ErrNotFound propagates; the sentinel id behaves like any other
// missing id.
func (m *Manager) LoadByID(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := m.accounts(m.db).FindByID(ctx, id)
	if err != nil {
		return err
	}
	return m.establishSession(ctx, a)
}

// UpdateCurrent writes the edited account to the store and replaces the
// current session with the caller's copy, no re-fetch. Store write, durable
// mirror and cell move together in one transaction.
func (m *Manager) UpdateCurrent(ctx context.Context, updated *account.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCurrentLocked(ctx, updated)
}

// UpdateProfile validates the profile form against the active session,
// re-hashes the (re-entered) password, and saves. Returns (nil, nil) when
// the form is invalid; inspect f.Errors.
func (m *Manager) UpdateProfile(ctx context.Context, f *validation.Form) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.cell.Get()
	if cur == nil {
		return nil, ErrNoSession
	}

	p := m.policy
	p.RequireTerms = false
	if !validation.Validate(f, p) {
		return nil, nil
	}

	hash, salt, err := m.hasher.Hash([]byte(f.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated := *cur
	updated.Name = strings.TrimSpace(f.Name)
	updated.Email = strings.TrimSpace(f.Email)
	updated.Address = strings.TrimSpace(f.Address)
	updated.PasswordHash = hash
	updated.PasswordSalt = salt

	if err := m.updateCurrentLocked(ctx, &updated); err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			f.Errors[validation.FieldEmail] = account.ErrDuplicateEmail.Error()
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// updateCurrentLocked is UpdateCurrent without the lock. Callers hold m.mu.
func (m *Manager) updateCurrentLocked(ctx context.Context, updated *account.Account) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := m.accounts(tx).Update(ctx, updated); err != nil {
			return err
		}
		return m.kv(tx).Save(ctx, updated.ID, updated.Email, updated.Name)
	})
	if err != nil {
		return err
	}

	m.cell.set(updated)
	m.log.Info(ctx, "profile updated", "user_id", updated.ID)
	return nil
}

// Logout tears the session down: durable mirror and cell are cleared
// together. Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.clearSession(ctx); err != nil {
		return err
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// establishSession persists the mirror and then publishes the cell. Callers
// hold m.mu.
func (m *Manager) establishSession(ctx context.Context, a *account.Account) error {
	if err := m.kv(m.db).Save(ctx, a.ID, a.Email, a.Name); err != nil {
		return err
	}
	m.cell.set(a)
	return nil
}

// clearSession wipes the mirror and then publishes nil. Callers hold m.mu.
func (m *Manager) clearSession(ctx context.Context) error {
	if err := m.kv(m.db).Clear(ctx); err != nil {
		return err
	}
	m.cell.set(nil)
	return nil
}
