// Package cli implements the terminal screens of the Level Up Gaming client:
// start, login, register, home, store, cart, profile, events and about,
// driven as a read–eval–print loop over the navigation stack.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/levelup-gaming/levelup/internal/app/config"
	"github.com/levelup-gaming/levelup/internal/cart"
	"github.com/levelup-gaming/levelup/internal/catalog"
	"github.com/levelup-gaming/levelup/internal/logging"
	"github.com/levelup-gaming/levelup/internal/nav"
	"github.com/levelup-gaming/levelup/internal/session"
	"github.com/levelup-gaming/levelup/internal/storage"
	"github.com/levelup-gaming/levelup/internal/validation"

	"github.com/levelup-gaming/levelup/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Manager
	catalog *catalog.Service
	cart    *cart.Cart
	nav     *nav.Controller
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// products listed by the last store screen, so "add <id>" can resolve.
	lastProducts []catalog.Product
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open local database", "error", err)
		return nil, err
	}

	apiClient, err := catalog.NewHTTPClient(c.CatalogBaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	policy := validation.DefaultPolicy()
	if c.StrictEmail {
		policy.EmailRule = validation.EmailRuleStrict
	}
	policy.RequireTerms = c.RequireTerms

	return &App{
		config:  c,
		db:      db,
		session: session.NewManager(db, cryptox.NewArgon2Hasher(), policy, log),
		catalog: catalog.NewService(apiClient, db, log),
		cart:    cart.New(),
		nav:     nav.NewController(nav.Start),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores any persisted session and enters the REPL. Resources are
// released on exit.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.catalog.Close()
		_ = a.db.Close()
	}()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "failed to restore session", "error", err)
	}
	if a.isLoggedIn() {
		a.nav.Request(nav.Home)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// requireLogin gates screens behind a session. Returns false (and points the
// user at the login screen) when logged out.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "You need to log in first (try 'login').")
	return false
}

func (a *App) getStatus() string {
	s := string(a.nav.Current())
	if cur := a.session.Current(); cur != nil {
		s = s + " " + cur.Email
	}
	return fmt.Sprintf("(%s)", s)
}
