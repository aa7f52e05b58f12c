package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/levelup-gaming/levelup/internal/cryptox"
	"github.com/levelup-gaming/levelup/internal/nav"
	"github.com/levelup-gaming/levelup/internal/session"
	"github.com/levelup-gaming/levelup/internal/validation"
)

// LoginScreen prompts for credentials and tries to authenticate. A wrong
// pair keeps the user on the login screen with a message; a store fault
// shows a generic error.
func (a *App) LoginScreen(ctx context.Context) {
	a.nav.Request(nav.Login, nav.SingleTop())

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		return
	}
	defer cryptox.WipeByteArray(password)

	acc, err := a.session.Login(ctx, email, string(password))
	if errors.Is(err, session.ErrInvalidCredentials) {
		fmt.Fprintln(a.out, "Account not found. Check your email and password.")
		return
	}
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", acc.Name)
	a.nav.Request(nav.Home, nav.PopTo(nav.Start), nav.Inclusive())
}

// RegisterScreen walks the registration form field by field, validates on
// submit, and prints per-field messages for anything invalid.
func (a *App) RegisterScreen(ctx context.Context) {
	a.nav.Request(nav.Register, nav.SingleTop())

	f := validation.NewForm()

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return
	}
	f.SetName(name)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return
	}
	f.SetEmail(email)

	password, err := getPassword(a.out)
	if err != nil {
		return
	}
	defer cryptox.WipeByteArray(password)
	f.SetPassword(string(password))

	address, err := getSimpleText(a.reader, "Enter address", a.out)
	if err != nil {
		return
	}
	f.SetAddress(address)

	accepted, err := getYesNo(a.reader, "Accept the terms and conditions?", a.out)
	if err != nil {
		return
	}
	f.SetAcceptedTerms(accepted)

	acc, err := a.session.Register(ctx, f)
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return
	}
	if acc == nil {
		for field, msg := range f.Errors {
			fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
		}
		return
	}

	fmt.Fprintln(a.out, "Account created! You can now log in.")
	a.nav.Request(nav.Login, nav.PopTo(nav.Register), nav.Inclusive())
}

// LogoutScreen tears down the session and returns to the start screen.
func (a *App) LogoutScreen(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return
	}
	a.cart.Clear()
	fmt.Fprintln(a.out, "Logged out.")
	a.nav.Request(nav.Start, nav.PopTo(nav.Start), nav.Inclusive())
}
