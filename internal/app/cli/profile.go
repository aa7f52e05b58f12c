package cli

import (
	"context"
	"fmt"

	"github.com/levelup-gaming/levelup/internal/cryptox"
	"github.com/levelup-gaming/levelup/internal/nav"
	"github.com/levelup-gaming/levelup/internal/validation"
)

// ProfileScreen shows the logged-in account.
func (a *App) ProfileScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.nav.Request(nav.Profile, nav.SingleTop())

	cur := a.session.Current()
	fmt.Fprintf(a.out, "Name:    %s\n", cur.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", cur.Email)
	fmt.Fprintf(a.out, "Address: %s\n", cur.Address)
	fmt.Fprintln(a.out, "Use 'edit' to change your profile.")
}

// EditProfileScreen re-runs the profile form with the current values as
// defaults (empty input keeps the old value; the password must be re-entered)
// and saves through the session manager.
func (a *App) EditProfileScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	cur := a.session.Current()

	f := validation.NewForm()
	f.SetAcceptedTerms(true)

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", cur.Name), a.out)
	if err != nil {
		return
	}
	if name == "" {
		name = cur.Name
	}
	f.SetName(name)

	email, err := getSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", cur.Email), a.out)
	if err != nil {
		return
	}
	if email == "" {
		email = cur.Email
	}
	f.SetEmail(email)

	password, err := getPassword(a.out)
	if err != nil {
		return
	}
	defer cryptox.WipeByteArray(password)
	f.SetPassword(string(password))

	address, err := getSimpleText(a.reader, fmt.Sprintf("Enter address [%s]", cur.Address), a.out)
	if err != nil {
		return
	}
	if address == "" {
		address = cur.Address
	}
	f.SetAddress(address)

	updated, err := a.session.UpdateProfile(ctx, f)
	if err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return
	}
	if updated == nil {
		for field, msg := range f.Errors {
			fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
		}
		return
	}

	fmt.Fprintln(a.out, "Profile saved.")
}
