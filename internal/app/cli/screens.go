package cli

import (
	"context"
	"fmt"

	"github.com/levelup-gaming/levelup/internal/nav"
)

// HomeScreen greets the user and resets the stack to home.
func (a *App) HomeScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.nav.Request(nav.Home, nav.PopTo(nav.Home), nav.Inclusive())

	cur := a.session.Current()
	fmt.Fprintf(a.out, "Hi %s! Where to? (store, cart, profile, events, about)\n", cur.Name)
}

// EventsScreen lists upcoming community events from the catalog API.
func (a *App) EventsScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.nav.Request(nav.Events, nav.SingleTop())

	events, err := a.catalog.Events(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load events", "error", err)
		fmt.Fprintln(a.out, "Could not load events, please try again later.")
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No upcoming events.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "  %s — %s @ %s (%s)\n",
			e.StartsAt.Format("2006-01-02 15:04"), e.Title, e.Location, e.Description)
	}
}

// AboutScreen shows the static about-us text. Available logged out.
func (a *App) AboutScreen(ctx context.Context) {
	a.nav.Request(nav.About, nav.SingleTop())

	fmt.Fprintln(a.out, "Level Up Gaming — your neighborhood game store and community.")
	fmt.Fprintln(a.out, "Games, consoles, accessories, and weekly tournaments.")
}
