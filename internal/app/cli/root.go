package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root runs the command loop. Command handlers report their own errors to
// the user; the loop itself only dispatches.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Level Up Gaming (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "levelup %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: home, store, cart, add <id> [qty], remove <id>, profile, edit, events, about, back, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, about, exit")
			}

		case "login":
			a.LoginScreen(ctx)

		case "register":
			a.RegisterScreen(ctx)

		case "home":
			a.HomeScreen(ctx)

		case "store":
			a.StoreScreen(ctx)

		case "cart":
			a.CartScreen(ctx)

		case "add":
			a.AddToCart(ctx, args)

		case "remove":
			a.RemoveFromCart(ctx, args)

		case "profile":
			a.ProfileScreen(ctx)

		case "edit":
			a.EditProfileScreen(ctx)

		case "events":
			a.EventsScreen(ctx)

		case "about":
			a.AboutScreen(ctx)

		case "back":
			if !a.nav.PopBack() {
				fmt.Fprintln(a.out, "Already at the first screen.")
			}

		case "logout":
			a.LogoutScreen(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
