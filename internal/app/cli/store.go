package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/levelup-gaming/levelup/internal/nav"
)

// StoreScreen lists the product catalog. When the server is unreachable the
// cached list is shown with an offline note.
func (a *App) StoreScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.nav.Request(nav.Store, nav.SingleTop())

	products, offline, err := a.catalog.Products(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load products", "error", err)
		fmt.Fprintln(a.out, "Could not load the store, please try again later.")
		return
	}
	a.lastProducts = products

	if offline {
		fmt.Fprintln(a.out, "(offline — showing cached catalog)")
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "The store is empty right now.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "  [%d] %s — $%.2f (%s)\n", p.ID, p.Name, p.Price, p.Category)
	}
	fmt.Fprintln(a.out, "Use 'add <id> [qty]' to put a product in your cart.")
}

// AddToCart handles "add <id> [qty]" against the last listed catalog.
func (a *App) AddToCart(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: add <id> [qty]")
		return
	}
	if len(a.lastProducts) == 0 {
		fmt.Fprintln(a.out, "Open the store first ('store').")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: add <id> [qty]")
		return
	}

	qty := 1
	if len(args) > 1 {
		qty, err = strconv.Atoi(args[1])
		if err != nil || qty <= 0 {
			fmt.Fprintln(a.out, "Quantity must be a positive number.")
			return
		}
	}

	for _, p := range a.lastProducts {
		if p.ID == id {
			a.cart.Add(p, qty)
			fmt.Fprintf(a.out, "Added %d × %s to your cart.\n", qty, p.Name)
			return
		}
	}
	fmt.Fprintln(a.out, "No such product id, check the store listing.")
}

// CartScreen shows the cart contents and total.
func (a *App) CartScreen(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.nav.Request(nav.Cart, nav.SingleTop())

	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(a.out, "  [%d] %d × %s — $%.2f\n",
			l.Product.ID, l.Qty, l.Product.Name, l.Product.Price*float64(l.Qty))
	}
	fmt.Fprintf(a.out, "Total: $%.2f\n", a.cart.Total())
	fmt.Fprintln(a.out, "Use 'remove <id>' to take a product out.")
}

// RemoveFromCart handles "remove <id>" by product id.
func (a *App) RemoveFromCart(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: remove <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: remove <id>")
		return
	}

	for _, l := range a.cart.Lines() {
		if l.Product.ID == id {
			a.cart.Remove(l.ID)
			fmt.Fprintf(a.out, "Removed %s from your cart.\n", l.Product.Name)
			return
		}
	}
	fmt.Fprintln(a.out, "That product is not in your cart.")
}
