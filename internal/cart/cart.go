// Package cart holds the in-memory shopping cart backing the cart screen.
// The cart lives for the process lifetime and is not persisted.
package cart

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/levelup-gaming/levelup/internal/catalog"
)

// Line is one cart entry: a product and a quantity.
type Line struct {
	ID      string
	Product catalog.Product
	Qty     int
}

// Cart is safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*Line
}

func New() *Cart {
	return &Cart{lines: map[string]*Line{}}
}

// Add puts qty units of p in the cart, merging with an existing line for the
// same product. Non-positive quantities are ignored. Returns the line id.
func (c *Cart) Add(p catalog.Product, qty int) string {
	if qty <= 0 {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range c.lines {
		if l.Product.ID == p.ID {
			l.Qty += qty
			return l.ID
		}
	}

	id := uuid.NewString()
	c.lines[id] = &Line{ID: id, Product: p, Qty: qty}
	return id
}

// Remove deletes a line by id. Unknown ids are a no-op.
func (c *Cart) Remove(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, lineID)
}

// SetQty changes a line's quantity; zero or less removes the line.
func (c *Cart) SetQty(lineID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.lines[lineID]
	if !ok {
		return
	}
	if qty <= 0 {
		delete(c.lines, lineID)
		return
	}
	l.Qty = qty
}

// Lines returns a snapshot of the cart ordered by product id.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Product.ID < result[j].Product.ID
	})
	return result
}

// Total returns the cart total.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Product.Price * float64(l.Qty)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = map[string]*Line{}
}
