// Package nav implements the screen navigation stack: abstract requests to
// push a destination, optionally popping part of the stack first, plus
// back/up handling.
package nav

import "sync"

// Destination names a screen.
type Destination string

const (
	Start    Destination = "start"
	Login    Destination = "login"
	Register Destination = "register"
	Home     Destination = "home"
	Store    Destination = "store"
	Cart     Destination = "cart"
	Profile  Destination = "profile"
	Events   Destination = "events"
	About    Destination = "about"
)

type request struct {
	popTo     Destination
	hasPopTo  bool
	inclusive bool
	singleTop bool
}

// Option tweaks a navigation request.
type Option func(*request)

// PopTo pops the stack down to dest before pushing.
func PopTo(dest Destination) Option {
	return func(r *request) {
		r.popTo = dest
		r.hasPopTo = true
	}
}

// Inclusive makes PopTo also remove the destination it popped to.
func Inclusive() Option {
	return func(r *request) { r.inclusive = true }
}

// SingleTop suppresses the push when the destination is already on top.
func SingleTop() Option {
	return func(r *request) { r.singleTop = true }
}

// Controller holds the destination stack. Safe for concurrent use; the
// bottom frame is never popped.
type Controller struct {
	mu    sync.Mutex
	stack []Destination
}

// NewController returns a Controller with root as the only frame.
func NewController(root Destination) *Controller {
	return &Controller{stack: []Destination{root}}
}

// Request applies a navigation request: optional pop-to, then push (unless
// suppressed by SingleTop).
func (c *Controller) Request(dest Destination, opts ...Option) {
	var r request
	for _, opt := range opts {
		opt(&r)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if r.hasPopTo {
		c.popTo(r.popTo, r.inclusive)
	}

	if r.singleTop && len(c.stack) > 0 && c.top() == dest {
		return
	}
	c.stack = append(c.stack, dest)
}

// PopBack pops the top frame. Returns false when only the root remains.
func (c *Controller) PopBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.stack) <= 1 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// NavigateUp behaves like PopBack for this single-task app.
func (c *Controller) NavigateUp() bool {
	return c.PopBack()
}

// Current returns the top destination.
func (c *Controller) Current() Destination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.top()
}

// Depth returns the number of frames on the stack.
func (c *Controller) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack)
}

func (c *Controller) top() Destination {
	return c.stack[len(c.stack)-1]
}

// popTo removes frames above dest; with inclusive it removes dest too, and
// the destination pushed right after becomes the new root. A dest not on the
// stack leaves it unchanged.
func (c *Controller) popTo(dest Destination, inclusive bool) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i] != dest {
			continue
		}
		end := i + 1
		if inclusive {
			end = i
		}
		c.stack = c.stack[:end]
		return
	}
}
