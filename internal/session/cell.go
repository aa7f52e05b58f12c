package session

import (
	"sync"

	"github.com/levelup-gaming/levelup/internal/account"
)

// Cell is a single-writer observable holding the current account (nil when
// logged out). Any number of goroutines may read or subscribe; only the
// Manager writes. Updates are whole-value assignments, never partial field
// mutation.
type Cell struct {
	mu   sync.RWMutex
	cur  *account.Account
	subs map[int]chan *account.Account
	next int
}

func NewCell() *Cell {
	return &Cell{subs: map[int]chan *account.Account{}}
}

// Get returns the current account snapshot, or nil when logged out.
func (c *Cell) Get() *account.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur
}

// Subscribe returns a channel that receives every subsequent value published
// to the cell, plus a cancel function. A slow subscriber only ever misses
// intermediate values: the latest one replaces any undelivered predecessor.
func (c *Cell) Subscribe() (<-chan *account.Account, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	ch := make(chan *account.Account, 1)
	c.subs[id] = ch

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// set publishes a new value to every subscriber. Package-private: the
// Manager is the only writer.
func (c *Cell) set(a *account.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = a
	for _, ch := range c.subs {
		// Replace an undelivered value rather than block.
		select {
		case <-ch:
		default:
		}
		ch <- a
	}
}
