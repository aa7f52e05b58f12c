// Package catalog talks to the remote Level Up Gaming API for products and
// events, and keeps a local cache of the product list so the store screen
// still works when the server is unreachable.
package catalog

import "time"

// Product is one item in the store catalog.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Event is a community event shown on the events screen.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
}
