package catalog

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means the catalog server could not be reached.
	ErrUnavailable = errors.New("catalog server unavailable")
)

// Client is the remote catalog API.
type Client interface {
	Products(ctx context.Context) ([]Product, error)
	Events(ctx context.Context) ([]Event, error)
	Ping(ctx context.Context) error
	Close() error
}
