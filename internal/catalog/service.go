package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/levelup-gaming/levelup/internal/dbx"
	"github.com/levelup-gaming/levelup/internal/logging"
)

// Service serves the store and events screens. Products fetch through to the
// server and refresh the local cache; when the server is unreachable the
// cached list is served instead.
type Service struct {
	client Client
	db     *sql.DB
	log    logging.Logger
}

func NewService(client Client, db *sql.DB, log logging.Logger) *Service {
	return &Service{client: client, db: db, log: log}
}

func (s *Service) cache(db dbx.DBTX) *CacheRepository {
	return NewCacheRepository(db)
}

// Products returns the product list and whether it came from the offline
// cache. A cache refresh failure is logged but does not fail the fetch; the
// user still gets the fresh list.
func (s *Service) Products(ctx context.Context) ([]Product, bool, error) {
	products, err := s.client.Products(ctx)
	if err == nil {
		if cacheErr := s.cache(s.db).UpsertProducts(ctx, products); cacheErr != nil {
			s.log.Warn(ctx, "failed to refresh product cache", "error", cacheErr)
		}
		return products, false, nil
	}

	if !errors.Is(err, ErrUnavailable) {
		return nil, false, err
	}

	s.log.Warn(ctx, "catalog unreachable, serving cached products")
	cached, cacheErr := s.cache(s.db).ListProducts(ctx)
	if cacheErr != nil {
		return nil, false, cacheErr
	}
	return cached, true, nil
}

// Events returns the upcoming events. There is no offline cache for events;
// transport errors propagate.
func (s *Service) Events(ctx context.Context) ([]Event, error) {
	return s.client.Events(ctx)
}

// Ping proxies a liveness check to the API client.
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close releases the underlying API client.
func (s *Service) Close() error {
	return s.client.Close()
}
