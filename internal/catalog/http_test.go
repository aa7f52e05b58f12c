package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Elden Ring","description":"RPG","image_url":"","price":59.99,"category":"games"},
			{"id":2,"name":"DualSense","description":"Controller","image_url":"","price":69.99,"category":"accessories"}
		]`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	defer c.Close()

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Elden Ring", products[0].Name)
	assert.InDelta(t, 69.99, products[1].Price, 0.001)
}

func TestHTTPClient_Events(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"title":"Smash Night","description":"Weekly tournament","location":"The store","starts_at":"2026-09-04T19:00:00Z"}]`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	defer c.Close()

	events, err := c.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Smash Night", events[0].Title)
	assert.Equal(t, 2026, events[0].StartsAt.Year())
}

func TestHTTPClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestHTTPClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, prodErr := c.Products(context.Background())
	require.Error(t, prodErr)
	assert.NotErrorIs(t, prodErr, ErrUnavailable, "a responding server is not 'unavailable'")
	assert.Contains(t, prodErr.Error(), "500")
}

func TestHTTPClient_Unreachable(t *testing.T) {
	// grab a port and close it again so nothing listens there
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, 500*time.Millisecond)
	require.NoError(t, err)

	_, prodErr := c.Products(context.Background())
	assert.ErrorIs(t, prodErr, ErrUnavailable)

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestHTTPClient_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, prodErr := c.Products(context.Background())
	require.Error(t, prodErr)
	assert.Contains(t, prodErr.Error(), "decode")
}
