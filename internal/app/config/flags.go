package config

import (
	"flag"
	"os"
	"time"

	"github.com/levelup-gaming/levelup/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string        base URL of the catalog API
//	-d string        path to the local database file
//	-t int           catalog request timeout in seconds
//	-strict-email    validate emails strictly on registration
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-strict-email"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.CatalogBaseURL, "a", cfg.CatalogBaseURL, "base URL of the catalog API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "catalog request timeout (in seconds)")
	fs.BoolVar(&cfg.StrictEmail, "strict-email", cfg.StrictEmail, "validate emails strictly")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
