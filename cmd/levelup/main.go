package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/levelup-gaming/levelup/internal/app/cli"
	"github.com/levelup-gaming/levelup/internal/app/config"
	"github.com/levelup-gaming/levelup/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, nil)),
	).With("run_id", uuid.NewString())

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
