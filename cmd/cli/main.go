package main

import (
	"context"
	"io"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/cli"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/config"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Keep the interactive prompt free of log noise.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
