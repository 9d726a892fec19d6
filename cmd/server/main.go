package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/bibleapi"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/config"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/localstore"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/remotebin"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/server"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"

	_ "modernc.org/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx := context.Background()
	store, db, err := localstore.InitDatabase(ctx, cfg.LocalDSN)
	if err != nil {
		log.Fatal("database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("database close:", err)
		}
	}()

	remote := remotebin.NewBinClient(remotebin.DefaultBaseURL, cfg.RemoteTimeout)
	gw := gateway.New(store, remote, logger, cfg.GuardedSave)

	router := server.NewRouter(server.Deps{
		Config:     cfg,
		Gateway:    gw,
		Auth:       services.NewAuthService(gw, cfg.MinistryCode, cfg.SeedUsers),
		Prayers:    services.NewPrayerService(gw),
		Videos:     services.NewVideoService(gw),
		Schedule:   services.NewScheduleService(gw),
		Bible:      services.NewBibleService(gw, bibleapi.NewHTTPClient(bibleapi.DefaultBaseURL, cfg.RemoteTimeout)),
		Devotional: services.NewDevotionalService(),
	})

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: router}
	go func() {
		log.Println("server listening on " + cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
