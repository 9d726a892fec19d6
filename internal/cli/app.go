package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/bibleapi"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/config"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/localstore"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/remotebin"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It drives the same services as the HTTP
// server, directly against the local store.
type App struct {
	config     *config.Config
	db         *sql.DB
	gw         *gateway.Gateway
	auth       services.AuthService
	prayers    services.PrayerService
	videos     services.VideoService
	schedule   services.ScheduleService
	bible      services.BibleService
	devotional services.DevotionalService
	session    *models.Session
	reader     *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, db, err := localstore.InitDatabase(ctx, cfg.LocalDSN)
	if err != nil {
		return nil, err
	}

	remote := remotebin.NewBinClient(remotebin.DefaultBaseURL, cfg.RemoteTimeout)
	gw := gateway.New(store, remote, log, cfg.GuardedSave)

	a := &App{
		config:     cfg,
		db:         db,
		gw:         gw,
		auth:       services.NewAuthService(gw, cfg.MinistryCode, cfg.SeedUsers),
		prayers:    services.NewPrayerService(gw),
		videos:     services.NewVideoService(gw),
		schedule:   services.NewScheduleService(gw),
		bible:      services.NewBibleService(gw, bibleapi.NewHTTPClient(bibleapi.DefaultBaseURL, cfg.RemoteTimeout)),
		devotional: services.NewDevotionalService(),
		reader:     bufio.NewReader(os.Stdin),
	}

	// Restore a session persisted by a previous run.
	a.session = a.auth.CurrentUser(ctx)
	return a, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.IsAdmin()
}
