package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/config"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/localstore"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/remotebin"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// newTestGateway builds a gateway over an in-memory sqlite store with cloud
// sync unconfigured, so no network calls ever happen.
func newTestGateway(t *testing.T) *gateway.Gateway {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	remote := remotebin.NewBinClient("http://127.0.0.1:0", time.Second)
	return gateway.New(localstore.NewSQLiteStore(db), remote, log, false)
}

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(newTestGateway(t), "GRACE", config.DefaultSeedUsers())
}
