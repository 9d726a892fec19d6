package config

import (
	"flag"
	"os"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   listen address for the HTTP server
//	-d string   path of the local sqlite store
//	-t int      remote call timeout in seconds
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "listen address for the HTTP server")
	fs.StringVar(&cfg.LocalDSN, "d", cfg.LocalDSN, "path of the local sqlite store")
	remoteTimeout := fs.Int("t", int(cfg.RemoteTimeout.Seconds()), "remote call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RemoteTimeout = time.Duration(*remoteTimeout) * time.Second
}
