// Command server exposes the a11ylead audit pipeline over HTTP and
// WebSocket. Usage: go run ./cmd/server [-listen addr] [-db path]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/seren4de/a11ylead/internal/app"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/server"
)

func main() {
	var (
		listen     = flag.String("listen", "127.0.0.1:8080", "Address the API binds to")
		dbPath     = flag.String("db", "a11ylead.db", "Path to the sqlite audit history (empty disables persistence)")
		enginePath = flag.String("engine", "", "Path to a local axe-core script (empty=fetch from CDN)")
	)
	flag.Parse()

	logger := logging.NewStdoutLogger("Server")

	cfg := app.DefaultConfig()
	cfg.StorePath = *dbPath
	if *enginePath != "" {
		cfg.SessionCfg.EnginePath = *enginePath
	}

	srv, err := server.NewServer(server.Config{
		ListenAddr: *listen,
		AppConfig:  cfg,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
	defer srv.Close()

	logger.Info("listening", logging.Field{Key: "addr", Value: *listen})
	if err := srv.HTTPServer().ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
