package server

import (
	"github.com/seren4de/a11ylead/internal/app"
	"github.com/seren4de/a11ylead/internal/logging"
)

type Config struct {
	// ListenAddr is the host:port the API binds to.
	ListenAddr string

	// AppConfig configures the orchestrator; nil means app.DefaultConfig().
	AppConfig *app.Config

	// Logger is optional; nil means a stdout logger.
	Logger logging.Logger
}
