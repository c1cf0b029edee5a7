package app

import (
	"github.com/seren4de/a11ylead/internal/auditor"
	"github.com/seren4de/a11ylead/internal/session"
	"github.com/seren4de/a11ylead/internal/sitemap"
	"github.com/seren4de/a11ylead/internal/urlfilter"
)

// Config contains the runtime configuration shared across internal
// modules. Per-package options live on the packages themselves; this only
// aggregates them.
type Config struct {
	// SitemapCfg configures sitemap discovery probes.
	SitemapCfg sitemap.Config

	// AuditorCfg configures navigation, settle and politeness timing.
	AuditorCfg auditor.Config

	// SessionCfg selects and configures the browser session backend.
	SessionCfg session.Config

	// MaxPages is the default page cap applied when a caller passes none.
	MaxPages int

	// StorePath is the SQLite database for audit history; empty disables
	// persistence.
	StorePath string
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SitemapCfg: sitemap.DefaultConfig(),
		AuditorCfg: auditor.DefaultConfig(),
		SessionCfg: session.DefaultConfig(),
		MaxPages:   urlfilter.DefaultMaxPages,
	}
}
