package sitemap

import "time"

type Config struct {
	// ProbeTimeout bounds each individual sitemap location probe.
	ProbeTimeout time.Duration

	// MaxChildSitemaps limits how many child sitemaps of an index-style
	// sitemap are followed.
	MaxChildSitemaps int

	// UserAgent is sent on every probe request.
	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		ProbeTimeout:     10 * time.Second,
		MaxChildSitemaps: 5,
		UserAgent:        "a11ylead/0.1 (+https://github.com/seren4de/a11ylead)",
	}
}
