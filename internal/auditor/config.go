package auditor

import "time"

// WCAGTags are the guideline tag families every evaluation is scoped to:
// WCAG 2.0 and 2.1, levels A and AA.
var WCAGTags = []string{"wcag2a", "wcag2aa", "wcag21a", "wcag21aa"}

type Config struct {
	// NavigationTimeout bounds each page navigation.
	NavigationTimeout time.Duration

	// SettleDelay is the fixed pause between navigation and evaluation,
	// compensating for deferred script-driven content the rule engine
	// cannot otherwise wait for.
	SettleDelay time.Duration

	// Politeness is the fixed inter-request delay between successive
	// pages. It paces request volume against the target server; tests
	// inject zero.
	Politeness time.Duration

	// Tags scopes the rule engine; empty means WCAGTags.
	Tags []string
}

func DefaultConfig() Config {
	return Config{
		NavigationTimeout: 30 * time.Second,
		SettleDelay:       3 * time.Second,
		Politeness:        time.Second,
		Tags:              WCAGTags,
	}
}
