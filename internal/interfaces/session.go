package interfaces

import (
	"context"
	"time"

	"github.com/seren4de/a11ylead/internal/model"
)

// Session is a single persistent browser page context reused across the
// URLs of one audit run. Implementations are not safe for concurrent
// navigations; the auditor owns the session exclusively for the run's
// duration.
type Session interface {
	// Navigate loads url in the shared page context. Success means the
	// page load event was reached, not that asynchronous content settled.
	Navigate(ctx context.Context, url string, timeout time.Duration) error

	// Evaluate runs the accessibility rule engine against the currently
	// loaded page, scoped to the given guideline tag families.
	Evaluate(ctx context.Context, tags []string) (*model.EngineResult, error)

	// Close releases the browser context.
	Close() error
}
