package app

import (
	"context"
	"fmt"
	"time"

	"github.com/seren4de/a11ylead/internal/aggregate"
	"github.com/seren4de/a11ylead/internal/auditor"
	"github.com/seren4de/a11ylead/internal/grading"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/model"
	"github.com/seren4de/a11ylead/internal/session"
	"github.com/seren4de/a11ylead/internal/sitemap"
	"github.com/seren4de/a11ylead/internal/store"
	"github.com/seren4de/a11ylead/internal/urlfilter"
	"github.com/seren4de/a11ylead/internal/utils"
)

// RunResult is the sealed output of one completed audit run.
type RunResult struct {
	Profile *model.AuditProfile `json:"profile"`
	Grade   model.LeadGrade     `json:"grade"`

	// Provenance records whether page discovery came from a sitemap or
	// fell back to the root URL.
	Provenance sitemap.Provenance `json:"provenance"`

	// Discovered and Retained are the URL counts before and after
	// filtering.
	Discovered int `json:"discovered"`
	Retained   int `json:"retained"`
}

// Orchestrator wires discovery, filtering, auditing, aggregation and
// grading into the single "run an audit" operation, and wraps it in
// trackable jobs for the HTTP layer.
type Orchestrator struct {
	cfg    *Config
	store  *store.Store
	logger logging.Logger

	jobs *jobTable
}

// NewOrchestrator ties together config, optional store and logger. st may
// be nil when persistence is disabled.
func NewOrchestrator(cfg *Config, st *store.Store, logger logging.Logger) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator{
		cfg:    cfg,
		store:  st,
		logger: logger,
		jobs:   newJobTable(),
	}
}

// Store exposes the orchestrator's audit history store; nil when
// persistence is disabled.
func (o *Orchestrator) Store() *store.Store {
	return o.store
}

// RunAudit runs the full pipeline for one site: discover candidate pages,
// filter them to maxPages, audit each sequentially, aggregate the outcomes
// and grade the result. It fails only on a malformed target URL or an
// unstartable browser session; per-page failures are absorbed into the
// profile. maxPages <= 0 means the configured default.
func (o *Orchestrator) RunAudit(ctx context.Context, target string, maxPages int) (*RunResult, error) {
	return o.runAudit(ctx, target, maxPages, nil)
}

func (o *Orchestrator) runAudit(ctx context.Context, target string, maxPages int, onProgress func(done, total int)) (*RunResult, error) {
	startedAt := time.Now().UTC()

	site, err := utils.Canonicalize(target, utils.CanonicalizeOptions{DefaultScheme: "https"})
	if err != nil {
		return nil, fmt.Errorf("invalid target url %q: %w", target, err)
	}
	if maxPages <= 0 {
		maxPages = o.cfg.MaxPages
	}

	sess, err := session.NewSession(o.cfg.SessionCfg, o.logger)
	if err != nil {
		return nil, fmt.Errorf("starting browser session: %w", err)
	}
	defer sess.Close()

	resolver := sitemap.NewResolver(o.cfg.SitemapCfg, nil, o.logger)
	discovery, err := resolver.Resolve(ctx, site)
	if err != nil {
		return nil, err
	}

	filtered := urlfilter.Filter(discovery.URLs, maxPages)
	o.logger.Info("scan plan ready",
		logging.Field{Key: "site", Value: site},
		logging.Field{Key: "provenance", Value: string(discovery.Source)},
		logging.Field{Key: "discovered", Value: filtered.Discovered},
		logging.Field{Key: "retained", Value: filtered.Retained},
		logging.Field{Key: "scanning", Value: len(filtered.URLs)})

	aud := auditor.New(o.cfg.AuditorCfg, sess, o.logger)
	aud.OnProgress = onProgress
	outcomes, err := aud.Audit(ctx, filtered.URLs)
	if err != nil {
		// Interrupted run: partial data is discarded, not graded.
		return nil, err
	}

	profile := aggregate.BuildProfile(site, startedAt, outcomes)
	grade := grading.Grade(profile)

	o.logger.Info("audit complete",
		logging.Field{Key: "site", Value: site},
		logging.Field{Key: "run_id", Value: profile.RunID},
		logging.Field{Key: "pages_scanned", Value: profile.PagesScanned},
		logging.Field{Key: "pages_failed", Value: profile.PagesFailed},
		logging.Field{Key: "total_violations", Value: profile.TotalViolations()},
		logging.Field{Key: "grade", Value: string(grade)})

	if o.store != nil {
		if err := o.store.SaveProfile(ctx, profile, grade); err != nil {
			o.logger.Warn("persisting audit failed",
				logging.Field{Key: "run_id", Value: profile.RunID},
				logging.Field{Key: "error", Value: err.Error()})
		}
	}

	return &RunResult{
		Profile:    profile,
		Grade:      grade,
		Provenance: discovery.Source,
		Discovered: filtered.Discovered,
		Retained:   filtered.Retained,
	}, nil
}

// Close releases the orchestrator's resources.
func (o *Orchestrator) Close() {
	if o.store != nil {
		o.store.Close()
	}
}
