package auditor

import (
	"context"
	"time"

	"github.com/seren4de/a11ylead/internal/interfaces"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/model"
)

// Auditor drives the shared browser session across a filtered URL
// sequence, strictly sequentially, and produces exactly one PageResult per
// URL. It is the only component that performs network I/O against the
// target site.
type Auditor struct {
	cfg    Config
	sess   interfaces.Session
	logger logging.Logger

	// OnProgress, when set, is called after each page completes with the
	// number of pages done so far and the total.
	OnProgress func(done, total int)
}

// New creates an Auditor that exclusively owns sess for the run's duration.
func New(cfg Config, sess interfaces.Session, logger logging.Logger) *Auditor {
	if len(cfg.Tags) == 0 {
		cfg.Tags = WCAGTags
	}
	return &Auditor{
		cfg:    cfg,
		sess:   sess,
		logger: logger.With(logging.Field{Key: "component", Value: "auditor"}),
	}
}

// Audit scans every URL in order and returns one outcome per URL, in the
// input order. Per-page failures are recorded and never abort the run; the
// only early exit is caller context cancellation, which discards the run.
func (a *Auditor) Audit(ctx context.Context, urls []string) ([]model.PageResult, error) {
	results := make([]model.PageResult, 0, len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results = append(results, a.auditPage(ctx, url))

		if a.OnProgress != nil {
			a.OnProgress(i+1, len(urls))
		}

		// Politeness pause between pages, skipped after the last one.
		if i < len(urls)-1 && a.cfg.Politeness > 0 {
			time.Sleep(a.cfg.Politeness)
		}
	}

	return results, nil
}

func (a *Auditor) auditPage(ctx context.Context, url string) model.PageResult {
	a.logger.Info("auditing page", logging.Field{Key: "url", Value: url})

	if err := a.sess.Navigate(ctx, url, a.cfg.NavigationTimeout); err != nil {
		a.logger.Warn("navigation failed",
			logging.Field{Key: "url", Value: url},
			logging.Field{Key: "error", Value: err.Error()})
		return model.NewPageFailure(url, err.Error())
	}

	// Let deferred script-driven content finish mutating the page before
	// the rule engine looks at it.
	if a.cfg.SettleDelay > 0 {
		time.Sleep(a.cfg.SettleDelay)
	}

	res, err := a.sess.Evaluate(ctx, a.cfg.Tags)
	if err != nil {
		a.logger.Warn("evaluation failed",
			logging.Field{Key: "url", Value: url},
			logging.Field{Key: "error", Value: err.Error()})
		return model.NewPageFailure(url, err.Error())
	}

	violations := make([]model.Violation, 0, len(res.Violations))
	for _, check := range res.Violations {
		occurrences := len(check.Nodes)
		if occurrences == 0 {
			occurrences = 1
		}
		violations = append(violations, model.Violation{
			RuleID:      check.ID,
			Severity:    model.ParseSeverity(check.Impact),
			Description: check.Description,
			Help:        check.Help,
			HelpURL:     check.HelpURL,
			Tags:        check.Tags,
			PageURL:     url,
			Occurrences: occurrences,
		})
	}

	a.logger.Info("page audited",
		logging.Field{Key: "url", Value: url},
		logging.Field{Key: "violations", Value: len(violations)},
		logging.Field{Key: "passes", Value: len(res.Passes)})

	return model.NewPageSuccess(url, violations, len(res.Passes), len(res.Incomplete))
}
