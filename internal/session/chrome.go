package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/seren4de/a11ylead/internal/interfaces"
	"github.com/seren4de/a11ylead/internal/model"
)

// evaluateTimeout bounds one rule-engine evaluation. Large pages with many
// nodes can take a while; navigation has its own per-call timeout.
const evaluateTimeout = 60 * time.Second

// ChromeSession is a single headless Chrome tab reused across all URLs of
// a run. Not safe for concurrent navigations.
type ChromeSession struct {
	tab         context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	engineJS    string
	logger      interfaces.Logger
}

// NewChromeSession starts a headless browser and loads the rule engine
// script. An unstartable browser or unloadable script is a construction
// error; callers treat it as fatal.
func NewChromeSession(cfg Config, logger interfaces.Logger) (interfaces.Session, error) {
	componentLogger := logger.With(interfaces.Field{Key: "component", Value: "chrome-session"})

	engineJS, err := loadEngineScript(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading rule engine script: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// Run with no actions to start the browser eagerly, so a missing or
	// broken Chrome binary surfaces here rather than on the first page.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	componentLogger.Info("browser session started",
		interfaces.Field{Key: "headless", Value: cfg.Headless},
		interfaces.Field{Key: "engine_bytes", Value: len(engineJS)})

	return &ChromeSession{
		tab:         tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
		engineJS:    engineJS,
		logger:      componentLogger,
	}, nil
}

// Navigate loads url in the shared tab. Success means the page's load
// event was reached; deferred script-driven mutations may still be running.
func (cs *ChromeSession) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	navCtx, cancel := context.WithTimeout(cs.tab, timeout)
	defer cancel()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Evaluate injects the rule engine into the currently loaded page and runs
// it scoped to the given guideline tag families.
func (cs *ChromeSession) Evaluate(ctx context.Context, tags []string) (*model.EngineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evalCtx, cancel := context.WithTimeout(cs.tab, evaluateTimeout)
	defer cancel()

	// Navigation resets the page's script world, so the engine is
	// re-injected before every evaluation.
	var loaded bool
	inject := cs.engineJS + `; typeof axe === "object"`
	if err := chromedp.Run(evalCtx, chromedp.Evaluate(inject, &loaded)); err != nil {
		return nil, fmt.Errorf("injecting rule engine: %w", err)
	}
	if !loaded {
		return nil, errors.New("rule engine did not initialize")
	}

	expr := fmt.Sprintf(`axe.run(document, {runOnly: {type: "tag", values: [%s]}})`, quoteTags(tags))
	var raw json.RawMessage
	err := chromedp.Run(evalCtx, chromedp.Evaluate(expr, &raw,
		func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}))
	if err != nil {
		return nil, fmt.Errorf("rule engine evaluation: %w", err)
	}

	var res model.EngineResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decoding engine result: %w", err)
	}

	cs.logger.Debug("evaluated page",
		interfaces.Field{Key: "violations", Value: len(res.Violations)},
		interfaces.Field{Key: "passes", Value: len(res.Passes)},
		interfaces.Field{Key: "incomplete", Value: len(res.Incomplete)})

	return &res, nil
}

// Close tears down the tab and the browser process.
func (cs *ChromeSession) Close() error {
	cs.logger.Info("closing browser session")
	cs.tabCancel()
	cs.allocCancel()
	return nil
}

func quoteTags(tags []string) string {
	quoted := make([]string, 0, len(tags))
	for _, t := range tags {
		quoted = append(quoted, fmt.Sprintf("%q", t))
	}
	return strings.Join(quoted, ", ")
}
