package sitemap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/utils"
)

// Provenance tags how a candidate URL set was produced.
type Provenance string

const (
	ProvenanceSitemap  Provenance = "sitemap"
	ProvenanceFallback Provenance = "fallback"
)

// Discovery is the candidate URL set discovered for one site at one point
// in time, immutable after discovery.
type Discovery struct {
	URLs   []string
	Source Provenance
}

// probePaths are the conventional sitemap locations, probed in order: a
// plain sitemap, an index-style sitemap, a nested sitemap path and the
// WordPress core sitemap.
var probePaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap/sitemap.xml",
	"/wp-sitemap.xml",
}

// maxSitemapBytes caps how much of a sitemap response is read.
const maxSitemapBytes = 10 << 20

// Resolver discovers candidate page URLs from a site's conventional
// sitemap locations, falling back to the root URL when none exist.
type Resolver struct {
	cfg    Config
	client *http.Client
	logger logging.Logger
}

// NewResolver creates a Resolver. httpClient may be nil, in which case a
// default client is used; per-probe timeouts come from cfg either way.
func NewResolver(cfg Config, httpClient *http.Client, logger logging.Logger) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Resolver{
		cfg:    cfg,
		client: httpClient,
		logger: logger.With(logging.Field{Key: "component", Value: "sitemap"}),
	}
}

// strategy is one lazily evaluated probe attempt.
type strategy struct {
	location string
	run      func(ctx context.Context) ([]string, error)
}

// Resolve probes the conventional sitemap locations of rootURL's origin in
// order and returns the first non-empty parseable URL list. Probe errors
// are never escalated; exhausting every location yields a fallback set
// containing only the root URL. Resolve fails only on a malformed root.
func (r *Resolver) Resolve(ctx context.Context, rootURL string) (*Discovery, error) {
	root, err := utils.Canonicalize(rootURL, utils.CanonicalizeOptions{DefaultScheme: "https"})
	if err != nil {
		return nil, fmt.Errorf("invalid root url %q: %w", rootURL, err)
	}
	origin, err := utils.Origin(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root url %q: %w", rootURL, err)
	}

	for _, st := range r.strategies(origin) {
		urls, err := st.run(ctx)
		if err != nil {
			r.logger.Debug("sitemap probe failed",
				logging.Field{Key: "location", Value: st.location},
				logging.Field{Key: "error", Value: err.Error()})
			continue
		}
		if len(urls) == 0 {
			r.logger.Debug("sitemap probe empty",
				logging.Field{Key: "location", Value: st.location})
			continue
		}
		r.logger.Info("sitemap discovered",
			logging.Field{Key: "location", Value: st.location},
			logging.Field{Key: "urls", Value: len(urls)})
		return &Discovery{URLs: urls, Source: ProvenanceSitemap}, nil
	}

	r.logger.Info("no sitemap found, falling back to root url",
		logging.Field{Key: "root", Value: root})
	return &Discovery{URLs: []string{root}, Source: ProvenanceFallback}, nil
}

// strategies builds the ordered probe list for one origin. Each entry is
// evaluated lazily so a successful early probe short-circuits the rest.
func (r *Resolver) strategies(origin string) []strategy {
	out := make([]strategy, 0, len(probePaths))
	for _, p := range probePaths {
		loc := origin + p
		out = append(out, strategy{
			location: loc,
			run: func(ctx context.Context) ([]string, error) {
				return r.probe(ctx, loc)
			},
		})
	}
	return out
}

// probe fetches one sitemap location and extracts page URLs from it,
// following index-style sitemaps one level into their children.
func (r *Resolver) probe(ctx context.Context, location string) ([]string, error) {
	doc, err := r.fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	urls := extractPageURLs(doc)
	if len(urls) > 0 {
		return urls, nil
	}

	// Index-style sitemap: its <sitemap><loc> entries point at child
	// sitemaps rather than pages.
	children := extractChildSitemaps(doc)
	if len(children) > r.cfg.MaxChildSitemaps {
		children = children[:r.cfg.MaxChildSitemaps]
	}
	for _, child := range children {
		childDoc, err := r.fetch(ctx, child)
		if err != nil {
			r.logger.Debug("child sitemap fetch failed",
				logging.Field{Key: "location", Value: child},
				logging.Field{Key: "error", Value: err.Error()})
			continue
		}
		urls = append(urls, extractPageURLs(childDoc)...)
	}
	return urls, nil
}

func (r *Resolver) fetch(ctx context.Context, location string) (*goquery.Document, error) {
	reqCtx, cancel := context.WithTimeout(ctx, r.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxSitemapBytes))
	if err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}
	return doc, nil
}

// extractPageURLs pulls <url><loc> entries out of a urlset-style sitemap.
func extractPageURLs(doc *goquery.Document) []string {
	var urls []string
	doc.Find("url loc").Each(func(_ int, sel *goquery.Selection) {
		if u := cleanLoc(sel.Text()); u != "" {
			urls = append(urls, u)
		}
	})
	return urls
}

// extractChildSitemaps pulls <sitemap><loc> entries out of an index-style
// sitemap.
func extractChildSitemaps(doc *goquery.Document) []string {
	var urls []string
	doc.Find("sitemap loc").Each(func(_ int, sel *goquery.Selection) {
		if u := cleanLoc(sel.Text()); u != "" {
			urls = append(urls, u)
		}
	})
	return urls
}

func cleanLoc(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return ""
	}
	return text
}
