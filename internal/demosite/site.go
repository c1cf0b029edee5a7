package demosite

import (
	"fmt"
	"net/http"
	"strings"
)

// Site is a small HTTP server whose pages seed known accessibility
// defects, useful for exercising the audit pipeline end to end.
type Site struct {
	cfg   Config
	pages map[string]PageDefinition
}

// NewSite creates a new demo site instance.
func NewSite(cfg Config) *Site {
	pageMap := make(map[string]PageDefinition)
	for _, p := range GetAllPages() {
		pageMap[p.Path] = p
	}
	return &Site{cfg: cfg, pages: pageMap}
}

// Handler returns the site's HTTP handler. Exposed separately from Start
// so tests can mount it on an httptest.Server.
func (s *Site) Handler() http.Handler {
	mux := http.NewServeMux()

	for path := range s.pages {
		p := path // capture for closure
		mux.HandleFunc(p, s.pageHandler(p))
	}

	mux.HandleFunc("/sitemap.xml", s.sitemapHandler)
	mux.HandleFunc("/static/", s.staticHandler)

	return mux
}

// Start starts the demo site.
func (s *Site) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo site starting on http://localhost%s\n", addr)
	fmt.Printf("Sitemap at http://localhost%s/sitemap.xml\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Site) pageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := s.pages[path]
		if !ok || r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page.HTML))
	}
}

// sitemapHandler lists every demo page so discovery finds them all.
func (s *Site) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range GetAllPages() {
		fmt.Fprintf(&b, "  <url><loc>http://%s%s</loc></url>\n", r.Host, p.Path)
	}
	b.WriteString("</urlset>\n")

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(b.String()))
}

// staticHandler serves a 1x1 placeholder so seeded <img> tags resolve.
func (s *Site) staticHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>`))
}
