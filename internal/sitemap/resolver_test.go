package sitemap_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seren4de/a11ylead/internal/interfaces"
	"github.com/seren4de/a11ylead/internal/sitemap"
)

func testConfig() sitemap.Config {
	cfg := sitemap.DefaultConfig()
	cfg.ProbeTimeout = 2 * time.Second
	return cfg
}

func urlset(locs ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, l := range locs {
		body += "<url><loc>" + l + "</loc></url>"
	}
	return body + "</urlset>"
}

func TestResolve_PlainSitemap(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(srv.URL+"/", srv.URL+"/about", srv.URL+"/contact"))
	})

	r := sitemap.NewResolver(testConfig(), srv.Client(), interfaces.NewTestLogger(false))
	d, err := r.Resolve(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if d.Source != sitemap.ProvenanceSitemap {
		t.Errorf("Source = %q, want %q", d.Source, sitemap.ProvenanceSitemap)
	}
	if len(d.URLs) != 3 {
		t.Fatalf("got %d urls, want 3: %v", len(d.URLs), d.URLs)
	}
	if d.URLs[1] != srv.URL+"/about" {
		t.Errorf("URLs[1] = %q, want %q", d.URLs[1], srv.URL+"/about")
	}
}

func TestResolve_IndexSitemapFollowsChildren(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// Plain sitemap missing; index sitemap points at two children.
	mux.HandleFunc("/sitemap_index.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
			<sitemap><loc>%s/pages.xml</loc></sitemap>
			<sitemap><loc>%s/posts.xml</loc></sitemap>
		</sitemapindex>`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(srv.URL+"/", srv.URL+"/pricing"))
	})
	mux.HandleFunc("/posts.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(srv.URL+"/blog/hello"))
	})

	r := sitemap.NewResolver(testConfig(), srv.Client(), interfaces.NewTestLogger(false))
	d, err := r.Resolve(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if d.Source != sitemap.ProvenanceSitemap {
		t.Errorf("Source = %q, want %q", d.Source, sitemap.ProvenanceSitemap)
	}
	if len(d.URLs) != 3 {
		t.Fatalf("got %d urls, want 3: %v", len(d.URLs), d.URLs)
	}
}

func TestResolve_FirstMatchShortCircuits(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var wpProbed bool
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(srv.URL+"/from-plain"))
	})
	mux.HandleFunc("/wp-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		wpProbed = true
		fmt.Fprint(w, urlset(srv.URL+"/from-wp"))
	})

	r := sitemap.NewResolver(testConfig(), srv.Client(), interfaces.NewTestLogger(false))
	d, err := r.Resolve(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if wpProbed {
		t.Error("later probe was attempted after an earlier probe succeeded")
	}
	if len(d.URLs) != 1 || d.URLs[0] != srv.URL+"/from-plain" {
		t.Errorf("unexpected urls: %v", d.URLs)
	}
}

func TestResolve_FallbackWhenExhausted(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// Serve garbage at one probed location, 404 everywhere else. Both must
	// be treated as "not found here".
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a sitemap")
	})

	r := sitemap.NewResolver(testConfig(), srv.Client(), interfaces.NewTestLogger(false))
	d, err := r.Resolve(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if d.Source != sitemap.ProvenanceFallback {
		t.Errorf("Source = %q, want %q", d.Source, sitemap.ProvenanceFallback)
	}
	if len(d.URLs) != 1 || d.URLs[0] != srv.URL+"/" {
		t.Errorf("fallback urls = %v, want exactly the root url", d.URLs)
	}
}

func TestResolve_InvalidRootIsFatal(t *testing.T) {
	t.Parallel()

	r := sitemap.NewResolver(testConfig(), nil, interfaces.NewTestLogger(false))
	if _, err := r.Resolve(context.Background(), "::::not a url"); err == nil {
		t.Fatal("expected error for malformed root url")
	}
}
