package urlfilter_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/seren4de/a11ylead/internal/urlfilter"
)

func TestFilter_DropsNonHTMLResources(t *testing.T) {
	t.Parallel()

	in := []string{
		"https://example.com/",
		"https://example.com/brochure.pdf",
		"https://example.com/team",
		"https://example.com/logo.png",
		"https://example.com/report.XLSX",
		"https://example.com/pricing.html",
		"https://example.com/feed.xml",
	}

	got := urlfilter.Filter(in, 100)

	want := []string{
		"https://example.com/",
		"https://example.com/team",
		"https://example.com/pricing.html",
	}
	if !reflect.DeepEqual(got.URLs, want) {
		t.Errorf("URLs = %v, want %v", got.URLs, want)
	}
	if got.Discovered != 7 {
		t.Errorf("Discovered = %d, want 7", got.Discovered)
	}
	if got.Retained != 3 {
		t.Errorf("Retained = %d, want 3", got.Retained)
	}
}

func TestFilter_PreservesOrderAndCap(t *testing.T) {
	t.Parallel()

	// 40 discovered, 5 denied resources interleaved, cap 10: the result is
	// exactly the first 10 surviving URLs in original order.
	var in []string
	for i := 0; i < 35; i++ {
		in = append(in, fmt.Sprintf("https://example.com/page-%02d", i))
	}
	denied := []string{
		"https://example.com/a.pdf",
		"https://example.com/b.jpg",
		"https://example.com/c.zip",
		"https://example.com/d.pdf",
		"https://example.com/e.png",
	}
	for i, d := range denied {
		pos := i * 7
		in = append(in[:pos], append([]string{d}, in[pos:]...)...)
	}
	if len(in) != 40 {
		t.Fatalf("fixture has %d urls, want 40", len(in))
	}

	got := urlfilter.Filter(in, 10)

	if got.Discovered != 40 || got.Retained != 35 {
		t.Errorf("Discovered/Retained = %d/%d, want 40/35", got.Discovered, got.Retained)
	}
	if len(got.URLs) != 10 {
		t.Fatalf("got %d urls, want 10", len(got.URLs))
	}
	for i, u := range got.URLs {
		want := fmt.Sprintf("https://example.com/page-%02d", i)
		if u != want {
			t.Errorf("URLs[%d] = %q, want %q (order must be preserved)", i, u, want)
		}
	}
}

func TestFilter_DefaultCap(t *testing.T) {
	t.Parallel()

	var in []string
	for i := 0; i < 100; i++ {
		in = append(in, fmt.Sprintf("https://example.com/p%d", i))
	}

	got := urlfilter.Filter(in, 0)
	if len(got.URLs) != urlfilter.DefaultMaxPages {
		t.Errorf("got %d urls, want default cap %d", len(got.URLs), urlfilter.DefaultMaxPages)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	got := urlfilter.Filter(nil, 10)
	if len(got.URLs) != 0 || got.Discovered != 0 || got.Retained != 0 {
		t.Errorf("unexpected result for empty input: %+v", got)
	}
}
