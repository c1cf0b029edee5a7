package urlfilter

import (
	"net/url"
	"path"
	"strings"
)

// DefaultMaxPages is the operator-facing default page cap.
const DefaultMaxPages = 25

// denyExtensions lists file-extension suffixes of non-HTML resources that
// are never worth auditing: documents, images, archives, spreadsheets,
// media and machine-readable feeds.
var denyExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".odt": {},
	".xls": {}, ".xlsx": {}, ".csv": {},
	".ppt": {}, ".pptx": {},
	".zip": {}, ".gz": {}, ".tar": {}, ".rar": {}, ".7z": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".svg": {}, ".webp": {}, ".ico": {},
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".webm": {},
	".css": {}, ".js": {},
	".xml": {}, ".json": {}, ".rss": {}, ".atom": {},
}

// Result is a filtered, bounded scan sequence plus the counts an operator
// sees in the run summary.
type Result struct {
	// URLs is the bounded ordered sequence to scan. Order matches the
	// input order; it determines scan sequence and therefore partial-run
	// coverage if a run is interrupted.
	URLs []string

	// Discovered is how many candidate URLs were supplied.
	Discovered int

	// Retained is how many survived filtering before truncation.
	Retained int
}

// Filter drops non-HTML resource URLs from candidates and truncates the
// survivors to the first maxPages entries in their original order. A
// non-positive maxPages falls back to DefaultMaxPages.
func Filter(candidates []string, maxPages int) Result {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	kept := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		if scannable(raw) {
			kept = append(kept, raw)
		}
	}

	res := Result{
		Discovered: len(candidates),
		Retained:   len(kept),
	}
	if len(kept) > maxPages {
		kept = kept[:maxPages]
	}
	res.URLs = kept
	return res
}

// scannable reports whether the URL looks like an HTML page rather than a
// binary or document resource. URLs that fail to parse are kept; the
// auditor will surface them as per-page failures rather than silently
// narrowing coverage here.
func scannable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return true
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return true
	}
	_, denied := denyExtensions[ext]
	return !denied
}
