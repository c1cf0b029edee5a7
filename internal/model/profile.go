package model

import "time"

// PageResult is the outcome of attempting to audit one URL: either a list
// of violations plus pass/incomplete counts, or a terminal failure marker.
// Exactly one PageResult exists per URL per run; a failed result never
// carries violations.
type PageResult struct {
	URL        string      `json:"url"`
	Violations []Violation `json:"violations,omitempty"`
	Passes     int         `json:"passes"`
	Incomplete int         `json:"incomplete"`

	Failed        bool   `json:"failed"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// NewPageSuccess builds a successful page outcome.
func NewPageSuccess(url string, violations []Violation, passes, incomplete int) PageResult {
	return PageResult{
		URL:        url,
		Violations: violations,
		Passes:     passes,
		Incomplete: incomplete,
	}
}

// NewPageFailure builds a failed page outcome carrying the error text.
func NewPageFailure(url, reason string) PageResult {
	return PageResult{
		URL:           url,
		Failed:        true,
		FailureReason: reason,
	}
}

// SeverityTally maps each severity level to the summed occurrence count of
// all violations of that severity across a run. It is recomputed whenever
// the full violation set is finalized, never partially updated.
type SeverityTally struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

// Add adds n occurrences to the severity's bucket.
func (t *SeverityTally) Add(sev Severity, n int) {
	switch sev {
	case SeverityCritical:
		t.Critical += n
	case SeveritySerious:
		t.Serious += n
	case SeverityModerate:
		t.Moderate += n
	default:
		t.Minor += n
	}
}

// Total is the sum of all four buckets.
func (t SeverityTally) Total() int {
	return t.Critical + t.Serious + t.Moderate + t.Minor
}

// CriticalSerious is the combined count of the two highest-impact buckets.
func (t SeverityTally) CriticalSerious() int {
	return t.Critical + t.Serious
}

// RuleFrequency is one entry of the rule frequency ranking: a rule
// identifier with its summed occurrence count across all pages. Rule
// identifiers are assumed severity-stable within one run.
type RuleFrequency struct {
	RuleID      string   `json:"rule_id"`
	Occurrences int      `json:"occurrences"`
	Severity    Severity `json:"severity"`
}

// AuditProfile is the complete, sealed aggregate of one scan run. It is
// the single artifact handed to the grading engine and the report
// renderers, which must treat it as read-only.
type AuditProfile struct {
	RunID     string    `json:"run_id"`
	Site      string    `json:"site"`
	StartedAt time.Time `json:"started_at"`

	PagesScanned int `json:"pages_scanned"`
	PagesFailed  int `json:"pages_failed"`

	Tally      SeverityTally   `json:"tally"`
	TopRules   []RuleFrequency `json:"top_rules"`
	Violations []Violation     `json:"violations"`
}

// TotalViolations is the total occurrence count used for grading.
func (p *AuditProfile) TotalViolations() int {
	return p.Tally.Total()
}

// LeadGrade is the discrete priority classification derived from an
// AuditProfile. It is recomputed from the profile whenever needed, never
// cached inconsistently with its source.
type LeadGrade string

const (
	GradeA    LeadGrade = "A"
	GradeB    LeadGrade = "B"
	GradeC    LeadGrade = "C"
	GradeSkip LeadGrade = "Skip"
)

// Level orders grades for monotonicity comparisons: Skip < C < B < A.
func (g LeadGrade) Level() int {
	switch g {
	case GradeA:
		return 3
	case GradeB:
		return 2
	case GradeC:
		return 1
	default:
		return 0
	}
}
