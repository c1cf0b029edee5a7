package report

import (
	"fmt"
	"strings"

	"github.com/seren4de/a11ylead/internal/grading"
	"github.com/seren4de/a11ylead/internal/model"
)

// RenderText renders the sealed profile and its grade as a plaintext
// summary for operators. The profile is read-only; the grade is taken as
// computed, never re-derived here.
func RenderText(p *model.AuditProfile, grade model.LeadGrade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Accessibility audit: %s\n", p.Site)
	fmt.Fprintf(&b, "Run %s at %s\n", p.RunID, p.StartedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Pages scanned: %d, failed: %d\n", p.PagesScanned, p.PagesFailed)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Violations by severity (total %d):\n", p.TotalViolations())
	fmt.Fprintf(&b, "  critical:  %d\n", p.Tally.Critical)
	fmt.Fprintf(&b, "  serious:   %d\n", p.Tally.Serious)
	fmt.Fprintf(&b, "  moderate:  %d\n", p.Tally.Moderate)
	fmt.Fprintf(&b, "  minor:     %d\n", p.Tally.Minor)
	b.WriteString("\n")

	if len(p.TopRules) > 0 {
		b.WriteString("Most frequent rules:\n")
		for i, rf := range p.TopRules {
			fmt.Fprintf(&b, "  %2d. %-28s %4d  (%s)\n", i+1, rf.RuleID, rf.Occurrences, rf.Severity)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Lead grade: %s\n", grade)

	if grading.NoData(p) {
		b.WriteString("Warning: no page was successfully scanned; the grade reflects absence of data, not compliance.\n")
	}

	return b.String()
}
