package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/seren4de/a11ylead/internal/model"
)

// Compare renders a line-oriented diff between two runs' plaintext
// summaries, prefixed git-style: "-" for lines only in the earlier run,
// "+" for lines only in the later one.
func Compare(prev, curr *model.AuditProfile, prevGrade, currGrade model.LeadGrade) string {
	prevText := RenderText(prev, prevGrade)
	currText := RenderText(curr, currGrade)

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(prevText, currText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}
