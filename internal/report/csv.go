package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seren4de/a11ylead/internal/model"
)

// WriteCSV writes one row per violation record plus a header. Column order
// is stable so downstream spreadsheets keep working.
func WriteCSV(w io.Writer, p *model.AuditProfile, grade model.LeadGrade) error {
	cw := csv.NewWriter(w)

	header := []string{"site", "run_id", "grade", "page_url", "rule_id", "severity", "occurrences", "description", "help_url"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, v := range p.Violations {
		row := []string{
			p.Site,
			p.RunID,
			string(grade),
			v.PageURL,
			v.RuleID,
			string(v.Severity),
			strconv.Itoa(v.Occurrences),
			strings.TrimSpace(v.Description),
			v.HelpURL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
