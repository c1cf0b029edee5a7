package report

import (
	"encoding/json"

	"github.com/seren4de/a11ylead/internal/model"
)

// Export is the structured-data shape of one completed run.
type Export struct {
	Profile *model.AuditProfile `json:"profile"`
	Grade   model.LeadGrade     `json:"grade"`
}

// RenderJSON serializes the sealed profile and grade.
func RenderJSON(p *model.AuditProfile, grade model.LeadGrade) ([]byte, error) {
	return json.MarshalIndent(Export{Profile: p, Grade: grade}, "", "  ")
}
