package grading

import "github.com/seren4de/a11ylead/internal/model"

// Threshold rules, evaluated in precedence order; first match wins.
const (
	gradeAHighImpact = 10 // critical+serious for grade A
	gradeATotal      = 25 // total violations for grade A
	gradeBHighImpact = 5
	gradeBTotal      = 15
)

// Grade maps an audit profile to its lead grade. It is a pure function of
// the profile's severity tally and total violation count: no randomness,
// no external state, fully reproducible from the same profile.
func Grade(p *model.AuditProfile) model.LeadGrade {
	highImpact := p.Tally.CriticalSerious()
	total := p.TotalViolations()

	switch {
	case highImpact >= gradeAHighImpact || total >= gradeATotal:
		return model.GradeA
	case highImpact >= gradeBHighImpact || total >= gradeBTotal:
		return model.GradeB
	case total >= 1:
		return model.GradeC
	default:
		return model.GradeSkip
	}
}

// NoData reports whether the profile carries no scan data at all, i.e. not
// a single page was successfully scanned. A Skip grade on such a profile
// means "nothing measured", not "site is compliant"; renderers surface
// this distinctly.
func NoData(p *model.AuditProfile) bool {
	return p.PagesScanned == 0
}
