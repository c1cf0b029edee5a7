package model

import "strings"

// Severity is the closed, ordered classification of a violation's access
// impact: critical > serious > moderate > minor.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Severities lists all levels from most to least severe.
var Severities = []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor}

// Rank returns the ordinal position of the severity, higher is more severe.
// Unknown severities rank below minor.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeveritySerious:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	default:
		return 0
	}
}

// ParseSeverity maps a rule-engine impact token to a Severity. The engine
// occasionally reports an empty or unknown impact; those map to minor so a
// reported violation is never dropped from the tally.
func ParseSeverity(token string) Severity {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "critical":
		return SeverityCritical
	case "serious":
		return SeveritySerious
	case "moderate":
		return SeverityModerate
	default:
		return SeverityMinor
	}
}
