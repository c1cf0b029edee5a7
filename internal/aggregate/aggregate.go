package aggregate

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/seren4de/a11ylead/internal/model"
)

// TopRulesLimit bounds the rule frequency ranking.
const TopRulesLimit = 10

// BuildProfile normalizes the complete outcome list of one run into a
// sealed AuditProfile. It has no failure mode: a run with zero
// successfully scanned pages yields a valid empty profile.
func BuildProfile(site string, startedAt time.Time, outcomes []model.PageResult) *model.AuditProfile {
	p := &model.AuditProfile{
		RunID:      uuid.New().String(),
		Site:       site,
		StartedAt:  startedAt,
		Violations: []model.Violation{},
		TopRules:   []model.RuleFrequency{},
	}

	for _, out := range outcomes {
		if out.Failed {
			p.PagesFailed++
			continue
		}
		p.PagesScanned++
		p.Violations = append(p.Violations, out.Violations...)
	}

	for _, v := range p.Violations {
		p.Tally.Add(v.Severity, v.Occurrences)
	}

	p.TopRules = rankRules(p.Violations)
	return p
}

// rankRules groups violations by rule identifier, sums occurrence counts,
// and returns the top rules by summed count, descending. Rule identifiers
// are severity-stable within one run, so the first record's severity is
// kept. Ties keep first-encounter order.
func rankRules(violations []model.Violation) []model.RuleFrequency {
	index := make(map[string]int)
	ranking := make([]model.RuleFrequency, 0)

	for _, v := range violations {
		if i, ok := index[v.RuleID]; ok {
			ranking[i].Occurrences += v.Occurrences
			continue
		}
		index[v.RuleID] = len(ranking)
		ranking = append(ranking, model.RuleFrequency{
			RuleID:      v.RuleID,
			Occurrences: v.Occurrences,
			Severity:    v.Severity,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Occurrences > ranking[j].Occurrences
	})

	if len(ranking) > TopRulesLimit {
		ranking = ranking[:TopRulesLimit]
	}
	return ranking
}
