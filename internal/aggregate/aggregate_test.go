package aggregate_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/seren4de/a11ylead/internal/aggregate"
	"github.com/seren4de/a11ylead/internal/model"
)

func v(rule string, sev model.Severity, page string, n int) model.Violation {
	return model.Violation{RuleID: rule, Severity: sev, PageURL: page, Occurrences: n}
}

func TestBuildProfile_TallySumsOccurrences(t *testing.T) {
	t.Parallel()

	outcomes := []model.PageResult{
		model.NewPageSuccess("https://x.test/a", []model.Violation{
			v("image-alt", model.SeverityCritical, "https://x.test/a", 3),
			v("link-name", model.SeveritySerious, "https://x.test/a", 1),
		}, 10, 0),
		model.NewPageSuccess("https://x.test/b", []model.Violation{
			v("image-alt", model.SeverityCritical, "https://x.test/b", 2),
			v("region", model.SeverityModerate, "https://x.test/b", 4),
		}, 8, 1),
		model.NewPageFailure("https://x.test/c", "navigation timeout"),
	}

	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(), outcomes)

	if p.PagesScanned != 2 || p.PagesFailed != 1 {
		t.Errorf("PagesScanned/PagesFailed = %d/%d, want 2/1", p.PagesScanned, p.PagesFailed)
	}
	if p.Tally.Critical != 5 {
		t.Errorf("Tally.Critical = %d, want 5 (occurrence counts, not record counts)", p.Tally.Critical)
	}
	if p.Tally.Serious != 1 || p.Tally.Moderate != 4 || p.Tally.Minor != 0 {
		t.Errorf("unexpected tally: %+v", p.Tally)
	}
	if p.TotalViolations() != 10 {
		t.Errorf("TotalViolations = %d, want 10", p.TotalViolations())
	}
	if p.RunID == "" {
		t.Error("profile is missing a run id")
	}
}

// The occurrence-count sum across the untruncated ranking always equals the
// severity tally total.
func TestBuildProfile_RankingTallyInvariant(t *testing.T) {
	t.Parallel()

	var violations []model.Violation
	sevs := []model.Severity{model.SeverityCritical, model.SeveritySerious, model.SeverityModerate, model.SeverityMinor}
	for i := 0; i < 8; i++ { // 8 distinct rules, under the top-N cut
		violations = append(violations, v(fmt.Sprintf("rule-%d", i), sevs[i%4], "https://x.test/", i+1))
	}

	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(),
		[]model.PageResult{model.NewPageSuccess("https://x.test/", violations, 0, 0)})

	rankingSum := 0
	for _, rf := range p.TopRules {
		rankingSum += rf.Occurrences
	}
	if rankingSum != p.Tally.Total() {
		t.Errorf("ranking sum %d != tally total %d", rankingSum, p.Tally.Total())
	}
}

func TestBuildProfile_RankingOrderAndTruncation(t *testing.T) {
	t.Parallel()

	var violations []model.Violation
	for i := 0; i < 14; i++ {
		violations = append(violations, v(fmt.Sprintf("rule-%02d", i), model.SeverityMinor, "https://x.test/", i+1))
	}
	// rule-13 has 14 occurrences, descending from there.

	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(),
		[]model.PageResult{model.NewPageSuccess("https://x.test/", violations, 0, 0)})

	if len(p.TopRules) != aggregate.TopRulesLimit {
		t.Fatalf("ranking has %d entries, want %d", len(p.TopRules), aggregate.TopRulesLimit)
	}
	if p.TopRules[0].RuleID != "rule-13" || p.TopRules[0].Occurrences != 14 {
		t.Errorf("TopRules[0] = %+v, want rule-13 with 14", p.TopRules[0])
	}
	for i := 1; i < len(p.TopRules); i++ {
		if p.TopRules[i].Occurrences > p.TopRules[i-1].Occurrences {
			t.Errorf("ranking not descending at %d: %+v", i, p.TopRules)
		}
	}
}

func TestBuildProfile_GroupsAcrossPages(t *testing.T) {
	t.Parallel()

	outcomes := []model.PageResult{
		model.NewPageSuccess("https://x.test/a",
			[]model.Violation{v("color-contrast", model.SeveritySerious, "https://x.test/a", 6)}, 0, 0),
		model.NewPageSuccess("https://x.test/b",
			[]model.Violation{v("color-contrast", model.SeveritySerious, "https://x.test/b", 4)}, 0, 0),
	}

	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(), outcomes)

	if len(p.TopRules) != 1 {
		t.Fatalf("got %d ranking entries, want 1", len(p.TopRules))
	}
	rf := p.TopRules[0]
	if rf.RuleID != "color-contrast" || rf.Occurrences != 10 || rf.Severity != model.SeveritySerious {
		t.Errorf("unexpected ranking entry: %+v", rf)
	}
}

func TestBuildProfile_ZeroPagesIsValidEmptyProfile(t *testing.T) {
	t.Parallel()

	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(), nil)
	if p == nil {
		t.Fatal("nil profile for empty run")
	}
	if p.TotalViolations() != 0 || p.PagesScanned != 0 || p.PagesFailed != 0 {
		t.Errorf("unexpected empty profile: %+v", p)
	}
	if p.Violations == nil || p.TopRules == nil {
		t.Error("empty profile should have empty, non-nil slices")
	}
}

func TestBuildProfile_AllPagesFailed(t *testing.T) {
	t.Parallel()

	outcomes := []model.PageResult{
		model.NewPageFailure("https://x.test/a", "timeout"),
		model.NewPageFailure("https://x.test/b", "dns error"),
	}
	p := aggregate.BuildProfile("https://x.test", time.Now().UTC(), outcomes)
	if p.PagesFailed != 2 || p.PagesScanned != 0 {
		t.Errorf("PagesFailed/PagesScanned = %d/%d, want 2/0", p.PagesFailed, p.PagesScanned)
	}
	if p.TotalViolations() != 0 {
		t.Errorf("TotalViolations = %d, want 0", p.TotalViolations())
	}
}
