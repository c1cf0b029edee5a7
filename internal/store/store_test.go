package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/seren4de/a11ylead/internal/interfaces"
	"github.com/seren4de/a11ylead/internal/model"
	"github.com/seren4de/a11ylead/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:", interfaces.NewTestLogger(false))
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func profile(runID, site string, at time.Time, critical int) *model.AuditProfile {
	return &model.AuditProfile{
		RunID:        runID,
		Site:         site,
		StartedAt:    at,
		PagesScanned: 2,
		PagesFailed:  1,
		Tally:        model.SeverityTally{Critical: critical},
		Violations: []model.Violation{
			{RuleID: "image-alt", Severity: model.SeverityCritical, PageURL: site + "/a", Occurrences: critical},
		},
	}
}

func TestSaveAndGetAudit(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	p := profile("run-1", "https://x.test", time.Now().UTC().Truncate(time.Second), 3)
	if err := s.SaveProfile(ctx, p, model.GradeC); err != nil {
		t.Fatalf("SaveProfile returned error: %v", err)
	}

	got, err := s.GetAudit(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetAudit returned error: %v", err)
	}
	if got.Site != "https://x.test" || got.Grade != model.GradeC {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.TotalViolations != 3 {
		t.Errorf("TotalViolations = %d, want 3", got.TotalViolations)
	}
	if got.Profile == nil || len(got.Profile.Violations) != 1 {
		t.Errorf("stored profile did not round-trip: %+v", got.Profile)
	}
}

func TestGetAudit_NotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if _, err := s.GetAudit(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListAudits_NewestFirstAndFiltered(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		p := profile(fmt.Sprintf("x-%d", i), "https://x.test", base.Add(time.Duration(i)*time.Hour), i)
		if err := s.SaveProfile(ctx, p, model.GradeC); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SaveProfile(ctx, profile("y-0", "https://y.test", base, 1), model.GradeC); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListAudits(ctx, "https://x.test", 10)
	if err != nil {
		t.Fatalf("ListAudits returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].ID != "x-2" || got[2].ID != "x-0" {
		t.Errorf("records not newest-first: %v, %v, %v", got[0].ID, got[1].ID, got[2].ID)
	}

	all, err := s.ListAudits(ctx, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("unfiltered list has %d records, want 4", len(all))
	}
}

func TestLatestPair(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	if _, _, err := s.LatestPair(ctx, "https://x.test"); err == nil {
		t.Error("LatestPair should fail with zero runs")
	}

	for i := 0; i < 3; i++ {
		p := profile(fmt.Sprintf("run-%d", i), "https://x.test", base.Add(time.Duration(i)*time.Hour), i)
		if err := s.SaveProfile(ctx, p, model.GradeC); err != nil {
			t.Fatal(err)
		}
	}

	prev, curr, err := s.LatestPair(ctx, "https://x.test")
	if err != nil {
		t.Fatalf("LatestPair returned error: %v", err)
	}
	if prev.ID != "run-1" || curr.ID != "run-2" {
		t.Errorf("LatestPair = (%s, %s), want (run-1, run-2)", prev.ID, curr.ID)
	}
	if prev.Profile == nil || curr.Profile == nil {
		t.Error("LatestPair records must include full profiles")
	}
}
