package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/model"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound is returned when a requested audit does not exist.
var ErrNotFound = errors.New("audit not found")

// Record is one persisted audit run.
type Record struct {
	ID              string              `json:"id"`
	Site            string              `json:"site"`
	CreatedAt       time.Time           `json:"created_at"`
	PagesScanned    int                 `json:"pages_scanned"`
	PagesFailed     int                 `json:"pages_failed"`
	TotalViolations int                 `json:"total_violations"`
	Grade           model.LeadGrade     `json:"grade"`
	Profile         *model.AuditProfile `json:"profile,omitempty"`
}

// Store persists sealed audit profiles and their grades in SQLite.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// Open opens (or creates) the audit database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		logger: logger.With(logging.Field{Key: "component", Value: "store"}),
	}, nil
}

func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// SaveProfile persists one sealed profile with its computed grade. The
// profile's run id is the record id.
func (s *Store) SaveProfile(ctx context.Context, p *model.AuditProfile, grade model.LeadGrade) error {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits
		  (id, site, created_at, pages_scanned, pages_failed, total_violations, grade, profile_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.RunID, p.Site, p.StartedAt.Unix(), p.PagesScanned, p.PagesFailed,
		p.TotalViolations(), string(grade), string(profileJSON))
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}

	s.logger.Info("saved audit",
		logging.Field{Key: "run_id", Value: p.RunID},
		logging.Field{Key: "site", Value: p.Site},
		logging.Field{Key: "grade", Value: string(grade)})
	return nil
}

// GetAudit loads one audit with its full profile.
func (s *Store) GetAudit(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, site, created_at, pages_scanned, pages_failed, total_violations, grade, profile_json
		FROM audits WHERE id = ?
	`, id)
	return scanRecord(row, true)
}

// ListAudits returns the most recent audits for site, newest first,
// without their full profiles. site == "" lists across all sites.
func (s *Store) ListAudits(ctx context.Context, site string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, site, created_at, pages_scanned, pages_failed, total_violations, grade
		FROM audits`
	args := []any{}
	if site != "" {
		query += ` WHERE site = ?`
		args = append(args, site)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Site, &createdAt, &r.PagesScanned, &r.PagesFailed,
			&r.TotalViolations, &r.Grade); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestPair returns the two most recent audits for site, older first, for
// run comparison. It fails when fewer than two runs exist.
func (s *Store) LatestPair(ctx context.Context, site string) (prev, curr *Record, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, site, created_at, pages_scanned, pages_failed, total_violations, grade, profile_json
		FROM audits WHERE site = ? ORDER BY created_at DESC, id LIMIT 2
	`, site)
	if err != nil {
		return nil, nil, fmt.Errorf("latest pair: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		r, err := scanRecord(rows, true)
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(recs) < 2 {
		return nil, nil, fmt.Errorf("need two audits for %s, have %d", site, len(recs))
	}
	// recs[0] is newest.
	return recs[1], recs[0], nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner, withProfile bool) (*Record, error) {
	var r Record
	var createdAt int64
	var profileJSON string

	dest := []any{&r.ID, &r.Site, &createdAt, &r.PagesScanned, &r.PagesFailed, &r.TotalViolations, &r.Grade}
	if withProfile {
		dest = append(dest, &profileJSON)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan audit: %w", err)
	}

	r.CreatedAt = time.Unix(createdAt, 0).UTC()
	if withProfile {
		var p model.AuditProfile
		if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
			return nil, fmt.Errorf("unmarshal stored profile: %w", err)
		}
		r.Profile = &p
	}
	return &r, nil
}
