package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/ledgerline/finhealth/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS score_runs (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL,
	industry   TEXT NOT NULL,
	size       TEXT NOT NULL,
	metrics    TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_score_runs_company ON score_runs(company_id);
CREATE INDEX IF NOT EXISTS idx_score_runs_industry ON score_runs(industry);
CREATE INDEX IF NOT EXISTS idx_score_runs_created ON score_runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, company model.Company, metrics []model.FinancialMetric, result model.OverallScore) (*model.ScoreRun, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal metrics")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal result")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO score_runs (id, company_id, industry, size, metrics, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, company.ID, company.Industry, string(company.Size), string(metricsJSON), string(resultJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &model.ScoreRun{
		ID:        id,
		Company:   company,
		Metrics:   metrics,
		Result:    result,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.ScoreRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, industry, size, metrics, result, created_at FROM score_runs WHERE id = ?`,
		runID,
	)
	run, err := scanRun(row.Scan)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	return run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.ScoreRun, error) {
	query := `SELECT id, company_id, industry, size, metrics, result, created_at FROM score_runs WHERE 1=1`
	var args []any

	if filter.CompanyID != "" {
		query += ` AND company_id = ?`
		args = append(args, filter.CompanyID)
	}
	if filter.Industry != "" {
		query += ` AND industry = ?`
		args = append(args, filter.Industry)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.ScoreRun
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate runs")
	}
	return runs, nil
}

// scanRun decodes one score_runs row via the given scan function, so
// both QueryRow and Rows iteration share the decoding.
func scanRun(scan func(dest ...any) error) (*model.ScoreRun, error) {
	var (
		run         model.ScoreRun
		size        string
		metricsJSON string
		resultJSON  string
	)
	if err := scan(&run.ID, &run.Company.ID, &run.Company.Industry, &size, &metricsJSON, &resultJSON, &run.CreatedAt); err != nil {
		return nil, err
	}
	run.Company.Size = model.SizeTier(size)

	if err := json.Unmarshal([]byte(metricsJSON), &run.Metrics); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal metrics")
	}
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal result")
	}
	return &run, nil
}
