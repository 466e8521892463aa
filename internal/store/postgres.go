package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/model"
)

// Querier is the subset of pgxpool.Pool the store uses; pgxmock
// satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Querier
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection
// for the hot store operations.
var preparedStatements = map[string]string{
	"insert_score_run": `INSERT INTO score_runs (id, company_id, industry, size, metrics, result, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	"get_score_run":    `SELECT id, company_id, industry, size, metrics, result, created_at FROM score_runs WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithQuerier wraps an existing pool-like connection; used
// by tests with pgxmock.
func NewPostgresWithQuerier(q Querier) *PostgresStore {
	return &PostgresStore{pool: q, closeFn: func() {}}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS score_runs (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	company_id TEXT NOT NULL,
	industry   TEXT NOT NULL,
	size       TEXT NOT NULL,
	metrics    JSONB NOT NULL,
	result     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_score_runs_company ON score_runs(company_id);
CREATE INDEX IF NOT EXISTS idx_score_runs_industry ON score_runs(industry);
CREATE INDEX IF NOT EXISTS idx_score_runs_created ON score_runs(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.closeFn()
	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, company model.Company, metrics []model.FinancialMetric, result model.OverallScore) (*model.ScoreRun, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal metrics")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO score_runs (id, company_id, industry, size, metrics, result, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, company.ID, company.Industry, string(company.Size), metricsJSON, resultJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	return &model.ScoreRun{
		ID:        id,
		Company:   company,
		Metrics:   metrics,
		Result:    result,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.ScoreRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, company_id, industry, size, metrics, result, created_at FROM score_runs WHERE id = $1`,
		runID,
	)
	run, err := scanPgRun(row.Scan)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return run, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.ScoreRun, error) {
	query := `SELECT id, company_id, industry, size, metrics, result, created_at FROM score_runs WHERE 1=1`
	var args []any
	argNum := 1

	if filter.CompanyID != "" {
		query += fmt.Sprintf(` AND company_id = $%d`, argNum)
		args = append(args, filter.CompanyID)
		argNum++
	}
	if filter.Industry != "" {
		query += fmt.Sprintf(` AND industry = $%d`, argNum)
		args = append(args, filter.Industry)
		argNum++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argNum)
	args = append(args, limit)
	argNum++
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argNum)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.ScoreRun
	for rows.Next() {
		run, err := scanPgRun(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate runs")
	}
	return runs, nil
}

// scanPgRun decodes one score_runs row; metrics and result arrive as
// JSONB bytes.
func scanPgRun(scan func(dest ...any) error) (*model.ScoreRun, error) {
	var (
		run         model.ScoreRun
		size        string
		metricsJSON []byte
		resultJSON  []byte
	)
	if err := scan(&run.ID, &run.Company.ID, &run.Company.Industry, &size, &metricsJSON, &resultJSON, &run.CreatedAt); err != nil {
		return nil, err
	}
	run.Company.Size = model.SizeTier(size)

	if err := json.Unmarshal(metricsJSON, &run.Metrics); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal metrics")
	}
	if err := json.Unmarshal(resultJSON, &run.Result); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal result")
	}
	return &run, nil
}
