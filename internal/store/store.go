// Package store persists score runs. The scoring engine itself never
// touches storage; the service layer saves a run when asked to and the
// runs surface reads them back.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/model"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = eris.New("store: run not found")

// RunFilter specifies criteria for listing score runs.
type RunFilter struct {
	CompanyID string `json:"company_id,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for score history.
type Store interface {
	CreateRun(ctx context.Context, company model.Company, metrics []model.FinancialMetric, result model.OverallScore) (*model.ScoreRun, error)
	GetRun(ctx context.Context, runID string) (*model.ScoreRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.ScoreRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
