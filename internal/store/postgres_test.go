package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/model"
)

func newPgMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresWithQuerier(mock)
}

func TestPostgres_Migrate(t *testing.T) {
	mock, st := newPgMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS score_runs").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, st.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateRun(t *testing.T) {
	mock, st := newPgMock(t)

	company := model.Company{ID: "acme", Industry: "Retail Trade", Size: model.SizeSmall}
	metrics := []model.FinancialMetric{{Name: "Current Ratio", Value: 2.0}}
	result := model.OverallScore{Score: 77.78}

	mock.ExpectExec("INSERT INTO score_runs").
		WithArgs(pgxmock.AnyArg(), "acme", "Retail Trade", "small",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := st.CreateRun(context.Background(), company, metrics, result)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, company, run.Company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateRun_ExecFails(t *testing.T) {
	mock, st := newPgMock(t)

	mock.ExpectExec("INSERT INTO score_runs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(eris.New("connection reset"))

	_, err := st.CreateRun(context.Background(),
		model.Company{ID: "acme", Size: model.SizeSmall}, nil, model.OverallScore{})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func runRow(t *testing.T, run model.ScoreRun) *pgxmock.Rows {
	t.Helper()
	metricsJSON, err := json.Marshal(run.Metrics)
	require.NoError(t, err)
	resultJSON, err := json.Marshal(run.Result)
	require.NoError(t, err)
	return pgxmock.NewRows([]string{"id", "company_id", "industry", "size", "metrics", "result", "created_at"}).
		AddRow(run.ID, run.Company.ID, run.Company.Industry, string(run.Company.Size), metricsJSON, resultJSON, run.CreatedAt)
}

func TestPostgres_GetRun(t *testing.T) {
	mock, st := newPgMock(t)

	want := model.ScoreRun{
		ID:        "run-1",
		Company:   model.Company{ID: "acme", Industry: "Retail Trade", Size: model.SizeSmall},
		Metrics:   []model.FinancialMetric{{Name: "Current Ratio", Value: 2.0}},
		Result:    model.OverallScore{Score: 77.78},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	mock.ExpectQuery("SELECT (.+) FROM score_runs WHERE id").
		WithArgs("run-1").
		WillReturnRows(runRow(t, want))

	got, err := st.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Company, got.Company)
	assert.InDelta(t, want.Result.Score, got.Result.Score, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetRun_NotFound(t *testing.T) {
	mock, st := newPgMock(t)

	mock.ExpectQuery("SELECT (.+) FROM score_runs WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_id", "industry", "size", "metrics", "result", "created_at"}))

	_, err := st.GetRun(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListRuns_Filters(t *testing.T) {
	mock, st := newPgMock(t)

	run := model.ScoreRun{
		ID:        "run-1",
		Company:   model.Company{ID: "acme", Industry: "Retail Trade", Size: model.SizeSmall},
		Result:    model.OverallScore{Score: 60},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery("SELECT (.+) FROM score_runs WHERE 1=1 AND company_id = \\$1 AND industry = \\$2").
		WithArgs("acme", "Retail Trade", 10).
		WillReturnRows(runRow(t, run))

	runs, err := st.ListRuns(context.Background(), RunFilter{
		CompanyID: "acme",
		Industry:  "Retail Trade",
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListRuns_DefaultLimit(t *testing.T) {
	mock, st := newPgMock(t)

	mock.ExpectQuery("SELECT (.+) FROM score_runs WHERE 1=1 ORDER BY created_at DESC LIMIT \\$1").
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_id", "industry", "size", "metrics", "result", "created_at"}))

	runs, err := st.ListRuns(context.Background(), RunFilter{})
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
