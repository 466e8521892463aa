package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/model"
)

func init() {
	// Replace global logger with a no-op to avoid nil pointer panics in tests.
	zap.ReplaceGlobals(zap.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMetricsCSV(t *testing.T) {
	path := writeFile(t, "metrics.csv", `name,value,unit,date
Current Ratio,2.0,ratio,2026-06-30
Net Profit Margin,8.5,percent,
Quick Ratio,0.9,,
`)

	metrics, err := readMetricsCSV(path)
	require.NoError(t, err)
	require.Len(t, metrics, 3)

	assert.Equal(t, "Current Ratio", metrics[0].Name)
	assert.Equal(t, 2.0, metrics[0].Value)
	assert.Equal(t, "ratio", metrics[0].Unit)
	assert.Equal(t, 2026, metrics[0].Date.Year())

	assert.Equal(t, "Net Profit Margin", metrics[1].Name)
	assert.True(t, metrics[1].Date.IsZero())

	assert.Empty(t, metrics[2].Unit)
}

func TestReadMetricsCSV_MinimalColumns(t *testing.T) {
	path := writeFile(t, "metrics.csv", "name,value\nCurrent Ratio,1.5\n")

	metrics, err := readMetricsCSV(path)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, 1.5, metrics[0].Value)
}

func TestReadMetricsCSV_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := readMetricsCSV(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})

	t.Run("missing value column", func(t *testing.T) {
		path := writeFile(t, "metrics.csv", "name,amount\nCurrent Ratio,1.5\n")
		_, err := readMetricsCSV(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		path := writeFile(t, "metrics.csv", "name,value\nCurrent Ratio,lots\n")
		_, err := readMetricsCSV(path)
		require.Error(t, err)
	})

	t.Run("row with too few fields", func(t *testing.T) {
		path := writeFile(t, "metrics.csv", "name,value\nCurrent Ratio\n")
		_, err := readMetricsCSV(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("no rows", func(t *testing.T) {
		path := writeFile(t, "metrics.csv", "name,value\n")
		_, err := readMetricsCSV(path)
		require.Error(t, err)
	})
}

func TestReadBatchCSV(t *testing.T) {
	path := writeFile(t, "batch.csv", `company_id,industry,size,metric,value
acme,Retail Trade,small,Current Ratio,2.0
acme,Retail Trade,small,Net Profit Margin,8.5
globex,Construction,medium,Current Ratio,1.1
`)

	entries, skipped, err := readBatchCSV(path)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, "acme", entries[0].company.ID)
	assert.Equal(t, model.SizeSmall, entries[0].company.Size)
	require.Len(t, entries[0].metrics, 2)
	assert.Equal(t, "Net Profit Margin", entries[0].metrics[1].Name)

	assert.Equal(t, "globex", entries[1].company.ID)
	assert.Equal(t, model.SizeMedium, entries[1].company.Size)
	require.Len(t, entries[1].metrics, 1)
}

func TestReadBatchCSV_SkipsBadRows(t *testing.T) {
	path := writeFile(t, "batch.csv", `company_id,industry,size,metric,value
acme,Retail Trade,humongous,Current Ratio,2.0
globex,Construction,medium,Current Ratio,1.1
globex,Construction,medium,Quick Ratio,lots
initech,Retail Trade,small
wayne,Retail Trade,small,Current Ratio,1.8
`)

	entries, skipped, err := readBatchCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, "globex", entries[0].company.ID)
	require.Len(t, entries[0].metrics, 1)
	assert.Equal(t, "Current Ratio", entries[0].metrics[0].Name)

	assert.Equal(t, "wayne", entries[1].company.ID)
}

func TestReadBatchCSV_AllRowsBad(t *testing.T) {
	path := writeFile(t, "batch.csv", `company_id,industry,size,metric,value
acme,Retail Trade,humongous,Current Ratio,2.0
`)

	_, skipped, err := readBatchCSV(path)
	require.Error(t, err)
	assert.Equal(t, 1, skipped)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b "))
	assert.Equal(t, []string{"Liquidity"}, splitAndTrim("Liquidity,"))
	assert.Nil(t, splitAndTrim(""))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-06-30")
	require.NoError(t, err)
	assert.Equal(t, 6, int(d.Month()))

	d, err = parseDate("2026-06-30T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 30, d.Day())

	_, err = parseDate("30/06/2026")
	require.Error(t, err)
}
