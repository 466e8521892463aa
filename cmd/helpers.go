package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/store"
)

// loadCatalog builds the ratio catalog, overlaying a YAML file when one
// is configured.
func loadCatalog() (*benchmark.Catalog, error) {
	if cfg.Scoring.BenchmarkFile != "" {
		return benchmark.Load(cfg.Scoring.BenchmarkFile)
	}
	catalog := benchmark.Default()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// openStore opens the configured persistence backend.
func openStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	case "sqlite":
		return store.NewSQLite(cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// readMetricsCSV parses a metrics file with header
// name,value[,unit[,date]]. Date is RFC 3339 or YYYY-MM-DD.
func readMetricsCSV(path string) ([]model.FinancialMetric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open metrics file %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrapf(err, "read header of %s", path)
	}
	col := columnIndex(header)
	if _, ok := col["name"]; !ok {
		return nil, eris.Errorf("%s: missing required column \"name\"", path)
	}
	if _, ok := col["value"]; !ok {
		return nil, eris.Errorf("%s: missing required column \"value\"", path)
	}
	minFields := requiredFields(col, "name", "value")

	var metrics []model.FinancialMetric
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "read %s", path)
		}
		line++

		if len(record) < minFields {
			return nil, eris.Errorf("%s line %d: %d fields, want at least %d", path, line, len(record), minFields)
		}
		m := model.FinancialMetric{Name: strings.TrimSpace(record[col["name"]])}
		m.Value, err = strconv.ParseFloat(strings.TrimSpace(record[col["value"]]), 64)
		if err != nil {
			return nil, eris.Errorf("%s line %d: value %q is not a number", path, line, record[col["value"]])
		}
		if i, ok := col["unit"]; ok && i < len(record) {
			m.Unit = strings.TrimSpace(record[i])
		}
		if i, ok := col["date"]; ok && i < len(record) && strings.TrimSpace(record[i]) != "" {
			m.Date, err = parseDate(strings.TrimSpace(record[i]))
			if err != nil {
				return nil, eris.Wrapf(err, "%s line %d", path, line)
			}
		}
		metrics = append(metrics, m)
	}

	if len(metrics) == 0 {
		return nil, eris.Errorf("%s: no metric rows", path)
	}
	return metrics, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

// requiredFields is the minimum record length that makes every named
// column addressable.
func requiredFields(col map[string]int, names ...string) int {
	min := 0
	for _, name := range names {
		if col[name]+1 > min {
			min = col[name] + 1
		}
	}
	return min
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, eris.Errorf("date %q is not RFC 3339 or YYYY-MM-DD", s)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
