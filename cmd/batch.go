package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/scoring"
	"github.com/ledgerline/finhealth/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many companies from a single CSV",
	Long: `Score companies in bulk. The input CSV has one metric observation per
row, grouped by company:

  company_id,industry,size,metric,value
  acme,Retail Trade,small,Current Ratio,2.0
  acme,Retail Trade,small,Net Profit Margin,8.5
  globex,Construction,medium,Current Ratio,1.1

Malformed rows are logged and skipped, and one bad company does not
abort the batch; both are counted in the completion summary.`,
	RunE: runBatchCmd,
}

func init() {
	f := batchCmd.Flags()
	f.String("input", "", "batch CSV file (required)")
	f.String("output", "", "summary CSV path (default: stdout)")
	f.Bool("save", false, "persist each score run to the configured store")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is one company's parsed rows.
type batchEntry struct {
	company model.Company
	metrics []model.FinancialMetric
}

// batchResult is one company's scoring outcome for the summary file.
type batchResult struct {
	company model.Company
	result  model.OverallScore
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	input, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	entries, skipped, err := readBatchCSV(input)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(catalog)

	var st store.Store
	if save {
		st, err = openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}
	}

	zap.L().Info("processing batch",
		zap.Int("companies", len(entries)),
		zap.Int("concurrency", cfg.Batch.Concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Batch.Concurrency)

	var mu sync.Mutex
	var results []batchResult
	var failed atomic.Int64

	for _, entry := range entries {
		g.Go(func() error {
			log := zap.L().With(zap.String("company", entry.company.ID))

			result := engine.Score(entry.company, entry.metrics)

			if st != nil {
				if _, err := st.CreateRun(gctx, entry.company, entry.metrics, result); err != nil {
					failed.Add(1)
					log.Error("save run failed", zap.Error(err))
					return nil // don't abort the batch on one company
				}
			}

			mu.Lock()
			results = append(results, batchResult{company: entry.company, result: result})
			mu.Unlock()

			log.Info("company scored", zap.Float64("score", result.Score))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].company.ID < results[j].company.ID
	})

	zap.L().Info("batch complete",
		zap.Int("scored", len(results)),
		zap.Int64("failed", failed.Load()),
		zap.Int("skipped_rows", skipped),
	)

	return writeBatchSummary(results, outputPath)
}

// readBatchCSV groups metric rows by company, preserving input order.
// Malformed rows (too few fields, bad size, non-numeric value) are
// logged and skipped; the second return is the skipped-row count.
func readBatchCSV(path string) ([]batchEntry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, eris.Wrapf(err, "open batch file %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, eris.Wrapf(err, "read header of %s", path)
	}
	col := columnIndex(header)
	for _, required := range []string{"company_id", "industry", "size", "metric", "value"} {
		if _, ok := col[required]; !ok {
			return nil, 0, eris.Errorf("%s: missing required column %q", path, required)
		}
	}
	minFields := requiredFields(col, "company_id", "industry", "size", "metric", "value")

	byCompany := make(map[string]*batchEntry)
	var order []string
	skipped := 0
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, eris.Wrapf(err, "read %s", path)
		}
		line++

		if len(record) < minFields {
			zap.L().Warn("skipping malformed batch row",
				zap.String("file", path), zap.Int("line", line),
				zap.Int("fields", len(record)), zap.Int("want", minFields))
			skipped++
			continue
		}

		companyID := strings.TrimSpace(record[col["company_id"]])
		entry, ok := byCompany[companyID]
		if !ok {
			size, err := model.ParseSizeTier(record[col["size"]])
			if err != nil {
				zap.L().Warn("skipping batch row with bad size",
					zap.String("file", path), zap.Int("line", line), zap.Error(err))
				skipped++
				continue
			}
			entry = &batchEntry{company: model.Company{
				ID:       companyID,
				Industry: strings.TrimSpace(record[col["industry"]]),
				Size:     size,
			}}
			byCompany[companyID] = entry
			order = append(order, companyID)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(record[col["value"]]), 64)
		if err != nil {
			zap.L().Warn("skipping batch row with non-numeric value",
				zap.String("file", path), zap.Int("line", line),
				zap.String("value", record[col["value"]]))
			skipped++
			continue
		}
		entry.metrics = append(entry.metrics, model.FinancialMetric{
			Name:  strings.TrimSpace(record[col["metric"]]),
			Value: value,
		})
	}

	if len(order) == 0 {
		return nil, skipped, eris.Errorf("%s: no usable metric rows", path)
	}
	entries := make([]batchEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *byCompany[id])
	}
	return entries, skipped, nil
}

func writeBatchSummary(results []batchResult, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "batch: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"company_id", "industry", "size", "score", "percentile", "interpretation"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "batch: write CSV header")
	}
	for _, r := range results {
		row := []string{
			r.company.ID,
			r.company.Industry,
			string(r.company.Size),
			fmt.Sprintf("%.2f", r.result.Score),
			fmt.Sprintf("%.1f", r.result.Percentile),
			r.result.Interpretation,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "batch: write CSV row")
		}
	}
	return nil
}
