package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/recommend"
	"github.com/ledgerline/finhealth/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a company's financial metrics against industry benchmarks",
	Long: `Score financial ratios on a 0-100 scale against industry and
size-tier benchmarks, roll them up into category and overall scores,
and attach plain-language interpretations.

The metrics file is a CSV with columns name,value[,unit[,date]]:

  name,value,unit
  Current Ratio,2.0,ratio
  Net Profit Margin,8.5,percent

Examples:
  # Score a retailer from a metrics file
  finhealth score --input metrics.csv --industry "Retail Trade" --size small

  # Export the breakdown as CSV
  finhealth score --input metrics.csv --industry Construction --size medium --format csv --output scores.csv

  # Score, persist the run, and print recommendations
  finhealth score --input metrics.csv --industry "Retail Trade" --size small --save --recommend`,
	RunE: runScoreCmd,
}

func init() {
	f := scoreCmd.Flags()
	f.String("input", "", "metrics CSV file (required)")
	f.String("company", "", "company identifier (recorded with --save)")
	f.String("industry", "", "industry name (default benchmarks used when omitted)")
	f.String("size", "small", "business size tier: small, medium or large")
	f.String("format", "table", "output format: table, csv or xlsx")
	f.String("output", "", "output file path (default: stdout; required for xlsx)")
	f.Bool("save", false, "persist the score run to the configured store")
	f.Bool("recommend", false, "also print improvement recommendations")
	f.String("industries", "", "comma-separated industries to compare the overall score against")
	_ = scoreCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scoreCmd)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	input, _ := cmd.Flags().GetString("input")
	companyID, _ := cmd.Flags().GetString("company")
	industry, _ := cmd.Flags().GetString("industry")
	sizeRaw, _ := cmd.Flags().GetString("size")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")
	withRecs, _ := cmd.Flags().GetBool("recommend")
	industriesRaw, _ := cmd.Flags().GetString("industries")

	size, err := model.ParseSizeTier(sizeRaw)
	if err != nil {
		return err
	}
	if format != "table" && format != "csv" && format != "xlsx" {
		return eris.Errorf("score: --format must be table, csv or xlsx (got %q)", format)
	}
	if format == "xlsx" && outputPath == "" {
		return eris.New("score: --format xlsx requires --output")
	}

	metrics, err := readMetricsCSV(input)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(catalog)

	company := model.Company{ID: companyID, Industry: industry, Size: size}
	result := engine.Score(company, metrics)

	zap.L().Info("scoring complete",
		zap.String("industry", industry),
		zap.String("size", string(size)),
		zap.Int("metrics", len(metrics)),
		zap.Float64("score", result.Score),
	)

	if err := outputScoreResult(result, format, outputPath); err != nil {
		return err
	}

	if save {
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		run, err := st.CreateRun(ctx, company, metrics, result)
		if err != nil {
			return eris.Wrap(err, "score: save run")
		}
		fmt.Printf("Saved run %s\n", run.ID)
	}

	if industries := splitAndTrim(industriesRaw); len(industries) > 0 {
		fmt.Printf("\n--- Cross-industry comparison ---\n")
		for _, ind := range industries {
			fmt.Printf("%-30s %6.2f\n", ind, engine.CrossIndustry(result.Score, "", ind))
		}
	}

	if withRecs {
		selector := recommend.NewSelector(catalog)
		recs := selector.Generate(recommend.Request{
			Scores:             result,
			MaxRecommendations: cfg.Recommend.MaxRecommendations,
			Metrics:            metrics,
		})
		printRecommendations(recs)
	}

	return nil
}

func outputScoreResult(result model.OverallScore, format, outputPath string) error {
	if format == "xlsx" {
		return writeScoreXLSX(result, outputPath)
	}

	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "csv":
		return writeScoreCSV(w, result)
	default:
		return writeScoreTable(w, result)
	}
}

func writeScoreTable(w *os.File, result model.OverallScore) error {
	fmt.Fprintf(w, "Overall score: %.1f / 100 (%.0fth percentile)\n", result.Score, result.Percentile)
	fmt.Fprintf(w, "%s\n\n", result.Interpretation)

	fmt.Fprintf(w, "%-15s %7s  %s\n", "Category", "Score", "Interpretation")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, cat := range model.Categories() {
		cs, ok := result.CategoryScores[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-15s %7.1f  %s\n", cat, cs.Score, cs.Interpretation)
		for _, name := range sortedMetricNames(cs.MetricScores) {
			fmt.Fprintf(w, "  %-28s %6.1f\n", name, cs.MetricScores[name])
		}
	}
	return nil
}

func writeScoreCSV(w *os.File, result model.OverallScore) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"category", "metric", "score", "interpretation"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}
	overall := []string{"Overall", "", fmt.Sprintf("%.2f", result.Score), result.Interpretation}
	if err := cw.Write(overall); err != nil {
		return eris.Wrap(err, "score: write CSV row")
	}

	for _, cat := range model.Categories() {
		cs, ok := result.CategoryScores[cat]
		if !ok {
			continue
		}
		row := []string{string(cat), "", fmt.Sprintf("%.2f", cs.Score), cs.Interpretation}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
		for _, name := range sortedMetricNames(cs.MetricScores) {
			row := []string{string(cat), name, fmt.Sprintf("%.2f", cs.MetricScores[name]), ""}
			if err := cw.Write(row); err != nil {
				return eris.Wrap(err, "score: write CSV row")
			}
		}
	}
	return nil
}

func writeScoreXLSX(result model.OverallScore, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Scores")
	if err != nil {
		return eris.Wrap(err, "score: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Category", "Metric", "Score", "Interpretation"} {
		header.AddCell().SetString(h)
	}

	row := sheet.AddRow()
	row.AddCell().SetString("Overall")
	row.AddCell().SetString("")
	row.AddCell().SetFloat(result.Score)
	row.AddCell().SetString(result.Interpretation)

	for _, cat := range model.Categories() {
		cs, ok := result.CategoryScores[cat]
		if !ok {
			continue
		}
		row := sheet.AddRow()
		row.AddCell().SetString(string(cat))
		row.AddCell().SetString("")
		row.AddCell().SetFloat(cs.Score)
		row.AddCell().SetString(cs.Interpretation)
		for _, name := range sortedMetricNames(cs.MetricScores) {
			row := sheet.AddRow()
			row.AddCell().SetString(string(cat))
			row.AddCell().SetString(name)
			row.AddCell().SetFloat(cs.MetricScores[name])
			row.AddCell().SetString("")
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "score: save %s", path)
	}
	return nil
}

func sortedMetricNames(scores map[string]float64) []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printRecommendations(result recommend.Result) {
	if len(result.Actions) == 0 {
		fmt.Println("\nNo recommendations.")
		return
	}

	fmt.Printf("\n--- Recommendations ---\n")
	fmt.Println(result.PriorityExplanation)
	for i, a := range result.Actions {
		fmt.Printf("\n%d. [%s] %s (priority %d, %s, %s)\n",
			i+1, a.Category, a.Title, a.Priority, a.Difficulty, a.Timeframe)
		fmt.Printf("   %s\n", a.Description)
		fmt.Printf("   Estimated overall score increase: +%.2f\n", a.EstimatedOverallScoreIncrease)
		for _, imp := range a.Impacts {
			fmt.Printf("   %-28s %.2f -> %.2f (%+.1f%%)\n",
				imp.MetricName, imp.CurrentValue, imp.ProjectedValue, imp.ImprovementPercentage)
		}
	}
}
