package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/recommend"
	"github.com/ledgerline/finhealth/internal/scoring"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate prioritized improvement recommendations",
	Long: `Score the supplied metrics, then select improvement actions for the
weakest categories first. Each action carries a priority, difficulty,
timeframe and a projected effect on the metrics behind it.

Examples:
  finhealth recommend --input metrics.csv --industry "Retail Trade" --size small

  # Only liquidity and leverage actions, at most three
  finhealth recommend --input metrics.csv --industry Construction --size medium --focus Liquidity,Leverage --max 3`,
	RunE: runRecommendCmd,
}

func init() {
	f := recommendCmd.Flags()
	f.String("input", "", "metrics CSV file (required)")
	f.String("industry", "", "industry name")
	f.String("size", "small", "business size tier: small, medium or large")
	f.Int("max", 0, "maximum number of recommendations (0=use config default)")
	f.String("focus", "", "comma-separated categories to restrict to")
	_ = recommendCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommendCmd(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	industry, _ := cmd.Flags().GetString("industry")
	sizeRaw, _ := cmd.Flags().GetString("size")
	maxRecs, _ := cmd.Flags().GetInt("max")
	focusRaw, _ := cmd.Flags().GetString("focus")

	size, err := model.ParseSizeTier(sizeRaw)
	if err != nil {
		return err
	}

	var focus []model.Category
	for _, raw := range splitAndTrim(focusRaw) {
		cat, err := model.ParseCategory(raw)
		if err != nil {
			return err
		}
		focus = append(focus, cat)
	}

	if maxRecs <= 0 {
		maxRecs = cfg.Recommend.MaxRecommendations
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

	company := model.Company{Industry: industry, Size: size}
	scores := engine.Score(company, metrics)

	selector := recommend.NewSelector(catalog)
	result := selector.Generate(recommend.Request{
		Scores:             scores,
		MaxRecommendations: maxRecs,
		FocusCategories:    focus,
		Metrics:            metrics,
	})

	zap.L().Info("recommendations generated",
		zap.Float64("score", scores.Score),
		zap.Int("actions", len(result.Actions)),
	)

	printRecommendations(result)
	return nil
}
