package scoring

import (
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
)

// Engine scores submitted metrics against the injected catalog. It
// holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *benchmark.Catalog
}

// NewEngine creates an Engine over a validated catalog.
func NewEngine(catalog *benchmark.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog exposes the engine's catalog for lookup surfaces (benchmark
// listings, cross-industry tables).
func (e *Engine) Catalog() *benchmark.Catalog {
	return e.catalog
}

// Score computes the full health breakdown for a company's metrics.
// Unknown metric names are skipped; a request with no scorable metrics
// yields a neutral overall score with no category breakdown.
func (e *Engine) Score(company model.Company, metrics []model.FinancialMetric) model.OverallScore {
	byCategory := make(map[model.Category][]model.FinancialMetric)
	for _, m := range metrics {
		def, ok := e.catalog.Ratio(m.Name)
		if !ok {
			zap.L().Debug("scoring: unknown metric skipped",
				zap.String("metric", m.Name),
				zap.String("company_id", company.ID),
			)
			continue
		}
		byCategory[def.Category] = append(byCategory[def.Category], m)
	}

	categoryScores := make(map[model.Category]model.CategoryScore, len(byCategory))
	var weightedSum, weightSum float64
	for _, cat := range model.Categories() {
		catMetrics, ok := byCategory[cat]
		if !ok {
			continue
		}
		cs := e.CategoryScore(cat, catMetrics, company.Industry, company.Size)
		categoryScores[cat] = cs

		w := e.catalog.CategoryWeights[cat]
		weightedSum += cs.Score * w
		weightSum += w
	}

	overall := NeutralScore
	if weightSum > 0 {
		overall = round2(weightedSum / weightSum)
	}

	return model.OverallScore{
		Score:          overall,
		Percentile:     e.percentile(overall, company.Industry),
		Interpretation: e.interpretOverall(overall),
		CategoryScores: categoryScores,
	}
}

// CategoryScore aggregates one category's metrics into a weighted
// average. Metrics without a benchmark entry score neutral; a category
// with no scorable metrics returns exactly the neutral score.
func (e *Engine) CategoryScore(cat model.Category, metrics []model.FinancialMetric, industry string, size model.SizeTier) model.CategoryScore {
	metricScores := make(map[string]float64, len(metrics))
	var weightedSum, weightSum float64

	for _, m := range metrics {
		def, ok := e.catalog.Ratio(m.Name)
		if !ok || def.Category != cat {
			continue
		}

		score := NeutralScore
		bench, haveBench := e.catalog.BenchmarkFor(def, industry, size)
		warning, haveWarning := e.catalog.WarningFor(def, industry)
		if haveBench && haveWarning {
			score = NormalizeRatio(m.Value, bench, warning, def.HigherIsBetter)
		}

		score = round2(score)
		metricScores[def.Name] = score

		w := e.catalog.MetricWeight(def.Name)
		weightedSum += score * w
		weightSum += w
	}

	score := NeutralScore
	if weightSum > 0 {
		score = round2(weightedSum / weightSum)
	}

	interpretation, suggestions := e.interpretCategory(cat, score)
	return model.CategoryScore{
		Category:       cat,
		Score:          score,
		MetricScores:   metricScores,
		Interpretation: interpretation,
		Suggestions:    suggestions,
	}
}

// CrossIndustry rescales a score for one metric across an industry
// using the catalog multiplier tables (unknown keys default to 1.0).
func (e *Engine) CrossIndustry(score float64, metric, industry string) float64 {
	return round2(CrossIndustryScore(score, e.catalog.Difficulty(industry), e.catalog.Volatility(metric)))
}

// percentile is a linear transform around the catalog's industry
// median, not a population statistic. Kept as documented placeholder
// behavior until a reference population exists.
func (e *Engine) percentile(score float64, industry string) float64 {
	return round2(clamp((score-e.catalog.Median(industry))*2 + 50))
}

func (e *Engine) interpretOverall(score float64) string {
	if band, ok := matchBand(e.catalog.OverallBands, score); ok {
		return band.Text
	}
	return ""
}

func (e *Engine) interpretCategory(cat model.Category, score float64) (string, []string) {
	if band, ok := matchBand(e.catalog.CategoryBands[cat], score); ok {
		return band.Text, band.Suggestions
	}
	return "", nil
}

// matchBand returns the first [Low,High) band containing the score;
// the final band is inclusive of its upper bound so 100 matches.
func matchBand(bands []benchmark.ScoreBand, score float64) (benchmark.ScoreBand, bool) {
	for i, b := range bands {
		if score >= b.Low && (score < b.High || (i == len(bands)-1 && score <= b.High)) {
			return b, true
		}
	}
	return benchmark.ScoreBand{}, false
}
