package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
)

func testSelector(t *testing.T) *Selector {
	t.Helper()
	catalog := benchmark.Default()
	require.NoError(t, catalog.Validate())
	return NewSelector(catalog)
}

// breakdown builds an OverallScore from per-category (score, metric
// scores) pairs.
func breakdown(scores map[model.Category]model.CategoryScore) model.OverallScore {
	var sum float64
	for _, cs := range scores {
		sum += cs.Score
	}
	overall := 0.0
	if len(scores) > 0 {
		overall = sum / float64(len(scores))
	}
	return model.OverallScore{Score: overall, CategoryScores: scores}
}

func category(cat model.Category, score float64, metrics map[string]float64) model.CategoryScore {
	return model.CategoryScore{Category: cat, Score: score, MetricScores: metrics}
}

func TestGenerate_ZeroMaxIsEmpty(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLiquidity: category(model.CategoryLiquidity, 20, map[string]float64{"Current Ratio": 20}),
		}),
		MaxRecommendations: 0,
	})

	assert.Empty(t, result.Actions)
	assert.NotEmpty(t, result.PriorityExplanation)
}

func TestGenerate_NeverExceedsLimit(t *testing.T) {
	s := testSelector(t)

	scores := breakdown(map[model.Category]model.CategoryScore{
		model.CategoryProfitability: category(model.CategoryProfitability, 25, map[string]float64{"Net Profit Margin": 25}),
		model.CategoryLiquidity:     category(model.CategoryLiquidity, 30, map[string]float64{"Current Ratio": 30}),
		model.CategoryLeverage:      category(model.CategoryLeverage, 35, map[string]float64{"Debt Ratio": 35}),
		model.CategoryEfficiency:    category(model.CategoryEfficiency, 40, map[string]float64{"Asset Turnover": 40}),
	})

	for _, limit := range []int{1, 3, 5, 100} {
		result := s.Generate(Request{Scores: scores, MaxRecommendations: limit})
		assert.LessOrEqual(t, len(result.Actions), limit, "limit %d", limit)
		assert.NotEmpty(t, result.Actions)
	}
}

func TestGenerate_TwoTemplatesPerCategoryCap(t *testing.T) {
	s := testSelector(t)

	// One very weak category with a generous limit: only the two
	// critical templates for that category may appear.
	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLiquidity: category(model.CategoryLiquidity, 10, map[string]float64{"Current Ratio": 10}),
		}),
		MaxRecommendations: 10,
	})

	require.Len(t, result.Actions, 2)
	for _, a := range result.Actions {
		assert.Equal(t, model.CategoryLiquidity, a.Category)
		assert.Equal(t, 1, a.Priority)
	}
}

func TestGenerate_SortedByPriority(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryProfitability: category(model.CategoryProfitability, 90, map[string]float64{"Net Profit Margin": 90}),
			model.CategoryLiquidity:     category(model.CategoryLiquidity, 20, map[string]float64{"Current Ratio": 20}),
			model.CategoryLeverage:      category(model.CategoryLeverage, 55, map[string]float64{"Debt Ratio": 55}),
		}),
		MaxRecommendations: 6,
	})

	require.NotEmpty(t, result.Actions)
	for i := 1; i < len(result.Actions); i++ {
		assert.LessOrEqual(t, result.Actions[i-1].Priority, result.Actions[i].Priority)
	}

	// The critical liquidity actions must outrank everything else.
	assert.Equal(t, model.CategoryLiquidity, result.Actions[0].Category)
}

func TestGenerate_FocusCategories(t *testing.T) {
	s := testSelector(t)

	scores := breakdown(map[model.Category]model.CategoryScore{
		model.CategoryProfitability: category(model.CategoryProfitability, 20, map[string]float64{"Net Profit Margin": 20}),
		model.CategoryLiquidity:     category(model.CategoryLiquidity, 40, map[string]float64{"Current Ratio": 40}),
	})

	result := s.Generate(Request{
		Scores:             scores,
		MaxRecommendations: 5,
		FocusCategories:    []model.Category{model.CategoryLiquidity},
	})

	require.NotEmpty(t, result.Actions)
	for _, a := range result.Actions {
		assert.Equal(t, model.CategoryLiquidity, a.Category)
	}
}

func TestGenerate_EstimatedOverallIncrease(t *testing.T) {
	s := testSelector(t)

	// Liquidity at 40 is severe; the first severe template closes 25%
	// of the 60-point gap, weighted by the 0.25 category weight.
	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLiquidity: category(model.CategoryLiquidity, 40, map[string]float64{"Current Ratio": 40}),
		}),
		MaxRecommendations: 1,
	})

	require.Len(t, result.Actions, 1)
	action := result.Actions[0]
	assert.InDelta(t, 60*0.25*0.25, action.EstimatedOverallScoreIncrease, 0.01)

	require.Len(t, action.Impacts, 1)
	imp := action.Impacts[0]
	assert.Equal(t, "Current Ratio", imp.MetricName)
	assert.InDelta(t, 15, imp.ScoreIncrease, 0.01)
}

func TestGenerate_ImpactsUseRawValuesWhenAvailable(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLiquidity: category(model.CategoryLiquidity, 40, map[string]float64{"Current Ratio": 40}),
		}),
		MaxRecommendations: 1,
		Metrics:            []model.FinancialMetric{{Name: "Current Ratio", Value: 1.1}},
	})

	require.Len(t, result.Actions, 1)
	require.Len(t, result.Actions[0].Impacts, 1)
	imp := result.Actions[0].Impacts[0]

	assert.InDelta(t, 1.1, imp.CurrentValue, 0.001)
	assert.Greater(t, imp.ProjectedValue, imp.CurrentValue)
	assert.Greater(t, imp.ImprovementPercentage, 0.0)
}

func TestGenerate_LowerIsBetterProjectionFalls(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLeverage: category(model.CategoryLeverage, 35, map[string]float64{"Debt-to-Equity Ratio": 35}),
		}),
		MaxRecommendations: 1,
		Metrics:            []model.FinancialMetric{{Name: "Debt-to-Equity Ratio", Value: 2.4}},
	})

	require.Len(t, result.Actions, 1)
	require.Len(t, result.Actions[0].Impacts, 1)
	imp := result.Actions[0].Impacts[0]

	// Improving leverage means the ratio itself comes down.
	assert.Less(t, imp.ProjectedValue, imp.CurrentValue)
	assert.Less(t, imp.ImprovementPercentage, 0.0)
}

func TestGenerate_PerfectScoresHaveNoImpacts(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryLiquidity: category(model.CategoryLiquidity, 100, map[string]float64{"Current Ratio": 100}),
		}),
		MaxRecommendations: 5,
	})

	// The good-severity maintenance action still comes back, but with
	// nothing to improve it projects no gain.
	require.Len(t, result.Actions, 1)
	assert.Empty(t, result.Actions[0].Impacts)
	assert.Equal(t, 0.0, result.Actions[0].EstimatedOverallScoreIncrease)
}

func TestGenerate_NoCategoryScores(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores:             model.OverallScore{Score: 50},
		MaxRecommendations: 5,
	})

	assert.Empty(t, result.Actions)
	assert.Contains(t, result.PriorityExplanation, "No category scores")
}

func TestGenerate_ExplanationNamesWorstFirst(t *testing.T) {
	s := testSelector(t)

	result := s.Generate(Request{
		Scores: breakdown(map[model.Category]model.CategoryScore{
			model.CategoryProfitability: category(model.CategoryProfitability, 80, map[string]float64{"Net Profit Margin": 80}),
			model.CategoryEfficiency:    category(model.CategoryEfficiency, 25, map[string]float64{"Asset Turnover": 25}),
		}),
		MaxRecommendations: 2,
	})

	assert.Contains(t, result.PriorityExplanation, "Efficiency (critical, 25.0)")
	assert.Contains(t, result.PriorityExplanation, "Profitability (minor, 80.0)")
}
