package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	catalog := benchmark.Default()
	require.NoError(t, catalog.Validate())
	return NewEngine(catalog)
}

func retailSmall(id string) model.Company {
	return model.Company{ID: id, Industry: benchmark.IndustryRetail, Size: model.SizeSmall}
}

func TestEngine_Score_SingleMetric(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), []model.FinancialMetric{
		{Name: "Current Ratio", Value: 2.0},
	})

	// Retail small benchmark 1.8, warning 1.2.
	assert.InDelta(t, 77.78, result.Score, 0.01)

	require.Contains(t, result.CategoryScores, model.CategoryLiquidity)
	liq := result.CategoryScores[model.CategoryLiquidity]
	assert.InDelta(t, 77.78, liq.Score, 0.01)
	assert.InDelta(t, 77.78, liq.MetricScores["Current Ratio"], 0.01)
	assert.NotEmpty(t, liq.Interpretation)

	// Only liquidity was submitted, so the other categories are absent
	// rather than padded with neutral scores.
	assert.Len(t, result.CategoryScores, 1)
	assert.NotEmpty(t, result.Interpretation)
}

func TestEngine_Score_Percentile(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), []model.FinancialMetric{
		{Name: "Current Ratio", Value: 2.0},
	})

	// Linear transform around the retail median of 61.
	assert.InDelta(t, (77.78-61)*2+50, result.Percentile, 0.02)
}

func TestEngine_Score_WeightsCategories(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), []model.FinancialMetric{
		{Name: "Current Ratio", Value: 1.8},     // liquidity, weight 0.25, score 75
		{Name: "Net Profit Margin", Value: 4.0}, // profitability, weight 0.35, score 75
	})

	liq := result.CategoryScores[model.CategoryLiquidity]
	prof := result.CategoryScores[model.CategoryProfitability]
	assert.InDelta(t, 75, liq.Score, 0.01)
	assert.InDelta(t, 75, prof.Score, 0.01)

	// Both categories at 75, so the weight split cannot move the total.
	assert.InDelta(t, 75, result.Score, 0.01)
}

func TestEngine_Score_UnknownMetricsSkipped(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), []model.FinancialMetric{
		{Name: "Bogus Ratio", Value: 42},
	})

	assert.Equal(t, NeutralScore, result.Score)
	assert.Empty(t, result.CategoryScores)
}

func TestEngine_Score_NoMetrics(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), nil)

	assert.Equal(t, NeutralScore, result.Score)
	assert.Empty(t, result.CategoryScores)
	assert.NotEmpty(t, result.Interpretation)
}

func TestEngine_Score_UnknownIndustryFallsBack(t *testing.T) {
	e := testEngine(t)

	company := model.Company{ID: "x", Industry: "Quantum Basket Weaving", Size: model.SizeSmall}
	result := e.Score(company, []model.FinancialMetric{
		{Name: "Current Ratio", Value: 1.5},
	})

	// Default benchmark 1.5 means the value sits exactly on it.
	liq := result.CategoryScores[model.CategoryLiquidity]
	assert.InDelta(t, 75, liq.MetricScores["Current Ratio"], 0.01)
}

func TestEngine_Score_MetricNameCaseInsensitive(t *testing.T) {
	e := testEngine(t)

	result := e.Score(retailSmall("acme"), []model.FinancialMetric{
		{Name: "current ratio", Value: 2.0},
	})

	require.Contains(t, result.CategoryScores, model.CategoryLiquidity)
	assert.InDelta(t, 77.78, result.CategoryScores[model.CategoryLiquidity].Score, 0.01)
}

func TestEngine_CategoryScore_EmptyIsNeutral(t *testing.T) {
	e := testEngine(t)

	// A metric from another category contributes nothing.
	cs := e.CategoryScore(model.CategoryLiquidity, []model.FinancialMetric{
		{Name: "Net Profit Margin", Value: 8},
	}, benchmark.IndustryRetail, model.SizeSmall)

	assert.Equal(t, NeutralScore, cs.Score)
	assert.Empty(t, cs.MetricScores)
	assert.NotEmpty(t, cs.Interpretation)
}

func TestEngine_CategoryScore_LowerIsBetter(t *testing.T) {
	e := testEngine(t)

	// Retail Debt-to-Equity benchmark 0.9 (small), warning 1.8.
	cs := e.CategoryScore(model.CategoryLeverage, []model.FinancialMetric{
		{Name: "Debt-to-Equity Ratio", Value: 0.9},
	}, benchmark.IndustryRetail, model.SizeSmall)

	assert.InDelta(t, 75, cs.MetricScores["Debt-to-Equity Ratio"], 0.01)
}

func TestEngine_CrossIndustry(t *testing.T) {
	e := testEngine(t)

	// Hospitality difficulty 1.15, Net Profit Margin volatility 1.2.
	got := e.CrossIndustry(60, "Net Profit Margin", benchmark.IndustryHospitality)
	assert.InDelta(t, 57.5, got, 0.01)

	// Unknown keys default to 1.0 multipliers.
	assert.InDelta(t, 60, e.CrossIndustry(60, "Bogus", "Nowhere"), 0.01)
}

func TestEngine_InterpretationBands(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		score float64
		want  string
	}{
		{10, "Critical"},
		{40, "Weak"},
		{60, "Adequate"},
		{77, "Good"},
		{100, "Excellent"},
	}
	for _, tt := range tests {
		got := e.interpretOverall(tt.score)
		assert.Contains(t, got, tt.want, "score %v", tt.score)
	}
}
