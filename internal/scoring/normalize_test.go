package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRatio_HigherIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		warning   float64
		want      float64
	}{
		{"exactly at benchmark", 1.8, 1.8, 1.2, 75},
		{"above benchmark", 2.0, 1.8, 1.2, 77.78},
		{"double the benchmark caps at 100", 3.6, 1.8, 1.2, 100},
		{"far above benchmark stays at 100", 20, 1.8, 1.2, 100},
		{"exactly at warning", 1.2, 1.8, 1.2, 50},
		{"midway between warning and benchmark", 1.5, 1.8, 1.2, 62.5},
		{"just under benchmark", 1.79, 1.8, 1.2, 74.58},
		{"below warning scales linearly", 0.6, 1.8, 1.2, 25},
		{"zero value", 0, 1.8, 1.2, 0},
		{"negative value", -0.5, 1.8, 1.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRatio(tt.value, tt.benchmark, tt.warning, true)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestNormalizeRatio_LowerIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		warning   float64
		want      float64
	}{
		{"exactly at benchmark", 1.0, 1.0, 2.0, 75},
		{"better than benchmark", 0.5, 1.0, 2.0, 100},
		{"zero debt is the best outcome", 0, 1.0, 2.0, 100},
		{"negative value treated as best", -0.2, 1.0, 2.0, 100},
		{"exactly at warning", 2.0, 1.0, 2.0, 50},
		{"worse than warning", 4.0, 1.0, 2.0, 25},
		{"between warning and benchmark", 1.5, 1.0, 2.0, 58.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRatio(tt.value, tt.benchmark, tt.warning, false)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestNormalizeRatio_Degenerate(t *testing.T) {
	t.Run("NaN value is neutral", func(t *testing.T) {
		assert.Equal(t, NeutralScore, NormalizeRatio(math.NaN(), 1.8, 1.2, true))
	})
	t.Run("infinite value is neutral", func(t *testing.T) {
		assert.Equal(t, NeutralScore, NormalizeRatio(math.Inf(1), 1.8, 1.2, true))
	})
	t.Run("NaN benchmark is neutral", func(t *testing.T) {
		assert.Equal(t, NeutralScore, NormalizeRatio(1.5, math.NaN(), 1.2, true))
	})
	t.Run("non-positive benchmark on inverted ratio is neutral", func(t *testing.T) {
		assert.Equal(t, NeutralScore, NormalizeRatio(1.5, 0, 2.0, false))
		assert.Equal(t, NeutralScore, NormalizeRatio(1.5, 1.0, 0, false))
	})
	t.Run("warning equal to benchmark collapses the middle band", func(t *testing.T) {
		// With warning == benchmark there is no [warning, benchmark)
		// band: a value a hair under benchmark takes the below-warning
		// branch, 50 * value/warning, and stays in bounds.
		got := NormalizeRatio(1.799, 1.8, 1.8, true)
		assert.InDelta(t, 49.97, got, 0.01)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	})
}

func TestNormalizeRatio_AlwaysBounded(t *testing.T) {
	values := []float64{-100, -1, 0, 0.001, 0.5, 1, 1.2, 1.8, 2, 10, 1e6}
	for _, v := range values {
		for _, higher := range []bool{true, false} {
			got := NormalizeRatio(v, 1.8, 1.2, higher)
			assert.GreaterOrEqual(t, got, 0.0, "value %v higher=%v", v, higher)
			assert.LessOrEqual(t, got, 100.0, "value %v higher=%v", v, higher)
		}
	}
}

func TestCrossIndustryScore(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		difficulty float64
		volatility float64
		want       float64
	}{
		{"identity multipliers", 60, 1.0, 1.0, 60},
		{"harder industry lifts the score", 60, 1.2, 1.0, 72},
		{"volatile metric discounts the score", 60, 1.0, 1.2, 50},
		{"clamped at 100", 95, 1.5, 1.0, 100},
		{"zero volatility uses the floor", 1, 1.0, 0, 100},
		{"NaN difficulty is neutral", 60, math.NaN(), 1.0, NeutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CrossIndustryScore(tt.score, tt.difficulty, tt.volatility), 0.01)
		})
	}
}
