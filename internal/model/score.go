package model

import "time"

// CategoryScore is the rolled-up score for one ratio category.
type CategoryScore struct {
	Category       Category           `json:"category"`
	Score          float64            `json:"score"`
	MetricScores   map[string]float64 `json:"metrics_scores"`
	Interpretation string             `json:"interpretation"`
	Suggestions    []string           `json:"suggestions,omitempty"`
}

// OverallScore is the full scoring result for one request.
type OverallScore struct {
	Score          float64                    `json:"score"`
	Percentile     float64                    `json:"percentile"`
	Interpretation string                     `json:"interpretation"`
	CategoryScores map[Category]CategoryScore `json:"category_scores"`
}

// Difficulty estimates the effort of implementing a recommendation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Timeframe estimates how long a recommendation takes to show results.
type Timeframe string

const (
	TimeframeShort  Timeframe = "Short-term"
	TimeframeMedium Timeframe = "Medium-term"
	TimeframeLong   Timeframe = "Long-term"
)

// ActionImpact projects the effect of a recommendation on one metric.
type ActionImpact struct {
	MetricName            string  `json:"metric_name"`
	CurrentValue          float64 `json:"current_value"`
	ProjectedValue        float64 `json:"projected_value"`
	ImprovementPercentage float64 `json:"improvement_percentage"`
	ScoreIncrease         float64 `json:"score_increase"`
}

// RecommendedAction is one prioritized improvement recommendation.
// Priority 1 is most urgent.
type RecommendedAction struct {
	Title                         string         `json:"title"`
	Description                   string         `json:"description"`
	Priority                      int            `json:"priority"`
	Difficulty                    Difficulty     `json:"difficulty"`
	Timeframe                     Timeframe      `json:"timeframe"`
	Category                      Category       `json:"category"`
	Impacts                       []ActionImpact `json:"impacts,omitempty"`
	EstimatedOverallScoreIncrease float64        `json:"estimated_overall_score_increase"`
}

// ScoreRun is a persisted scoring request and its result. The engine
// never writes these; the service layer saves them when asked to.
type ScoreRun struct {
	ID        string            `json:"id"`
	Company   Company           `json:"company"`
	Metrics   []FinancialMetric `json:"metrics"`
	Result    OverallScore      `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}
