// Package recommend selects prioritized improvement actions from the
// catalog's template table based on a score breakdown. Selection is a
// greedy worst-category-first pass, bounded by the caller's limit; it
// does not attempt optimal portfolio selection.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
)

// maxTemplatesPerCategory caps how many templates a single category can
// contribute in one pass.
const maxTemplatesPerCategory = 2

// Selector generates recommendations from the injected catalog.
type Selector struct {
	catalog *benchmark.Catalog
}

// NewSelector creates a Selector over a validated catalog.
func NewSelector(catalog *benchmark.Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Request carries everything Generate needs. Metrics are optional: when
// the raw submission is available (inline score+recommend flows) the
// projected values are expressed in metric units, otherwise in score
// units.
type Request struct {
	Scores             model.OverallScore
	MaxRecommendations int
	FocusCategories    []model.Category
	Metrics            []model.FinancialMetric
}

// Result is the ordered recommendation list plus the prioritization
// rationale shown to the user.
type Result struct {
	Actions             []model.RecommendedAction `json:"recommendations"`
	PriorityExplanation string                    `json:"priority_explanation"`
}

// Generate runs the greedy selection. MaxRecommendations of zero or
// below yields an empty result; the returned list never exceeds the
// limit and is sorted by priority ascending (1 = most urgent).
func (s *Selector) Generate(req Request) Result {
	ordered := s.orderCategories(req.Scores, req.FocusCategories)
	explanation := s.explain(ordered)

	if req.MaxRecommendations <= 0 || len(ordered) == 0 {
		return Result{Actions: []model.RecommendedAction{}, PriorityExplanation: explanation}
	}

	values := metricValues(req.Metrics)

	actions := make([]model.RecommendedAction, 0, req.MaxRecommendations)
	for _, cs := range ordered {
		if len(actions) >= req.MaxRecommendations {
			break
		}

		severity := benchmark.BucketScore(cs.Score)
		templates := s.templatesFor(cs.Category, severity)
		for i, tpl := range templates {
			if i >= maxTemplatesPerCategory || len(actions) >= req.MaxRecommendations {
				break
			}
			actions = append(actions, s.buildAction(cs, tpl, values))
		}
	}

	// Stable sort keeps the worst-category ordering within a priority.
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})

	return Result{Actions: actions, PriorityExplanation: explanation}
}

// orderCategories filters to the focus set (when given) and sorts
// ascending by score so the weakest category is addressed first.
func (s *Selector) orderCategories(scores model.OverallScore, focus []model.Category) []model.CategoryScore {
	wanted := func(model.Category) bool { return true }
	if len(focus) > 0 {
		set := make(map[model.Category]struct{}, len(focus))
		for _, c := range focus {
			set[c] = struct{}{}
		}
		wanted = func(c model.Category) bool {
			_, ok := set[c]
			return ok
		}
	}

	var ordered []model.CategoryScore
	for _, cat := range model.Categories() {
		if cs, ok := scores.CategoryScores[cat]; ok && wanted(cat) {
			ordered = append(ordered, cs)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score < ordered[j].Score
	})
	return ordered
}

// templatesFor resolves the (category, severity) cell. An empty cell is
// logged rather than silently skipped so table gaps are visible.
func (s *Selector) templatesFor(cat model.Category, severity benchmark.Severity) []benchmark.ActionTemplate {
	bySeverity, ok := s.catalog.Templates[cat]
	if !ok {
		zap.L().Warn("recommend: no template table for category", zap.String("category", string(cat)))
		return nil
	}
	templates, ok := bySeverity[severity]
	if !ok || len(templates) == 0 {
		zap.L().Warn("recommend: no templates for severity",
			zap.String("category", string(cat)),
			zap.String("severity", string(severity)),
		)
		return nil
	}
	return templates
}

// buildAction instantiates a template against the category's current
// scores, distributing the expected gain across metrics proportionally
// to each metric's gap-to-100.
func (s *Selector) buildAction(cs model.CategoryScore, tpl benchmark.ActionTemplate, values map[string]float64) model.RecommendedAction {
	totalGain := (100 - cs.Score) * tpl.ImpactFactor

	impacts, distributed := s.distributeImpacts(cs, totalGain, values)

	return model.RecommendedAction{
		Title:                         tpl.Title,
		Description:                   tpl.Description,
		Priority:                      tpl.Priority,
		Difficulty:                    tpl.Difficulty,
		Timeframe:                     tpl.Timeframe,
		Category:                      cs.Category,
		Impacts:                       impacts,
		EstimatedOverallScoreIncrease: round2(distributed * s.catalog.CategoryWeights[cs.Category]),
	}
}

// distributeImpacts spreads totalGain across the category's metrics:
// metrics further from 100 absorb proportionally more of the
// improvement. Returns the impacts and the gain actually distributed.
func (s *Selector) distributeImpacts(cs model.CategoryScore, totalGain float64, values map[string]float64) ([]model.ActionImpact, float64) {
	var totalGap float64
	for _, score := range cs.MetricScores {
		totalGap += 100 - score
	}
	if totalGap <= 0 || totalGain <= 0 {
		return nil, 0
	}

	names := make([]string, 0, len(cs.MetricScores))
	for name := range cs.MetricScores {
		names = append(names, name)
	}
	sort.Strings(names)

	var impacts []model.ActionImpact
	var distributed float64
	for _, name := range names {
		score := cs.MetricScores[name]
		gap := 100 - score
		if gap <= 0 {
			continue
		}

		scoreIncrease := totalGain * (gap / totalGap)
		distributed += scoreIncrease

		current, projected := s.projectValue(name, score, gap, values)
		improvementPct := 0.0
		if current != 0 {
			improvementPct = round2((projected - current) / current * 100)
		}

		impacts = append(impacts, model.ActionImpact{
			MetricName:            name,
			CurrentValue:          round2(current),
			ProjectedValue:        round2(projected),
			ImprovementPercentage: improvementPct,
			ScoreIncrease:         round2(scoreIncrease),
		})
	}
	return impacts, distributed
}

// projectValue estimates the post-action metric value using the
// catalog's illustrative bump heuristics: percentage bumps for plain
// ratios, point bumps for margins, scaled by how far the metric is from
// its ceiling. Without a raw value the projection stays in score units.
func (s *Selector) projectValue(name string, score, gap float64, values map[string]float64) (current, projected float64) {
	h := s.catalog.Heuristics
	gapFraction := gap / 100

	raw, haveRaw := values[strings.ToLower(name)]
	if !haveRaw {
		// Score-space projection only.
		return score, clampScore(score + gap*gapFraction)
	}

	def, ok := s.catalog.Ratio(name)
	if ok && def.Unit == benchmark.UnitPercent {
		bump := h.MarginBumpMin + (h.MarginBumpMax-h.MarginBumpMin)*gapFraction
		if !def.HigherIsBetter {
			bump = -bump
		}
		return raw, raw + bump
	}

	bump := h.RatioBumpMin + (h.RatioBumpMax-h.RatioBumpMin)*gapFraction
	if ok && !def.HigherIsBetter {
		bump = -bump
	}
	return raw, raw * (1 + bump)
}

// explain renders the prioritization rationale: which categories were
// considered, in what order, and at what severity.
func (s *Selector) explain(ordered []model.CategoryScore) string {
	if len(ordered) == 0 {
		return "No category scores were available, so no recommendations were generated."
	}

	parts := make([]string, 0, len(ordered))
	for _, cs := range ordered {
		parts = append(parts, fmt.Sprintf("%s (%s, %.1f)",
			cs.Category, benchmark.BucketScore(cs.Score), cs.Score))
	}
	return "Recommendations are ordered by category weakness, worst first: " +
		strings.Join(parts, ", ") +
		". Priority 1 actions address the most urgent category."
}

func metricValues(metrics []model.FinancialMetric) map[string]float64 {
	if len(metrics) == 0 {
		return nil
	}
	values := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		values[strings.ToLower(m.Name)] = m.Value
	}
	return values
}

func clampScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
