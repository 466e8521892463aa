// Package benchmark holds the static financial-ratio catalog: ratio
// definitions, industry benchmarks, warning thresholds, weights,
// interpretation bands and recommendation templates. The catalog is
// built once at startup and injected into the scoring engine; nothing
// in it mutates afterwards.
package benchmark

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/model"
)

// IndustryDefault is the fallback key used when a submitted industry
// has no dedicated benchmark entry.
const IndustryDefault = "default"

// Unit distinguishes how a ratio is expressed, which drives the
// projected-value heuristics for recommendations.
type Unit string

const (
	UnitRatio   Unit = "ratio"   // e.g. Current Ratio 1.8
	UnitPercent Unit = "percent" // e.g. Net Profit Margin 8 (%)
)

// RatioDefinition describes one financial ratio and its reference data.
type RatioDefinition struct {
	Name           string                               `yaml:"name"`
	Description    string                               `yaml:"description"`
	Formula        string                               `yaml:"formula"`
	Category       model.Category                       `yaml:"category"`
	Unit           Unit                                 `yaml:"unit"`
	HigherIsBetter bool                                 `yaml:"higher_is_better"`
	Benchmarks     map[string]map[model.SizeTier]float64 `yaml:"benchmarks"`
	Warnings       map[string]float64                   `yaml:"warnings"`
	Interpretation string                               `yaml:"interpretation"`
}

// ScoreBand is one [Low,High) bucket of canned interpretation text.
// The final band is inclusive of High so a perfect 100 still matches.
type ScoreBand struct {
	Low         float64  `yaml:"low"`
	High        float64  `yaml:"high"`
	Text        string   `yaml:"text"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// ImpactHeuristics are the admitted-placeholder projection bumps used
// when estimating a recommendation's effect on a metric value.
type ImpactHeuristics struct {
	RatioBumpMin  float64 `yaml:"ratio_bump_min"`  // fraction, e.g. 0.05
	RatioBumpMax  float64 `yaml:"ratio_bump_max"`  // fraction, e.g. 0.15
	MarginBumpMin float64 `yaml:"margin_bump_min"` // percentage points
	MarginBumpMax float64 `yaml:"margin_bump_max"` // percentage points
}

// Catalog is the full immutable lookup structure.
type Catalog struct {
	Ratios             map[string]RatioDefinition                       `yaml:"ratios"`
	CategoryWeights    map[model.Category]float64                       `yaml:"category_weights"`
	MetricWeights      map[string]float64                               `yaml:"metric_weights"`
	OverallBands       []ScoreBand                                      `yaml:"overall_bands"`
	CategoryBands      map[model.Category][]ScoreBand                   `yaml:"category_bands"`
	Templates          map[model.Category]map[Severity][]ActionTemplate `yaml:"templates"`
	IndustryDifficulty map[string]float64                               `yaml:"industry_difficulty"`
	MetricVolatility   map[string]float64                               `yaml:"metric_volatility"`
	IndustryMedians    map[string]float64                               `yaml:"industry_medians"`
	DefaultMedian      float64                                          `yaml:"default_median"`
	Heuristics         ImpactHeuristics                                 `yaml:"heuristics"`
}

// Ratio resolves a submitted metric name to its definition,
// case-insensitively. Unknown names return ok=false and are skipped by
// the aggregator rather than erroring.
func (c *Catalog) Ratio(name string) (RatioDefinition, bool) {
	if def, ok := c.Ratios[name]; ok {
		return def, true
	}
	for key, def := range c.Ratios {
		if strings.EqualFold(key, name) {
			return def, true
		}
	}
	return RatioDefinition{}, false
}

// BenchmarkFor returns the reference value for (ratio, industry, size),
// falling back to the default industry entry, then to the industry's
// small tier when the exact tier is absent.
func (c *Catalog) BenchmarkFor(def RatioDefinition, industry string, size model.SizeTier) (float64, bool) {
	for _, key := range []string{industry, IndustryDefault} {
		tiers, ok := lookupIndustry(def.Benchmarks, key)
		if !ok {
			continue
		}
		if v, ok := tiers[size]; ok {
			return v, true
		}
		if v, ok := tiers[model.SizeSmall]; ok {
			return v, true
		}
	}
	return 0, false
}

// WarningFor returns the warning threshold for (ratio, industry) with
// the default-industry fallback.
func (c *Catalog) WarningFor(def RatioDefinition, industry string) (float64, bool) {
	for _, key := range []string{industry, IndustryDefault} {
		if v, ok := lookupIndustryValue(def.Warnings, key); ok {
			return v, true
		}
	}
	return 0, false
}

// MetricWeight returns the intra-category weight for a metric,
// defaulting to 1.0 when the metric has no entry.
func (c *Catalog) MetricWeight(name string) float64 {
	if w, ok := c.MetricWeights[name]; ok {
		return w
	}
	for key, w := range c.MetricWeights {
		if strings.EqualFold(key, name) {
			return w
		}
	}
	return 1.0
}

// Difficulty returns the industry difficulty multiplier (default 1.0).
func (c *Catalog) Difficulty(industry string) float64 {
	if v, ok := lookupIndustryValue(c.IndustryDifficulty, industry); ok {
		return v
	}
	return 1.0
}

// Volatility returns the metric volatility divisor (default 1.0).
func (c *Catalog) Volatility(metric string) float64 {
	if v, ok := c.MetricVolatility[metric]; ok {
		return v
	}
	for key, v := range c.MetricVolatility {
		if strings.EqualFold(key, metric) {
			return v
		}
	}
	return 1.0
}

// Median returns the synthetic percentile anchor for an industry.
func (c *Catalog) Median(industry string) float64 {
	if v, ok := lookupIndustryValue(c.IndustryMedians, industry); ok {
		return v
	}
	return c.DefaultMedian
}

// RatiosInCategory lists the ratio names defined for a category.
func (c *Catalog) RatiosInCategory(cat model.Category) []string {
	var names []string
	for name, def := range c.Ratios {
		if def.Category == cat {
			names = append(names, name)
		}
	}
	return names
}

func lookupIndustry(m map[string]map[model.SizeTier]float64, industry string) (map[model.SizeTier]float64, bool) {
	if v, ok := m[industry]; ok {
		return v, true
	}
	for key, v := range m {
		if strings.EqualFold(key, industry) {
			return v, true
		}
	}
	return nil, false
}

func lookupIndustryValue(m map[string]float64, industry string) (float64, bool) {
	if v, ok := m[industry]; ok {
		return v, true
	}
	for key, v := range m {
		if strings.EqualFold(key, industry) {
			return v, true
		}
	}
	return 0, false
}

// Validate checks the catalog invariants. It runs once at startup so a
// bad override file fails fast instead of skewing scores silently.
func (c *Catalog) Validate() error {
	var errs []string

	if sum := weightSum(c.CategoryWeights); math.Abs(sum-1.0) > 1e-9 {
		errs = append(errs, fmt.Sprintf("category weights must sum to 1.0, got %.4f", sum))
	}

	for _, cat := range model.Categories() {
		if _, ok := c.CategoryWeights[cat]; !ok {
			errs = append(errs, fmt.Sprintf("missing category weight for %s", cat))
		}
		sum := 0.0
		for _, name := range c.RatiosInCategory(cat) {
			sum += c.MetricWeight(name)
		}
		if len(c.RatiosInCategory(cat)) > 0 && math.Abs(sum-1.0) > 1e-9 {
			errs = append(errs, fmt.Sprintf("metric weights in %s must sum to 1.0, got %.4f", cat, sum))
		}
		if len(c.CategoryBands[cat]) == 0 {
			errs = append(errs, fmt.Sprintf("no interpretation bands for %s", cat))
		}
	}

	for name, def := range c.Ratios {
		if def.Category == "" {
			errs = append(errs, fmt.Sprintf("ratio %s has no category", name))
		}
		if _, ok := lookupIndustry(def.Benchmarks, IndustryDefault); !ok {
			errs = append(errs, fmt.Sprintf("ratio %s has no default benchmark", name))
		}
		if _, ok := lookupIndustryValue(def.Warnings, IndustryDefault); !ok {
			errs = append(errs, fmt.Sprintf("ratio %s has no default warning threshold", name))
		}
	}

	if len(c.OverallBands) == 0 {
		errs = append(errs, "no overall interpretation bands")
	}
	if err := validateBands(c.OverallBands); err != nil {
		errs = append(errs, "overall bands: "+err.Error())
	}
	for cat, bands := range c.CategoryBands {
		if err := validateBands(bands); err != nil {
			errs = append(errs, fmt.Sprintf("%s bands: %s", cat, err))
		}
	}

	for cat, bySeverity := range c.Templates {
		for sev, templates := range bySeverity {
			for _, tpl := range templates {
				if tpl.ImpactFactor <= 0 || tpl.ImpactFactor >= 1 {
					errs = append(errs, fmt.Sprintf("template %q (%s/%s): impact factor must be in (0,1)", tpl.Title, cat, sev))
				}
				if tpl.Priority < 1 || tpl.Priority > 5 {
					errs = append(errs, fmt.Sprintf("template %q (%s/%s): priority must be 1-5", tpl.Title, cat, sev))
				}
			}
		}
	}

	h := c.Heuristics
	if h.RatioBumpMin <= 0 || h.RatioBumpMax < h.RatioBumpMin {
		errs = append(errs, "ratio bump heuristics must satisfy 0 < min <= max")
	}
	if h.MarginBumpMin <= 0 || h.MarginBumpMax < h.MarginBumpMin {
		errs = append(errs, "margin bump heuristics must satisfy 0 < min <= max")
	}

	if len(errs) > 0 {
		return eris.Errorf("benchmark: catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateBands checks bands are contiguous from 0 to 100.
func validateBands(bands []ScoreBand) error {
	prev := 0.0
	for i, b := range bands {
		if b.Low != prev {
			return eris.Errorf("band %d starts at %.1f, expected %.1f", i, b.Low, prev)
		}
		if b.High <= b.Low {
			return eris.Errorf("band %d has high %.1f <= low %.1f", i, b.High, b.Low)
		}
		prev = b.High
	}
	if prev != 100 {
		return eris.Errorf("bands end at %.1f, expected 100", prev)
	}
	return nil
}

func weightSum(w map[model.Category]float64) float64 {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum
}
