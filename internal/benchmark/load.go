package benchmark

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline/finhealth/internal/model"
)

// overlay is the partial catalog shape accepted from a YAML override
// file. Only the sections present in the file are applied.
type overlay struct {
	Ratios             map[string]RatioDefinition                       `yaml:"ratios"`
	CategoryWeights    map[model.Category]float64                       `yaml:"category_weights"`
	MetricWeights      map[string]float64                               `yaml:"metric_weights"`
	OverallBands       []ScoreBand                                      `yaml:"overall_bands"`
	CategoryBands      map[model.Category][]ScoreBand                   `yaml:"category_bands"`
	Templates          map[model.Category]map[Severity][]ActionTemplate `yaml:"templates"`
	IndustryDifficulty map[string]float64                               `yaml:"industry_difficulty"`
	MetricVolatility   map[string]float64                               `yaml:"metric_volatility"`
	IndustryMedians    map[string]float64                               `yaml:"industry_medians"`
	DefaultMedian      *float64                                         `yaml:"default_median"`
	Heuristics         *ImpactHeuristics                                `yaml:"heuristics"`
}

// Load builds the catalog: the compiled-in defaults, optionally
// overlaid with a YAML file, validated before use. An empty path
// returns the validated defaults.
func Load(path string) (*Catalog, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "benchmark: read override file %s", path)
		}
		var o overlay
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, eris.Wrapf(err, "benchmark: parse override file %s", path)
		}
		applyOverlay(c, &o)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyOverlay merges file entries over the defaults. Map sections
// merge per key; bands and templates replace wholesale per category so
// a file cannot leave a half-edited table behind.
func applyOverlay(c *Catalog, o *overlay) {
	for name, def := range o.Ratios {
		c.Ratios[name] = def
	}
	for cat, w := range o.CategoryWeights {
		c.CategoryWeights[cat] = w
	}
	for name, w := range o.MetricWeights {
		c.MetricWeights[name] = w
	}
	if len(o.OverallBands) > 0 {
		c.OverallBands = o.OverallBands
	}
	for cat, bands := range o.CategoryBands {
		c.CategoryBands[cat] = bands
	}
	for cat, bySeverity := range o.Templates {
		c.Templates[cat] = bySeverity
	}
	for k, v := range o.IndustryDifficulty {
		c.IndustryDifficulty[k] = v
	}
	for k, v := range o.MetricVolatility {
		c.MetricVolatility[k] = v
	}
	for k, v := range o.IndustryMedians {
		c.IndustryMedians[k] = v
	}
	if o.DefaultMedian != nil {
		c.DefaultMedian = *o.DefaultMedian
	}
	if o.Heuristics != nil {
		c.Heuristics = *o.Heuristics
	}
}
