// Package model defines the domain types shared across the scoring
// engine, recommendation selector, store and transport layers. All
// score types are request-scoped; only ScoreRun has a persistence
// lifecycle.
package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Category groups related financial ratios.
type Category string

const (
	CategoryProfitability Category = "Profitability"
	CategoryLiquidity     Category = "Liquidity"
	CategoryLeverage      Category = "Leverage"
	CategoryEfficiency    Category = "Efficiency"
)

// Categories lists all categories in report order.
func Categories() []Category {
	return []Category{
		CategoryProfitability,
		CategoryLiquidity,
		CategoryLeverage,
		CategoryEfficiency,
	}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", eris.Errorf("model: unknown category %q", s)
}

// SizeTier classifies a business by size for benchmark selection.
type SizeTier string

const (
	SizeSmall  SizeTier = "small"
	SizeMedium SizeTier = "medium"
	SizeLarge  SizeTier = "large"
)

// ParseSizeTier validates a size tier string. Invalid values are the
// one request-validation error the scoring surface returns (HTTP 400).
func ParseSizeTier(s string) (SizeTier, error) {
	switch SizeTier(strings.ToLower(strings.TrimSpace(s))) {
	case SizeSmall:
		return SizeSmall, nil
	case SizeMedium:
		return SizeMedium, nil
	case SizeLarge:
		return SizeLarge, nil
	default:
		return "", eris.Errorf("model: size must be small, medium or large (got %q)", s)
	}
}

// FinancialMetric is a single submitted ratio observation.
type FinancialMetric struct {
	Name  string    `json:"name"`
	Value float64   `json:"value"`
	Unit  string    `json:"unit,omitempty"`
	Date  time.Time `json:"date,omitempty"`
}

// Company identifies the business being scored.
type Company struct {
	ID       string   `json:"company_id"`
	Industry string   `json:"industry"`
	Size     SizeTier `json:"size"`
}
