// Package scoring implements the financial health scoring engine:
// piecewise ratio normalization, category and overall aggregation,
// interpretation lookup and cross-industry rescaling. Everything here
// is a pure function of its inputs plus the injected catalog; the
// engine never errors, it degrades to neutral defaults.
package scoring

import "math"

// NeutralScore is returned whenever the engine cannot judge an input.
const NeutralScore = 50.0

// minDenominator floors divisors so degenerate benchmark tables cannot
// divide by zero.
const minDenominator = 0.01

// NormalizeRatio maps a raw ratio against its industry benchmark and
// warning threshold onto [0,100]:
//
//	value >= benchmark            -> [75,100]
//	warning <= value < benchmark  -> [50,75)
//	value < warning               -> [0,50)
//
// Lower-is-better ratios are inverted into the higher-is-better frame
// by taking reciprocals, which preserves the band boundaries (a value
// exactly on benchmark still scores 75). Non-finite inputs score
// neutral; the result is always clamped to [0,100].
func NormalizeRatio(value, benchmark, warning float64, higherIsBetter bool) float64 {
	if !isFinite(value) || !isFinite(benchmark) || !isFinite(warning) {
		return NeutralScore
	}

	if !higherIsBetter {
		// Zero on a lower-is-better ratio (e.g. no debt at all) is the
		// best possible outcome, not a division hazard.
		if value <= 0 {
			return 100
		}
		if benchmark <= 0 || warning <= 0 {
			return NeutralScore
		}
		value, benchmark, warning = 1/value, 1/benchmark, 1/warning
	}

	switch {
	case value >= benchmark:
		excess := (value - benchmark) / math.Max(benchmark, minDenominator)
		return clamp(75 + math.Min(excess, 1.0)*25)

	case value >= warning:
		safeZone := math.Abs(benchmark - warning)
		if safeZone < minDenominator {
			safeZone = minDenominator
		}
		return clamp(50 + math.Min((value-warning)/safeZone, 1.0)*25)

	default:
		if warning <= 0 {
			// Degenerate threshold: below benchmark with nothing to
			// scale against.
			return 25
		}
		return clamp(50 * math.Max(0, value/warning))
	}
}

// CrossIndustryScore rescales a score for cross-industry comparability
// using the catalog's difficulty and volatility multipliers. Pure
// arithmetic: monotone increasing in difficulty, decreasing in
// volatility, clamped to [0,100].
func CrossIndustryScore(score, difficulty, volatility float64) float64 {
	if !isFinite(score) || !isFinite(difficulty) || !isFinite(volatility) {
		return NeutralScore
	}
	return clamp(score * difficulty / math.Max(volatility, minDenominator))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round2 trims a score to two decimal places for stable output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
