package benchmark

// Severity buckets a category score for recommendation template
// selection.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
	SeverityGood     Severity = "good"
)

// Severities lists all buckets from worst to best.
func Severities() []Severity {
	return []Severity{
		SeverityCritical,
		SeveritySevere,
		SeverityModerate,
		SeverityMinor,
		SeverityGood,
	}
}

// BucketScore maps a category score to its severity bucket using the
// fixed cutoffs critical<30, severe<50, moderate<70, minor<85.
func BucketScore(score float64) Severity {
	switch {
	case score < 30:
		return SeverityCritical
	case score < 50:
		return SeveritySevere
	case score < 70:
		return SeverityModerate
	case score < 85:
		return SeverityMinor
	default:
		return SeverityGood
	}
}
