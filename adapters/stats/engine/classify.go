package engine

import (
	"math"

	"surveylens/domain/stats"
)

// DefaultAlpha is the significance level used when none is configured.
const DefaultAlpha = 0.05

// ClassifyStrength buckets the absolute coefficient into a qualitative
// label. Intervals are half-open on the right, so a boundary value lands in
// the higher bucket: |r| = 0.2 is weak, not very weak.
func ClassifyStrength(coefficient float64) stats.StrengthLabel {
	abs := math.Abs(coefficient)
	switch {
	case abs < 0.2:
		return stats.StrengthVeryWeak
	case abs < 0.4:
		return stats.StrengthWeak
	case abs < 0.6:
		return stats.StrengthModerate
	case abs < 0.8:
		return stats.StrengthStrong
	default:
		return stats.StrengthVeryStrong
	}
}

// ClassifySignificance applies the strict p < alpha test. Equality is not
// significant.
func ClassifySignificance(pValue, alpha float64) stats.SignificanceLabel {
	if pValue < alpha {
		return stats.Significant
	}
	return stats.NotSignificant
}
