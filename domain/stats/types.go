package stats

import (
	"strings"

	"surveylens/domain/core"
)

// Method selects how the correlation coefficient is computed.
type Method string

const (
	MethodPearson  Method = "pearson"
	MethodSpearman Method = "spearman"
)

// ParseMethod maps a user-facing method name onto a Method tag.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pearson":
		return MethodPearson, nil
	case "spearman":
		return MethodSpearman, nil
	default:
		return "", core.ErrUnknownMethod
	}
}

// Display returns the capitalized method name for UI rendering.
func (m Method) Display() string {
	switch m {
	case MethodPearson:
		return "Pearson"
	case MethodSpearman:
		return "Spearman"
	default:
		return string(m)
	}
}

// StrengthLabel is the qualitative effect-size bucket for |r|.
type StrengthLabel string

const (
	StrengthVeryWeak   StrengthLabel = "very_weak"
	StrengthWeak       StrengthLabel = "weak"
	StrengthModerate   StrengthLabel = "moderate"
	StrengthStrong     StrengthLabel = "strong"
	StrengthVeryStrong StrengthLabel = "very_strong"
)

// SignificanceLabel is the verdict of the p < alpha test.
type SignificanceLabel string

const (
	Significant    SignificanceLabel = "significant"
	NotSignificant SignificanceLabel = "not_significant"
)

// CorrelationResult carries everything the interpretation layer needs.
// INVARIANTS:
// - Coefficient in [-1, 1]
// - PValue in [0, 1]
// - SampleSize is the number of paired observations actually used (>= 2)
type CorrelationResult struct {
	VariableX    string            `json:"variable_x"`
	VariableY    string            `json:"variable_y"`
	Method       Method            `json:"method"`
	Coefficient  float64           `json:"coefficient"`
	PValue       float64           `json:"p_value"`
	SampleSize   int               `json:"sample_size"`
	Strength     StrengthLabel     `json:"strength"`
	Significance SignificanceLabel `json:"significance"`
	Narrative    string            `json:"narrative,omitempty"`
}

// ColumnSummary holds the descriptive statistics for one numeric column.
// StdDev is the sample standard deviation (n-1 denominator). Mode is the
// most frequent value; ties resolve to the lowest value.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   float64 `json:"mode"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// FrequencyRow is one line of a frequency/percentage table.
// Percentage is rounded to 2 decimal places; rows across a table need not
// sum to exactly 100 after rounding.
type FrequencyRow struct {
	Value      float64 `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
