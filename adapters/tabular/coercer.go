package tabular

import (
	"math"
	"strconv"
	"strings"

	"surveylens/domain/dataset"
)

// CoercionConfig defines the thresholds used during column type inference.
type CoercionConfig struct {
	// NumericThreshold is the fraction of non-empty cells that must parse as
	// finite numbers for a column to be treated as numeric.
	NumericThreshold float64
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NumericThreshold: 0.8,
	}
}

// Coercer handles deterministic numeric coercion and column kind inference.
type Coercer struct {
	config CoercionConfig
}

// NewCoercer creates a coercer with the given config
func NewCoercer(config CoercionConfig) *Coercer {
	return &Coercer{config: config}
}

// ParseNumeric attempts to read a cell as a finite float. Empty cells and
// cells carrying NaN/Inf are rejected, never passed downstream.
func (c *Coercer) ParseNumeric(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	// Tolerate thousands separators like "1,234.5".
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// InferKind classifies a column from its raw cells. Columns where enough
// non-empty cells parse as numbers are numeric; everything else is text.
// An all-empty column is text: there is nothing to analyze in it.
func (c *Coercer) InferKind(cells []string) dataset.ColumnKind {
	nonEmpty := 0
	numeric := 0
	for _, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		nonEmpty++
		if _, ok := c.ParseNumeric(cell); ok {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return dataset.KindText
	}
	if float64(numeric)/float64(nonEmpty) >= c.config.NumericThreshold {
		return dataset.KindNumeric
	}
	return dataset.KindText
}
