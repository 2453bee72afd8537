package ports

import (
	"surveylens/domain/dataset"
	"surveylens/domain/stats"
)

// CorrelationEngine computes a correlation coefficient, its two-sided
// p-value, and the qualitative classifications for two paired numeric
// columns. Implementations are pure: same inputs, same outputs, no state.
type CorrelationEngine interface {
	Compute(x, y dataset.NumericColumn, method stats.Method) (stats.CorrelationResult, error)
}
