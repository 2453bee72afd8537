package ports

import (
	"context"

	"surveylens/domain/dataset"
	"surveylens/domain/stats"
)

// Summarizer computes descriptive statistics for a set of numeric columns.
type Summarizer interface {
	Summarize(ctx context.Context, cols []dataset.NumericColumn) (map[string]stats.ColumnSummary, error)
}

// FrequencyBuilder produces a value/count/percentage table for one column,
// sorted ascending by value.
type FrequencyBuilder interface {
	FrequencyTable(col dataset.NumericColumn) []stats.FrequencyRow
}
