package summary

import (
	"context"
	"sync"

	"surveylens/domain/core"
	"surveylens/domain/dataset"
	"surveylens/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Summarizer computes descriptive statistics per numeric column. It
// satisfies ports.Summarizer.
type Summarizer struct{}

// NewSummarizer creates a summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize fans the per-column work out across goroutines and collects the
// results keyed by column name. Any column failure fails the whole call.
func (s *Summarizer) Summarize(ctx context.Context, cols []dataset.NumericColumn) (map[string]stats.ColumnSummary, error) {
	results := make(map[string]stats.ColumnSummary, len(cols))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, col := range cols {
		col := col
		g.Go(func() error {
			summary, err := summarizeColumn(col)
			if err != nil {
				return err
			}
			mu.Lock()
			results[col.Name] = summary
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarizeColumn(col dataset.NumericColumn) (stats.ColumnSummary, error) {
	if len(col.Values) == 0 {
		return stats.ColumnSummary{}, core.NewInsufficientDataError(0)
	}

	mean, err := mstats.Mean(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	median, err := mstats.Median(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	min, err := mstats.Min(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	max, err := mstats.Max(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}

	// Sample standard deviation (n-1), matching the survey convention.
	// A single observation has no spread to estimate.
	stdDev := 0.0
	if len(col.Values) > 1 {
		stdDev, err = mstats.StandardDeviationSample(col.Values)
		if err != nil {
			return stats.ColumnSummary{}, err
		}
	}

	return stats.ColumnSummary{
		Column: col.Name,
		Count:  len(col.Values),
		Mean:   mean,
		Median: median,
		Mode:   modeLowest(col.Values),
		Min:    min,
		Max:    max,
		StdDev: stdDev,
	}, nil
}

// modeLowest returns the most frequent value, breaking ties toward the
// lowest value. When every value is unique the whole column is tied, so the
// minimum wins.
func modeLowest(values []float64) float64 {
	modes, err := mstats.Mode(values)
	if err == nil && len(modes) > 0 {
		lowest := modes[0]
		for _, m := range modes[1:] {
			if m < lowest {
				lowest = m
			}
		}
		return lowest
	}
	min, _ := mstats.Min(values)
	return min
}
