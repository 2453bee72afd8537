package summary

import (
	"math"
	"sort"

	"surveylens/domain/dataset"
	"surveylens/domain/stats"
)

// FrequencyTable counts distinct values in a column and reports each with
// its percentage of the total, sorted ascending by value. Percentages are
// rounded to 2 decimal places and may not sum to exactly 100.
func (s *Summarizer) FrequencyTable(col dataset.NumericColumn) []stats.FrequencyRow {
	if len(col.Values) == 0 {
		return nil
	}

	counts := make(map[float64]int)
	for _, v := range col.Values {
		counts[v]++
	}

	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	total := float64(len(col.Values))
	rows := make([]stats.FrequencyRow, 0, len(values))
	for _, v := range values {
		pct := float64(counts[v]) / total * 100
		rows = append(rows, stats.FrequencyRow{
			Value:      v,
			Count:      counts[v],
			Percentage: math.Round(pct*100) / 100,
		})
	}
	return rows
}
