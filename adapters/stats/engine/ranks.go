package engine

import "sort"

// averageRanks converts values to 1-based ranks, averaging ranks across
// ties so that tied observations share the same rank.
func averageRanks(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return []float64{}
	}

	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, val := range data {
		pairs[i] = pair{value: val, index: i}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}
		// Positions i..j-1 hold the same value; give them the average rank.
		avg := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avg
		}
		i = j
	}
	return ranks
}
