package summary

import (
	"testing"

	"surveylens/domain/dataset"
	"surveylens/domain/stats"
)

func TestFrequencyTable(t *testing.T) {
	s := NewSummarizer()

	rows := s.FrequencyTable(numCol("answers", 1, 1, 2, 3, 3, 3))

	expected := []stats.FrequencyRow{
		{Value: 1, Count: 2, Percentage: 33.33},
		{Value: 2, Count: 1, Percentage: 16.67},
		{Value: 3, Count: 3, Percentage: 50.00},
	}

	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(rows))
	}
	for i, want := range expected {
		if rows[i] != want {
			t.Errorf("row %d: expected %+v, got %+v", i, want, rows[i])
		}
	}
}

func TestFrequencyTable_SortedAscending(t *testing.T) {
	s := NewSummarizer()

	rows := s.FrequencyTable(numCol("answers", 5, 3, 4, 3, 5, 1))
	for i := 1; i < len(rows); i++ {
		if rows[i].Value <= rows[i-1].Value {
			t.Fatalf("rows not sorted ascending at %d: %+v", i, rows)
		}
	}
}

func TestFrequencyTable_Empty(t *testing.T) {
	s := NewSummarizer()

	if rows := s.FrequencyTable(dataset.NumericColumn{Name: "empty"}); rows != nil {
		t.Errorf("expected nil for empty column, got %+v", rows)
	}
}
