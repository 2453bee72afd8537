package summary

import (
	"context"
	"errors"
	"math"
	"testing"

	"surveylens/domain/core"
	"surveylens/domain/dataset"
)

func numCol(name string, values ...float64) dataset.NumericColumn {
	return dataset.NumericColumn{Name: name, Values: values}
}

func TestSummarize_KnownValues(t *testing.T) {
	s := NewSummarizer()

	results, err := s.Summarize(context.Background(), []dataset.NumericColumn{
		numCol("score", 1, 2, 2, 3, 4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := results["score"]
	if !ok {
		t.Fatal("missing summary for score")
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"mean", got.Mean, 2.4},
		{"median", got.Median, 2},
		{"mode", got.Mode, 2},
		{"min", got.Min, 1},
		{"max", got.Max, 4},
		{"stddev", got.StdDev, math.Sqrt(1.3)}, // sample variance 5.2/4
	}
	for _, c := range checks {
		if math.Abs(c.got-c.expected) > 1e-9 {
			t.Errorf("%s: expected %.6f, got %.6f", c.name, c.expected, c.got)
		}
	}
	if got.Count != 5 {
		t.Errorf("count: expected 5, got %d", got.Count)
	}
}

func TestSummarize_MultipleColumns(t *testing.T) {
	s := NewSummarizer()

	results, err := s.Summarize(context.Background(), []dataset.NumericColumn{
		numCol("x1", 1, 2, 3),
		numCol("x2", 4, 5, 6),
		numCol("y1", 7, 8, 9),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(results))
	}
	if results["x2"].Mean != 5 {
		t.Errorf("x2 mean: expected 5, got %.2f", results["x2"].Mean)
	}
}

func TestSummarize_EmptyColumnFails(t *testing.T) {
	s := NewSummarizer()

	_, err := s.Summarize(context.Background(), []dataset.NumericColumn{numCol("empty")})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestModeLowest(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"single mode", []float64{1, 2, 2, 3}, 2},
		{"tie resolves to lowest", []float64{1, 1, 3, 3, 2}, 1},
		{"all unique resolves to minimum", []float64{3, 1, 2}, 1},
		{"single value", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeLowest(tt.values); got != tt.expected {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}
