// Package plot prepares chart geometry server-side so the templates can
// draw histograms, boxplots and scatter plots as plain SVG. It consumes
// finished numeric data and produces no data back.
package plot

import (
	"fmt"

	"surveylens/domain/core"

	mstats "github.com/montanaflynn/stats"
)

// DefaultHistogramBins is the fixed bucket count for column histograms.
const DefaultHistogramBins = 5

// HistogramBin is one bucket of a histogram. HeightPct is the bar height
// relative to the tallest bin, for direct use as an SVG dimension.
type HistogramBin struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Count     int     `json:"count"`
	HeightPct float64 `json:"height_pct"`
	Label     string  `json:"label"`
}

// HistogramData is the full prepared histogram.
type HistogramData struct {
	Bins     []HistogramBin `json:"bins"`
	MaxCount int            `json:"max_count"`
}

// Histogram buckets values into binCount equal-width bins. Values equal to
// the upper edge land in the last bin.
func Histogram(values []float64, binCount int) (HistogramData, error) {
	if len(values) == 0 {
		return HistogramData{}, core.NewInsufficientDataError(0)
	}
	if binCount < 1 {
		binCount = DefaultHistogramBins
	}

	min, _ := mstats.Min(values)
	max, _ := mstats.Max(values)
	if min == max {
		// Degenerate range: widen symmetrically so every value falls into
		// a real bucket instead of a zero-width one.
		min -= 0.5
		max += 0.5
	}

	width := (max - min) / float64(binCount)
	bins := make([]HistogramBin, binCount)
	for i := range bins {
		lower := min + float64(i)*width
		bins[i].Lower = lower
		bins[i].Upper = lower + width
		bins[i].Label = fmt.Sprintf("%.4g", lower)
	}

	maxCount := 0
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
		if bins[idx].Count > maxCount {
			maxCount = bins[idx].Count
		}
	}

	for i := range bins {
		bins[i].HeightPct = float64(bins[i].Count) / float64(maxCount) * 100
	}

	return HistogramData{Bins: bins, MaxCount: maxCount}, nil
}

// BoxPositions place the box components on a horizontal 0-100 axis.
type BoxPositions struct {
	WhiskerLowPct  float64   `json:"whisker_low_pct"`
	Q1Pct          float64   `json:"q1_pct"`
	MedianPct      float64   `json:"median_pct"`
	Q3Pct          float64   `json:"q3_pct"`
	WhiskerHighPct float64   `json:"whisker_high_pct"`
	OutlierPcts    []float64 `json:"outlier_pcts,omitempty"`
}

// BoxPlotData carries the five-number summary, 1.5*IQR whiskers, and the
// outliers beyond them, plus prepared axis positions.
type BoxPlotData struct {
	Min         float64      `json:"min"`
	Q1          float64      `json:"q1"`
	Median      float64      `json:"median"`
	Q3          float64      `json:"q3"`
	Max         float64      `json:"max"`
	WhiskerLow  float64      `json:"whisker_low"`
	WhiskerHigh float64      `json:"whisker_high"`
	Outliers    []float64    `json:"outliers,omitempty"`
	Positions   BoxPositions `json:"positions"`
}

// BoxPlot prepares a horizontal boxplot for one column.
func BoxPlot(values []float64) (BoxPlotData, error) {
	if len(values) == 0 {
		return BoxPlotData{}, core.NewInsufficientDataError(0)
	}

	min, _ := mstats.Min(values)
	max, _ := mstats.Max(values)
	q1, err := mstats.Percentile(values, 25)
	if err != nil {
		q1 = min
	}
	median, err := mstats.Median(values)
	if err != nil {
		return BoxPlotData{}, err
	}
	q3, err := mstats.Percentile(values, 75)
	if err != nil {
		q3 = max
	}

	iqr := q3 - q1
	fenceLow := q1 - 1.5*iqr
	fenceHigh := q3 + 1.5*iqr

	// Whiskers reach to the most extreme values still inside the fences.
	whiskerLow, whiskerHigh := max, min
	var outliers []float64
	for _, v := range values {
		if v < fenceLow || v > fenceHigh {
			outliers = append(outliers, v)
			continue
		}
		if v < whiskerLow {
			whiskerLow = v
		}
		if v > whiskerHigh {
			whiskerHigh = v
		}
	}

	data := BoxPlotData{
		Min:         min,
		Q1:          q1,
		Median:      median,
		Q3:          q3,
		Max:         max,
		WhiskerLow:  whiskerLow,
		WhiskerHigh: whiskerHigh,
		Outliers:    outliers,
	}

	scale := newAxisScale(min, max)
	data.Positions = BoxPositions{
		WhiskerLowPct:  scale.pct(whiskerLow),
		Q1Pct:          scale.pct(q1),
		MedianPct:      scale.pct(median),
		Q3Pct:          scale.pct(q3),
		WhiskerHighPct: scale.pct(whiskerHigh),
	}
	for _, o := range outliers {
		data.Positions.OutlierPcts = append(data.Positions.OutlierPcts, scale.pct(o))
	}
	return data, nil
}

// ScatterPoint is one (x, y) pair with its prepared plot-area position.
type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	XPct float64 `json:"x_pct"`
	YPct float64 `json:"y_pct"`
}

// ScatterData is a prepared scatter plot with axis labels taken from the
// column names.
type ScatterData struct {
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
	Points []ScatterPoint `json:"points"`
}

// Scatter pairs two equal-length sequences into plot points.
func Scatter(x, y []float64, xName, yName string) (ScatterData, error) {
	if len(x) != len(y) {
		return ScatterData{}, core.NewSelectionError("x and y must have equal length")
	}
	if len(x) == 0 {
		return ScatterData{}, core.NewInsufficientDataError(0)
	}

	xMin, _ := mstats.Min(x)
	xMax, _ := mstats.Max(x)
	yMin, _ := mstats.Min(y)
	yMax, _ := mstats.Max(y)
	xScale := newAxisScale(xMin, xMax)
	yScale := newAxisScale(yMin, yMax)

	points := make([]ScatterPoint, len(x))
	for i := range x {
		points[i] = ScatterPoint{
			X:    x[i],
			Y:    y[i],
			XPct: xScale.pct(x[i]),
			// SVG y grows downward; flip so larger values plot higher.
			YPct: 100 - yScale.pct(y[i]),
		}
	}

	return ScatterData{XLabel: xName, YLabel: yName, Points: points}, nil
}

// axisScale maps values onto a padded 0-100 axis.
type axisScale struct {
	min  float64
	span float64
}

func newAxisScale(min, max float64) axisScale {
	span := max - min
	if span == 0 {
		span = 1
	}
	// 5% padding on each side keeps extreme points off the plot border.
	pad := span * 0.05
	return axisScale{min: min - pad, span: span + 2*pad}
}

func (s axisScale) pct(v float64) float64 {
	return (v - s.min) / s.span * 100
}
