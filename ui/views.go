package ui

import (
	"context"
	"html/template"
	"log"

	"surveylens/domain/dataset"
	"surveylens/domain/stats"
	"surveylens/internal/plot"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// langOption is one entry of the language selector.
type langOption struct {
	Tag    string
	Name   string
	Active bool
}

// pageData is the chrome every page shares: the active language, its label
// set, and the selector options.
type pageData struct {
	Lang      string
	Labels    map[string]string
	Languages []langOption
	Page      string
}

// histBar is one prepared histogram bar in SVG coordinates.
type histBar struct {
	XPct      float64
	YPct      float64
	WidthPct  float64
	HeightPct float64
	Label     string
	Count     int
}

// resultView is the rendered correlation result section.
type resultView struct {
	Coefficient      float64
	PValue           float64
	SampleSize       int
	Method           string
	StrengthText     string
	SignificanceText string
	NarrativeHTML    template.HTML
	Scatter          plot.ScatterData
}

// analyzerView is the full Analyzer page model. Sections stay populated
// even when a later step fails, so an engine error never blanks the preview
// or the descriptive tables.
type analyzerView struct {
	PageData    pageData
	HasDataset  bool
	DatasetName string
	RowCount    int
	Headers     []string
	Preview     [][]string
	Summaries   []stats.ColumnSummary
	NumericCols []string
	FreqCol     string
	Frequency   []stats.FrequencyRow
	HistBars    []histBar
	Box         *boxView
	XPool       []string
	YPool       []string
	SelectedX   string
	SelectedY   string
	Method      string
	Result      *resultView
	Error       string
}

func (s *Server) newPageData(lang string, labels map[string]string, page string) pageData {
	var options []langOption
	for _, tag := range s.bundle.Languages() {
		name, err := s.bundle.DisplayName(tag)
		if err != nil {
			continue
		}
		options = append(options, langOption{Tag: tag, Name: name, Active: tag == lang})
	}
	return pageData{Lang: lang, Labels: labels, Languages: options, Page: page}
}

// buildAnalyzerView assembles everything the Analyzer page shows for the
// current dataset and the chosen frequency column.
func (s *Server) buildAnalyzerView(ctx context.Context, lang string, labels map[string]string, freqCol string) analyzerView {
	view := analyzerView{PageData: s.newPageData(lang, labels, "analyzer")}

	ds, ok := s.store.Current()
	if !ok {
		return view
	}

	view.HasDataset = true
	view.DatasetName = ds.Name
	view.RowCount = ds.RowCount
	view.Headers = ds.ColumnNames()
	view.Preview = ds.PreviewRows(5)
	view.NumericCols = ds.NumericColumnNames()
	view.XPool = ds.VariablePool(dataset.XVariables)
	view.YPool = ds.VariablePool(dataset.YVariables)

	view.Summaries = s.orderedSummaries(ctx, ds)

	if freqCol == "" && len(view.NumericCols) > 0 {
		freqCol = view.NumericCols[0]
	}
	if freqCol != "" {
		s.fillColumnCharts(&view, ds, freqCol)
	}
	return view
}

func (s *Server) orderedSummaries(ctx context.Context, ds *dataset.Dataset) []stats.ColumnSummary {
	byName, err := s.summarizer.Summarize(ctx, ds.NumericColumns())
	if err != nil {
		log.Printf("[UI] descriptive statistics failed: %v", err)
		return nil
	}
	var ordered []stats.ColumnSummary
	for _, name := range ds.NumericColumnNames() {
		if summary, ok := byName[name]; ok {
			ordered = append(ordered, summary)
		}
	}
	return ordered
}

func (s *Server) fillColumnCharts(view *analyzerView, ds *dataset.Dataset, freqCol string) {
	col, err := ds.Numeric(freqCol)
	if err != nil {
		log.Printf("[UI] frequency column %q unavailable: %v", freqCol, err)
		return
	}
	view.FreqCol = col.Name
	view.Frequency = s.frequency.FrequencyTable(col)

	hist, err := plot.Histogram(col.Values, plot.DefaultHistogramBins)
	if err == nil {
		view.HistBars = histogramBars(hist)
	}

	box, err := plot.BoxPlot(col.Values)
	if err == nil {
		view.Box = newBoxView(box)
	}
}

// boxView flattens BoxPlotData into ready-to-draw SVG geometry.
type boxView struct {
	Data        plot.BoxPlotData
	LowPct      float64
	Q1Pct       float64
	MedianPct   float64
	Q3Pct       float64
	HighPct     float64
	BoxWidthPct float64
	OutlierPcts []float64
}

func newBoxView(box plot.BoxPlotData) *boxView {
	return &boxView{
		Data:        box,
		LowPct:      box.Positions.WhiskerLowPct,
		Q1Pct:       box.Positions.Q1Pct,
		MedianPct:   box.Positions.MedianPct,
		Q3Pct:       box.Positions.Q3Pct,
		HighPct:     box.Positions.WhiskerHighPct,
		BoxWidthPct: box.Positions.Q3Pct - box.Positions.Q1Pct,
		OutlierPcts: box.Positions.OutlierPcts,
	}
}

// histogramBars lays the bins out across a 0-100 SVG axis.
func histogramBars(hist plot.HistogramData) []histBar {
	n := len(hist.Bins)
	if n == 0 {
		return nil
	}
	width := 100.0 / float64(n)
	bars := make([]histBar, n)
	for i, bin := range hist.Bins {
		// Reserve a sliver between bars so adjacent bins stay readable.
		bars[i] = histBar{
			XPct:      float64(i)*width + width*0.05,
			WidthPct:  width * 0.9,
			HeightPct: bin.HeightPct,
			YPct:      100 - bin.HeightPct,
			Label:     bin.Label,
			Count:     bin.Count,
		}
	}
	return bars
}

// mdToHTML renders localized markdown (home blurb, result narrative) to
// safe-to-embed HTML.
func mdToHTML(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(src))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.Render(doc, renderer))
}
