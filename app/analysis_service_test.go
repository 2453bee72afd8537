package app

import (
	"testing"

	"surveylens/adapters/stats/engine"
	"surveylens/domain/core"
	"surveylens/domain/dataset"
	"surveylens/domain/stats"
	"surveylens/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericCol(name string, values []float64, missing []bool) dataset.Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	cells := make([]string, len(values))
	return dataset.Column{
		Name:    name,
		Kind:    dataset.KindNumeric,
		Cells:   cells,
		Values:  values,
		Missing: missing,
	}
}

func surveyDataset() *dataset.Dataset {
	return &dataset.Dataset{
		ID:   core.NewDatasetID(),
		Name: "survey.csv",
		Columns: []dataset.Column{
			numericCol("x1", []float64{1, 2, 3, 4, 5}, nil),
			numericCol("y1", []float64{2, 4, 6, 8, 10}, nil),
			numericCol("age", []float64{30, 41, 25, 38, 29}, nil),
			{Name: "comment", Kind: dataset.KindText, Cells: []string{"a", "b", "c", "d", "e"}},
		},
		RowCount: 5,
	}
}

func newTestService() *AnalysisService {
	return NewAnalysisService(engine.New(), i18n.New(), dataset.XVariables, dataset.YVariables)
}

func TestRun_PerfectCorrelation(t *testing.T) {
	svc := newTestService()

	outcome, err := svc.Run(surveyDataset(), AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodPearson,
		Language: i18n.LangEnglish,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, outcome.Result.Coefficient, 1e-12)
	assert.Equal(t, 5, outcome.Result.SampleSize)
	assert.Equal(t, stats.StrengthVeryStrong, outcome.Result.Strength)
	assert.Equal(t, stats.Significant, outcome.Result.Significance)
	assert.Equal(t,
		"There is a **very strong relationship** between **x1** and **y1**, and the result is **significant** (p = 0.0000).",
		outcome.Result.Narrative)
	assert.Equal(t, "very strong", outcome.StrengthText)
	assert.Equal(t, "significant", outcome.SignificanceText)
	assert.Len(t, outcome.Scatter.Points, 5)
	assert.Equal(t, "x1", outcome.Scatter.XLabel)
}

func TestRun_IndonesianNarrative(t *testing.T) {
	svc := newTestService()

	outcome, err := svc.Run(surveyDataset(), AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodSpearman,
		Language: i18n.LangIndonesian,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Terdapat **hubungan sangat kuat** antara **x1** dan **y1** dengan nilai p **signifikan** (p = 0.0000).",
		outcome.Result.Narrative)
	assert.Equal(t, "sangat kuat", outcome.StrengthText)
}

func TestRun_PairwiseDeletion(t *testing.T) {
	ds := surveyDataset()
	// Knock out one x cell and a different y cell: two rows should drop.
	x, _ := ds.Column("x1")
	x.Missing[1] = true
	y, _ := ds.Column("y1")
	y.Missing[3] = true

	svc := newTestService()
	outcome, err := svc.Run(ds, AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodPearson,
		Language: i18n.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Result.SampleSize)
	assert.Len(t, outcome.Scatter.Points, 3)
}

func TestRun_SelectionErrors(t *testing.T) {
	svc := newTestService()
	ds := surveyDataset()

	tests := []struct {
		name string
		req  AnalysisRequest
	}{
		{"missing x", AnalysisRequest{YColumn: "y1", Method: stats.MethodPearson, Language: i18n.LangEnglish}},
		{"missing y", AnalysisRequest{XColumn: "x1", Method: stats.MethodPearson, Language: i18n.LangEnglish}},
		{"same column", AnalysisRequest{XColumn: "x1", YColumn: "x1", Method: stats.MethodPearson, Language: i18n.LangEnglish}},
		{"x outside pool", AnalysisRequest{XColumn: "age", YColumn: "y1", Method: stats.MethodPearson, Language: i18n.LangEnglish}},
		{"y outside pool", AnalysisRequest{XColumn: "x1", YColumn: "age", Method: stats.MethodPearson, Language: i18n.LangEnglish}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(ds, tt.req)
			assert.ErrorIs(t, err, core.ErrInvalidSelection)
		})
	}
}

func TestRun_ColumnMissingFromDataset(t *testing.T) {
	svc := newTestService()
	ds := &dataset.Dataset{
		ID:       core.NewDatasetID(),
		Name:     "partial.csv",
		Columns:  []dataset.Column{numericCol("x1", []float64{1, 2, 3}, nil)},
		RowCount: 3,
	}

	_, err := svc.Run(ds, AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodPearson,
		Language: i18n.LangEnglish,
	})
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestRun_NoDataset(t *testing.T) {
	svc := newTestService()

	_, err := svc.Run(nil, AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodPearson,
		Language: i18n.LangEnglish,
	})
	assert.ErrorIs(t, err, core.ErrDatasetNotFound)
}

func TestRun_UnknownMethod(t *testing.T) {
	svc := newTestService()

	_, err := svc.Run(surveyDataset(), AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.Method("kendall"),
		Language: i18n.LangEnglish,
	})
	assert.ErrorIs(t, err, core.ErrUnknownMethod)
}

func TestRun_UnsupportedLanguage(t *testing.T) {
	svc := newTestService()

	_, err := svc.Run(surveyDataset(), AnalysisRequest{
		XColumn:  "x1",
		YColumn:  "y1",
		Method:   stats.MethodPearson,
		Language: "fr",
	})
	assert.ErrorIs(t, err, core.ErrUnsupportedLanguage)
}
