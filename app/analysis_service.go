package app

import (
	"surveylens/domain/core"
	"surveylens/domain/dataset"
	"surveylens/domain/stats"
	"surveylens/internal/plot"
	"surveylens/ports"
)

// AnalysisRequest is one "run analysis" click: the selected columns, the
// method, and the UI language for the narrative.
type AnalysisRequest struct {
	XColumn  string
	YColumn  string
	Method   stats.Method
	Language string
}

// AnalysisOutcome is everything the result section of the page needs.
type AnalysisOutcome struct {
	Result           stats.CorrelationResult
	StrengthText     string
	SignificanceText string
	Scatter          plot.ScatterData
}

// AnalysisService orchestrates a correlation run: selection validation,
// pairwise missing-value deletion, the engine call, and narrative rendering.
type AnalysisService struct {
	engine    ports.CorrelationEngine
	localizer ports.Localizer
	xPool     dataset.NamePredicate
	yPool     dataset.NamePredicate
}

// NewAnalysisService wires the engine and localizer with the variable
// allow-lists for X and Y selection.
func NewAnalysisService(engine ports.CorrelationEngine, localizer ports.Localizer, xPool, yPool dataset.NamePredicate) *AnalysisService {
	return &AnalysisService{
		engine:    engine,
		localizer: localizer,
		xPool:     xPool,
		yPool:     yPool,
	}
}

// Run executes one analysis request against the uploaded dataset.
func (s *AnalysisService) Run(ds *dataset.Dataset, req AnalysisRequest) (*AnalysisOutcome, error) {
	if ds == nil {
		return nil, core.ErrDatasetNotFound
	}
	xCol, yCol, err := s.validateSelection(ds, req)
	if err != nil {
		return nil, err
	}

	// Pairwise deletion: only rows where both cells parsed go into the test.
	x, y := dataset.PairedNumeric(xCol, yCol)

	result, err := s.engine.Compute(x, y, req.Method)
	if err != nil {
		return nil, err
	}

	narrative, err := s.localizer.Narrative(req.Language, result.VariableX, result.VariableY,
		result.Strength, result.Significance, result.PValue)
	if err != nil {
		return nil, err
	}
	result.Narrative = narrative

	strengthText, err := s.localizer.StrengthLabel(req.Language, result.Strength)
	if err != nil {
		return nil, err
	}
	sigText, err := s.localizer.SignificanceLabel(req.Language, result.Significance)
	if err != nil {
		return nil, err
	}

	scatter, err := plot.Scatter(x.Values, y.Values, x.Name, y.Name)
	if err != nil {
		return nil, err
	}

	return &AnalysisOutcome{
		Result:           result,
		StrengthText:     strengthText,
		SignificanceText: sigText,
		Scatter:          scatter,
	}, nil
}

func (s *AnalysisService) validateSelection(ds *dataset.Dataset, req AnalysisRequest) (*dataset.Column, *dataset.Column, error) {
	if req.XColumn == "" || req.YColumn == "" {
		return nil, nil, core.NewSelectionError("both X and Y variables must be chosen")
	}
	if req.XColumn == req.YColumn {
		return nil, nil, core.NewSelectionError("X and Y must be different columns")
	}
	if !s.xPool(req.XColumn) {
		return nil, nil, core.NewSelectionError("column " + req.XColumn + " is not an X variable")
	}
	if !s.yPool(req.YColumn) {
		return nil, nil, core.NewSelectionError("column " + req.YColumn + " is not a Y variable")
	}

	xCol, err := numericColumn(ds, req.XColumn)
	if err != nil {
		return nil, nil, err
	}
	yCol, err := numericColumn(ds, req.YColumn)
	if err != nil {
		return nil, nil, err
	}
	return xCol, yCol, nil
}

func numericColumn(ds *dataset.Dataset, name string) (*dataset.Column, error) {
	col, ok := ds.Column(name)
	if !ok {
		return nil, core.ErrColumnNotFound
	}
	if col.Kind != dataset.KindNumeric {
		return nil, core.NewSelectionError("column " + col.Name + " is not numeric")
	}
	return col, nil
}
