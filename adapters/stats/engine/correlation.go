package engine

import (
	"math"

	"surveylens/domain/core"
	"surveylens/domain/dataset"
	"surveylens/domain/stats"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Engine computes correlation coefficients with their two-sided p-values
// and classifies the result. It is stateless apart from the configured
// significance level; every call is independent and idempotent.
type Engine struct {
	alpha float64
}

// New creates an engine with the default significance level of 0.05.
func New() *Engine {
	return NewWithAlpha(DefaultAlpha)
}

// NewWithAlpha creates an engine with a custom significance level.
func NewWithAlpha(alpha float64) *Engine {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	return &Engine{alpha: alpha}
}

// Alpha returns the configured significance level.
func (e *Engine) Alpha() float64 {
	return e.alpha
}

// Compute runs the requested correlation on two equal-length finite-valued
// sequences. Fewer than 2 paired observations fail with
// core.ErrInsufficientData; a zero-variance side fails with
// core.ErrConstantInput rather than surfacing NaN to the caller.
func (e *Engine) Compute(x, y dataset.NumericColumn, method stats.Method) (stats.CorrelationResult, error) {
	if len(x.Values) != len(y.Values) {
		return stats.CorrelationResult{}, core.NewSelectionError("x and y must have equal length")
	}
	n := len(x.Values)
	if n < 2 {
		return stats.CorrelationResult{}, core.NewInsufficientDataError(n)
	}
	if isConstant(x.Values) {
		return stats.CorrelationResult{}, core.NewConstantInputError(x.Name)
	}
	if isConstant(y.Values) {
		return stats.CorrelationResult{}, core.NewConstantInputError(y.Name)
	}

	var r float64
	switch method {
	case stats.MethodPearson:
		r = stat.Correlation(x.Values, y.Values, nil)
	case stats.MethodSpearman:
		r = stat.Correlation(averageRanks(x.Values), averageRanks(y.Values), nil)
	default:
		return stats.CorrelationResult{}, core.ErrUnknownMethod
	}

	// Guard against floating point drift past the closed interval.
	r = clamp(r, -1, 1)

	p := correlationPValue(r, n)

	return stats.CorrelationResult{
		VariableX:    x.Name,
		VariableY:    y.Name,
		Method:       method,
		Coefficient:  r,
		PValue:       p,
		SampleSize:   n,
		Strength:     ClassifyStrength(r),
		Significance: ClassifySignificance(p, e.alpha),
	}, nil
}

// correlationPValue computes the two-sided p-value for a correlation
// coefficient under the null hypothesis of no association, via the
// t = r*sqrt((n-2)/(1-r^2)) transform with n-2 degrees of freedom.
func correlationPValue(r float64, n int) float64 {
	if n < 3 {
		// With one degree of freedom short, the t transform is undefined;
		// report no evidence against the null.
		return 1.0
	}
	if 1-r*r <= 0 {
		// Perfect correlation: the t statistic diverges.
		return 0.0
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	p := 2 * (1 - tDist.CDF(math.Abs(t)))
	return clamp(p, 0, 1)
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
