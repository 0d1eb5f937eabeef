package engine

import (
	"gonum.org/v1/gonum/stat"

	"salestat/domain/core"
	"salestat/domain/stats"
)

// FitTrendline fits an ordinary-least-squares line through the paired,
// row-aligned, non-missing (x, y) values of two columns and reports the
// coefficient of determination. Fails with core.ErrDegenerateInput when
// fewer than 2 pairs remain or x has zero variance (a vertical line has
// no defined slope). Callers that do not want a trendline simply never
// invoke this; the fit is computed on demand, not discarded.
func (e *Engine) FitTrendline(xName, yName string) (stats.FitLine, error) {
	xs, ys, err := e.table.ExtractPaired(xName, yName)
	if err != nil {
		return stats.FitLine{}, err
	}
	if len(xs) < 2 {
		return stats.FitLine{}, core.NewDegenerateInputError("fewer than 2 paired points")
	}
	if stat.Variance(xs, nil) == 0 {
		return stats.FitLine{}, core.NewDegenerateInputError("x column has zero variance")
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	return stats.WithRSquared(beta, alpha, r2), nil
}
