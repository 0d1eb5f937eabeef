package engine

import (
	"gonum.org/v1/gonum/stat"

	"salestat/domain/core"
	"salestat/domain/stats"
	"salestat/domain/table"
)

// Correlate computes the pairwise Pearson correlation matrix over the
// given columns, using only rows where every requested column is
// non-missing (complete-case semantics). The result is symmetric with
// exactly 1.0 on the diagonal; full precision is retained.
func (e *Engine) Correlate(names ...string) (*stats.CorrelationMatrix, error) {
	cols, err := e.table.ExtractComplete(names...)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) < 2 {
		return nil, core.NewInsufficientSampleError(len(cols[0]), 2)
	}

	k := len(names)
	values := make([][]float64, k)
	for i := range values {
		values[i] = make([]float64, k)
		values[i][i] = 1.0
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r := stat.Correlation(cols[i], cols[j], nil)
			if r > 1 {
				r = 1
			} else if r < -1 {
				r = -1
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return stats.NewCorrelationMatrix(names, values)
}

// ContractCorrelations returns the correlation matrix over the fixed
// numeric contract columns. The table never changes within an engine's
// lifetime, so the matrix is computed once and shared read-only across
// callers.
func (e *Engine) ContractCorrelations() (*stats.CorrelationMatrix, error) {
	e.corrOnce.Do(func() {
		e.corr, e.corrErr = e.Correlate(table.ColBoxesShipped, table.ColAmount)
	})
	return e.corr, e.corrErr
}
