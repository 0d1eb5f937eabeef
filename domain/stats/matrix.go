package stats

import (
	"fmt"
)

// CorrelationMatrix is a square pairwise Pearson correlation matrix over an
// ordered set of columns. Symmetric, with exactly 1.0 on the diagonal.
// Full precision is retained internally; Render applies the two-decimal
// display contract.
type CorrelationMatrix struct {
	columns []string
	index   map[string]int
	values  [][]float64
}

// NewCorrelationMatrix builds a matrix from ordered columns and row-major
// values. The value layout must be square and match the column count.
func NewCorrelationMatrix(columns []string, values [][]float64) (*CorrelationMatrix, error) {
	if len(values) != len(columns) {
		return nil, fmt.Errorf("matrix has %d rows for %d columns", len(values), len(columns))
	}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if len(values[i]) != len(columns) {
			return nil, fmt.Errorf("matrix row %d has %d cells for %d columns", i, len(values[i]), len(columns))
		}
		index[c] = i
	}
	return &CorrelationMatrix{columns: columns, index: index, values: values}, nil
}

// Columns returns the ordered column names
func (m *CorrelationMatrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// At returns the coefficient at positional indices
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.values[i][j]
}

// Cell returns the coefficient for a named column pair
func (m *CorrelationMatrix) Cell(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.values[i][j], true
}

// Size returns the matrix dimension
func (m *CorrelationMatrix) Size() int {
	return len(m.columns)
}

// Render returns the matrix cells as two-decimal strings, the fixed
// precision any textual rendering of correlation values uses.
func (m *CorrelationMatrix) Render() [][]string {
	out := make([][]string, len(m.values))
	for i, row := range m.values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = FormatCorrelation(v)
		}
	}
	return out
}
