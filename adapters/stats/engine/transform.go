package engine

import (
	"fmt"
	"math"

	"salestat/domain/core"
	"salestat/domain/stats"
	"salestat/domain/table"
)

// Transform applies a monotonic transform elementwise to a column.
// Log computes ln(1 + x), defined for x > -1; Sqrt the non-negative
// square root, defined for x >= 0. A value outside the domain fails the
// whole transform with core.ErrDomain naming the offending value. Both
// transforms are strictly increasing on their domains, so distribution
// shape comparisons downstream remain valid.
func Transform(col table.Column, kind stats.TransformKind) (table.Column, error) {
	out := table.Column{
		Name:   kind.DisplayName(col.Name),
		Values: make([]float64, len(col.Values)),
		Rows:   make([]int, len(col.Rows)),
	}
	copy(out.Rows, col.Rows)

	for i, v := range col.Values {
		switch kind {
		case stats.Log:
			if v <= -1 {
				return table.Column{}, core.NewDomainError("log(1+x)", v)
			}
			out.Values[i] = math.Log1p(v)
		case stats.Sqrt:
			if v < 0 {
				return table.Column{}, core.NewDomainError("sqrt(x)", v)
			}
			out.Values[i] = math.Sqrt(v)
		default:
			return table.Column{}, fmt.Errorf("unknown transform %q", kind)
		}
	}
	return out, nil
}

// TransformColumn extracts the named column and applies the transform
func (e *Engine) TransformColumn(name string, kind stats.TransformKind) (table.Column, error) {
	col, err := e.table.Extract(name)
	if err != nil {
		return table.Column{}, err
	}
	return Transform(col, kind)
}

// HistogramBins is the bin-count heuristic for a transformed column's
// histogram: half the distinct values, clamped to [15, 40]. Display
// concern, but derived from the transform output's cardinality.
func HistogramBins(col table.Column) int {
	distinct := make(map[float64]struct{}, len(col.Values))
	for _, v := range col.Values {
		distinct[v] = struct{}{}
	}

	bins := len(distinct) / 2
	if bins < 15 {
		return 15
	}
	if bins > 40 {
		return 40
	}
	return bins
}
