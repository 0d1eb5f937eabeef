package engine

import (
	"fmt"
	"math"
	"sort"

	"salestat/domain/table"
)

// Quantile computes the p-th quantile (0 <= p <= 1) using linear
// interpolation between order statistics, the conventional definition:
// h = (n-1)p, interpolating between the floor and ceiling order statistics.
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("quantile of empty sequence")
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("quantile fraction %v outside [0,1]", p)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}

// IQRBounds returns the outlier fences for a column:
// low = Q1 - 1.5*IQR, high = Q3 + 1.5*IQR. A zero-variance column
// collapses both bounds to Q1.
func IQRBounds(col table.Column) (low, high float64, err error) {
	q1, err := Quantile(col.Values, 0.25)
	if err != nil {
		return 0, 0, err
	}
	q3, err := Quantile(col.Values, 0.75)
	if err != nil {
		return 0, 0, err
	}
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr, nil
}

// FilterOutliers partitions a column into its raw values and the subset
// inside the IQR fences. The bounds come from the missing-dropped column,
// but the filter re-walks the table rows (mirroring row-level filtering)
// so filtered values keep their source row indices. Bounds are inclusive;
// filtering only removes values, never transforms them.
func (e *Engine) FilterOutliers(name string) (raw, filtered table.Column, err error) {
	raw, err = e.table.Extract(name)
	if err != nil {
		return table.Column{}, table.Column{}, err
	}

	low, high, err := IQRBounds(raw)
	if err != nil {
		return table.Column{}, table.Column{}, err
	}

	filtered = table.Column{Name: name}
	for row := 0; row < e.table.RowCount(); row++ {
		v, ok, err := e.table.Number(name, row)
		if err != nil {
			return table.Column{}, table.Column{}, err
		}
		if !ok || v < low || v > high {
			continue
		}
		filtered.Values = append(filtered.Values, v)
		filtered.Rows = append(filtered.Rows, row)
	}
	return raw, filtered, nil
}
