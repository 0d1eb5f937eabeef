package table

import (
	"fmt"
)

// Extract returns the named numeric column with missing values dropped.
// The table itself is left untouched; rows missing this column are simply
// not represented in the result. Fails with core.ErrUnknownColumn when the
// name is not in the schema.
func (t *Table) Extract(name string) (Column, error) {
	idx, field, err := t.column(name)
	if err != nil {
		return Column{}, err
	}
	if field.Type != TypeNumeric {
		return Column{}, fmt.Errorf("column %q is %s, not numeric", name, field.Type)
	}

	col := Column{Name: name}
	for row, cell := range t.cells[idx] {
		if cell.Missing {
			continue
		}
		col.Values = append(col.Values, cell.Number)
		col.Rows = append(col.Rows, row)
	}
	return col, nil
}

// ExtractPaired returns row-aligned (x, y) values using only rows where
// both columns are non-missing.
func (t *Table) ExtractPaired(xName, yName string) (xs, ys []float64, err error) {
	xi, xf, err := t.column(xName)
	if err != nil {
		return nil, nil, err
	}
	yi, yf, err := t.column(yName)
	if err != nil {
		return nil, nil, err
	}
	if xf.Type != TypeNumeric {
		return nil, nil, fmt.Errorf("column %q is %s, not numeric", xName, xf.Type)
	}
	if yf.Type != TypeNumeric {
		return nil, nil, fmt.Errorf("column %q is %s, not numeric", yName, yf.Type)
	}

	for row := 0; row < t.rows; row++ {
		xc, yc := t.cells[xi][row], t.cells[yi][row]
		if xc.Missing || yc.Missing {
			continue
		}
		xs = append(xs, xc.Number)
		ys = append(ys, yc.Number)
	}
	return xs, ys, nil
}

// ExtractComplete returns column-major, row-aligned values for the given
// columns using only rows where every requested column is non-missing
// (complete-case semantics, not column-wise independent dropping).
func (t *Table) ExtractComplete(names ...string) ([][]float64, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one column required")
	}

	idxs := make([]int, len(names))
	for i, name := range names {
		idx, field, err := t.column(name)
		if err != nil {
			return nil, err
		}
		if field.Type != TypeNumeric {
			return nil, fmt.Errorf("column %q is %s, not numeric", name, field.Type)
		}
		idxs[i] = idx
	}

	out := make([][]float64, len(names))
	for row := 0; row < t.rows; row++ {
		complete := true
		for _, idx := range idxs {
			if t.cells[idx][row].Missing {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for i, idx := range idxs {
			out[i] = append(out[i], t.cells[idx][row].Number)
		}
	}
	return out, nil
}

// Number returns the cell value at (name, row); ok is false when the cell
// is missing. Used by the outlier filter to mirror row-level filtering.
func (t *Table) Number(name string, row int) (float64, bool, error) {
	idx, field, err := t.column(name)
	if err != nil {
		return 0, false, err
	}
	if field.Type != TypeNumeric {
		return 0, false, fmt.Errorf("column %q is %s, not numeric", name, field.Type)
	}
	if row < 0 || row >= t.rows {
		return 0, false, fmt.Errorf("row %d out of range [0,%d)", row, t.rows)
	}
	cell := t.cells[idx][row]
	if cell.Missing {
		return 0, false, nil
	}
	return cell.Number, true, nil
}
