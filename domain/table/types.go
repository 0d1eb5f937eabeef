package table

import (
	"fmt"

	"salestat/domain/core"
)

// ColumnType classifies the values a column holds
type ColumnType string

const (
	TypeNumeric ColumnType = "numeric"
	TypeString  ColumnType = "string"
	TypeDate    ColumnType = "date"
)

// Contract columns every sales table must carry fully populated.
// These are fixed contract strings, not configuration.
const (
	ColBoxesShipped = "Boxes Shipped"
	ColAmount       = "Amount"
)

// Field describes a single column in the table schema
type Field struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Cell is one table cell. Missing marks blank or unparseable values;
// a missing cell carries no number or text.
type Cell struct {
	Number  float64
	Text    string
	Missing bool
}

// NumberCell builds a populated numeric cell
func NumberCell(v float64) Cell { return Cell{Number: v} }

// TextCell builds a populated text cell
func TextCell(s string) Cell { return Cell{Text: s} }

// MissingCell builds a missing cell
func MissingCell() Cell { return Cell{Missing: true} }

// Table is an immutable column-oriented collection of rows. Columns are
// homogeneous in type; rows keep their load order so paired extraction
// stays row-aligned. No engine component mutates a table after New.
type Table struct {
	fields []Field
	index  map[string]int
	cells  [][]Cell // cells[col][row]
	rows   int
}

// New builds a table from a schema and column-major cells. Every column
// must have the same row count.
func New(fields []Field, cells [][]Cell) (*Table, error) {
	if len(fields) != len(cells) {
		return nil, fmt.Errorf("schema has %d fields but %d columns supplied", len(fields), len(cells))
	}

	rows := 0
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has an empty name", i)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", f.Name)
		}
		index[f.Name] = i

		if i == 0 {
			rows = len(cells[i])
		} else if len(cells[i]) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", f.Name, len(cells[i]), rows)
		}
	}

	return &Table{
		fields: fields,
		index:  index,
		cells:  cells,
		rows:   rows,
	}, nil
}

// Schema returns a copy of the table's field list
func (t *Table) Schema() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// HasColumn reports whether the named column exists in the schema
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RowCount returns the number of rows in the table
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns in the table
func (t *Table) ColumnCount() int {
	return len(t.fields)
}

// Column is a named, ordered sequence of numeric values extracted from a
// table with missing entries removed. Rows holds the source row index of
// each value so callers can reason about row alignment.
type Column struct {
	Name   string
	Values []float64
	Rows   []int
}

// Len returns the number of usable values in the column
func (c Column) Len() int {
	return len(c.Values)
}

// FromValues builds a detached column, primarily for transforms and tests
func FromValues(name string, values []float64) Column {
	rows := make([]int, len(values))
	for i := range rows {
		rows[i] = i
	}
	return Column{Name: name, Values: values, Rows: rows}
}

func (t *Table) column(name string) (int, Field, error) {
	idx, ok := t.index[name]
	if !ok {
		return 0, Field{}, core.NewUnknownColumnError(name)
	}
	return idx, t.fields[idx], nil
}
