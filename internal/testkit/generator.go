package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"salestat/domain/table"
)

// DataGenerator produces deterministic synthetic sales data for tests.
// Every draw comes from a single seeded source so fixtures never flake.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a generator with a fixed seed
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Normal draws n values from Normal(mean, sd)
func (g *DataGenerator) Normal(n int, mean, sd float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sd*g.rng.NormFloat64()
	}
	return out
}

// SkewedAmounts draws n right-skewed currency-like values, the shape OTC
// order amounts actually have (lognormal body, long upper tail).
func (g *DataGenerator) SkewedAmounts(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round(math.Exp(5.0+0.8*g.rng.NormFloat64())*100) / 100
	}
	return out
}

// SalesTable builds an in-memory sales table with the contract columns
// fully populated and a Product string column. Boxes Shipped correlates
// positively with Amount so regression fixtures have signal.
func (g *DataGenerator) SalesTable(rows int) (*table.Table, error) {
	products := []string{"Aspirin", "Ibuprofen", "Antacid", "Cough Syrup", "Vitamin C"}

	boxes := make([]table.Cell, rows)
	amounts := make([]table.Cell, rows)
	names := make([]table.Cell, rows)

	for i := 0; i < rows; i++ {
		shipped := float64(1 + g.rng.Intn(40))
		unitPrice := 8.0 + 4.0*g.rng.Float64()
		boxes[i] = table.NumberCell(shipped)
		amounts[i] = table.NumberCell(math.Round(shipped*unitPrice*100) / 100)
		names[i] = table.TextCell(products[g.rng.Intn(len(products))])
	}

	return table.New(
		[]table.Field{
			{Name: "Product", Type: table.TypeString},
			{Name: table.ColBoxesShipped, Type: table.TypeNumeric},
			{Name: table.ColAmount, Type: table.TypeNumeric},
		},
		[][]table.Cell{names, boxes, amounts},
	)
}

// NumericTable builds a table from named numeric columns, with math.NaN
// entries stored as missing cells. Columns must share a length.
func NumericTable(columns map[string][]float64, order []string) (*table.Table, error) {
	fields := make([]table.Field, 0, len(order))
	cells := make([][]table.Cell, 0, len(order))

	rows := -1
	for _, name := range order {
		values, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("column %q missing from fixture", name)
		}
		if rows == -1 {
			rows = len(values)
		} else if len(values) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(values), rows)
		}

		col := make([]table.Cell, len(values))
		for i, v := range values {
			if math.IsNaN(v) {
				col[i] = table.MissingCell()
			} else {
				col[i] = table.NumberCell(v)
			}
		}
		fields = append(fields, table.Field{Name: name, Type: table.TypeNumeric})
		cells = append(cells, col)
	}

	return table.New(fields, cells)
}
