package engine

import (
	"math"
	"testing"

	"salestat/domain/core"
	"salestat/domain/table"
	"salestat/internal/testkit"
)

func TestCorrelate_PerfectCorrelation(t *testing.T) {
	e := engineOver(t, map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {2, 4, 6, 8},
	}, []string{"A", "B"})

	m, err := e.Correlate("A", "B")
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	if v, _ := m.Cell("A", "B"); math.Abs(v-1) > 1e-12 {
		t.Errorf("Correlation = %v, want 1", v)
	}
	if v, _ := m.Cell("A", "A"); v != 1 {
		t.Errorf("Diagonal = %v, want exactly 1.0", v)
	}
}

func TestCorrelate_SymmetricAndBounded(t *testing.T) {
	gen := testkit.NewDataGenerator(9)
	tbl, err := gen.SalesTable(200)
	if err != nil {
		t.Fatalf("failed to build sales fixture: %v", err)
	}
	e := New(tbl)

	m, err := e.Correlate(table.ColBoxesShipped, table.ColAmount)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			v := m.At(i, j)
			if v < -1 || v > 1 {
				t.Errorf("At(%d,%d) = %v outside [-1, 1]", i, j, v)
			}
			if v != m.At(j, i) {
				t.Errorf("Matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}

	// Boxes Shipped drives Amount in the fixture, so the off-diagonal
	// coefficient should be strongly positive.
	if v, _ := m.Cell(table.ColBoxesShipped, table.ColAmount); v < 0.5 {
		t.Errorf("Contract correlation = %v, want > 0.5", v)
	}
}

func TestCorrelate_CompleteCaseRows(t *testing.T) {
	// Rows 1 and 3 are incomplete; the remaining rows are perfectly
	// linear, so complete-case handling must give exactly 1.
	e := engineOver(t, map[string][]float64{
		"A": {1, math.NaN(), 3, 4, 5},
		"B": {10, 20, 30, math.NaN(), 50},
	}, []string{"A", "B"})

	m, err := e.Correlate("A", "B")
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if v, _ := m.Cell("A", "B"); math.Abs(v-1) > 1e-12 {
		t.Errorf("Correlation = %v, want 1 over complete rows", v)
	}
}

func TestCorrelate_Errors(t *testing.T) {
	e := engineOver(t, map[string][]float64{
		"A": {1, math.NaN()},
		"B": {2, 3},
	}, []string{"A", "B"})

	if _, err := e.Correlate("A", "B"); !core.IsInsufficientSample(err) {
		t.Errorf("Expected insufficient-sample error for 1 complete row, got %v", err)
	}
	if _, err := e.Correlate("A", "Z"); !core.IsUnknownColumn(err) {
		t.Errorf("Expected unknown-column error, got %v", err)
	}
}

func TestContractCorrelations_Memoized(t *testing.T) {
	gen := testkit.NewDataGenerator(10)
	tbl, err := gen.SalesTable(100)
	if err != nil {
		t.Fatalf("failed to build sales fixture: %v", err)
	}
	e := New(tbl)

	first, err := e.ContractCorrelations()
	if err != nil {
		t.Fatalf("ContractCorrelations failed: %v", err)
	}
	second, err := e.ContractCorrelations()
	if err != nil {
		t.Fatalf("ContractCorrelations failed: %v", err)
	}

	if first != second {
		t.Error("Expected the memoized matrix instance on repeated calls")
	}
	cols := first.Columns()
	if len(cols) != 2 || cols[0] != table.ColBoxesShipped || cols[1] != table.ColAmount {
		t.Errorf("Columns = %v, want the contract pair", cols)
	}
}
