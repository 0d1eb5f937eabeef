package engine

import (
	"math"
	"testing"

	"salestat/domain/core"
	"salestat/domain/table"
	"salestat/internal/testkit"
)

func engineOver(t *testing.T, columns map[string][]float64, order []string, opts ...Option) *Engine {
	t.Helper()
	tbl, err := testkit.NumericTable(columns, order)
	if err != nil {
		t.Fatalf("failed to build fixture table: %v", err)
	}
	return New(tbl, opts...)
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	values := []float64{9, 10, 11, 12, 13, 1000}

	q1, err := Quantile(values, 0.25)
	if err != nil {
		t.Fatalf("Quantile failed: %v", err)
	}
	q3, err := Quantile(values, 0.75)
	if err != nil {
		t.Fatalf("Quantile failed: %v", err)
	}

	// h = (n-1)p with n=6: Q1 at h=1.25, Q3 at h=3.75.
	if math.Abs(q1-10.25) > 1e-12 {
		t.Errorf("Q1 = %v, want 10.25", q1)
	}
	if math.Abs(q3-12.75) > 1e-12 {
		t.Errorf("Q3 = %v, want 12.75", q3)
	}

	median, err := Quantile(values, 0.5)
	if err != nil {
		t.Fatalf("Quantile failed: %v", err)
	}
	if median != 11.5 {
		t.Errorf("Median = %v, want 11.5", median)
	}
}

func TestQuantile_Errors(t *testing.T) {
	if _, err := Quantile(nil, 0.5); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := Quantile([]float64{1, 2}, 1.5); err == nil {
		t.Error("Expected error for fraction outside [0,1]")
	}
}

func TestIQRBounds(t *testing.T) {
	col := table.FromValues("Amount", []float64{10, 12, 11, 1000, 9, 13})

	low, high, err := IQRBounds(col)
	if err != nil {
		t.Fatalf("IQRBounds failed: %v", err)
	}
	if math.Abs(low-6.5) > 1e-12 || math.Abs(high-16.5) > 1e-12 {
		t.Errorf("Bounds = (%v, %v), want (6.5, 16.5)", low, high)
	}
}

func TestFilterOutliers_ExcludesExtremeValue(t *testing.T) {
	e := engineOver(t, map[string][]float64{
		"Amount": {10, 12, 11, 1000, 9, 13},
	}, []string{"Amount"})

	raw, filtered, err := e.FilterOutliers("Amount")
	if err != nil {
		t.Fatalf("FilterOutliers failed: %v", err)
	}

	if raw.Len() != 6 {
		t.Errorf("Raw length = %d, want 6", raw.Len())
	}
	if filtered.Len() != 5 {
		t.Fatalf("Filtered length = %d, want 5", filtered.Len())
	}
	for i, v := range filtered.Values {
		if v == 1000 {
			t.Error("Extreme value survived the fences")
		}
		if filtered.Rows[i] == 3 {
			t.Error("Source row of the extreme value survived the fences")
		}
	}
}

func TestFilterOutliers_FilteredIsSubsetOfRaw(t *testing.T) {
	gen := testkit.NewDataGenerator(7)
	e := engineOver(t, map[string][]float64{
		"Amount": gen.SkewedAmounts(300),
	}, []string{"Amount"})

	raw, filtered, err := e.FilterOutliers("Amount")
	if err != nil {
		t.Fatalf("FilterOutliers failed: %v", err)
	}

	if filtered.Len() > raw.Len() {
		t.Fatalf("Filtered (%d) larger than raw (%d)", filtered.Len(), raw.Len())
	}
	rawByRow := make(map[int]float64, raw.Len())
	for i, row := range raw.Rows {
		rawByRow[row] = raw.Values[i]
	}
	for i, row := range filtered.Rows {
		v, ok := rawByRow[row]
		if !ok {
			t.Fatalf("Filtered row %d not present in raw", row)
		}
		if v != filtered.Values[i] {
			t.Errorf("Filtering transformed row %d: %v != %v", row, filtered.Values[i], v)
		}
	}
}

func TestFilterOutliers_ZeroVarianceKeepsEverything(t *testing.T) {
	e := engineOver(t, map[string][]float64{
		"Amount": {42, 42, 42, 42, 42},
	}, []string{"Amount"})

	raw, filtered, err := e.FilterOutliers("Amount")
	if err != nil {
		t.Fatalf("FilterOutliers failed: %v", err)
	}
	// Both fences collapse to the common value; inclusive bounds keep all.
	if filtered.Len() != raw.Len() {
		t.Errorf("Filtered length = %d, want %d", filtered.Len(), raw.Len())
	}
}

func TestFilterOutliers_UnknownColumn(t *testing.T) {
	e := engineOver(t, map[string][]float64{"Amount": {1, 2, 3}}, []string{"Amount"})

	_, _, err := e.FilterOutliers("Revenue")
	if !core.IsUnknownColumn(err) {
		t.Errorf("Expected unknown-column error, got %v", err)
	}
}
