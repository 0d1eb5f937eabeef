package engine

import (
	"testing"

	"salestat/internal/testkit"
)

func TestSample_PassThroughWhenSmall(t *testing.T) {
	values := []float64{3, 1, 2}

	got := Sample(values, 1000, 42)
	if len(got) != 3 {
		t.Fatalf("Expected all 3 values, got %d", len(got))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("Order changed at %d: %v != %v", i, got[i], values[i])
		}
	}

	got[0] = 99
	if values[0] == 99 {
		t.Error("Sample must copy, not alias, the input")
	}
}

func TestSample_Deterministic(t *testing.T) {
	gen := testkit.NewDataGenerator(1)
	values := gen.Normal(2500, 100, 15)

	first := Sample(values, 1000, 42)
	second := Sample(values, 1000, 42)

	if len(first) != 1000 || len(second) != 1000 {
		t.Fatalf("Draw sizes = %d/%d, want 1000", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Draws diverge at index %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestSample_SeedChangesDraw(t *testing.T) {
	gen := testkit.NewDataGenerator(1)
	values := gen.Normal(2500, 100, 15)

	a := Sample(values, 1000, 42)
	b := Sample(values, 1000, 43)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced an identical draw")
	}
}

func TestSample_WithoutReplacement(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i)
	}

	got := Sample(values, 20, 42)
	seen := make(map[float64]bool, len(got))
	for _, v := range got {
		if seen[v] {
			t.Fatalf("Value %v drawn twice", v)
		}
		seen[v] = true
	}
}
