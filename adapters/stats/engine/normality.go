package engine

import (
	"fmt"

	"salestat/domain/core"
	"salestat/domain/stats"
)

// TestNormality draws a bounded, deterministically seeded sample from the
// named column (missing values dropped) and runs the selected
// goodness-of-fit test against a normal distribution. Returns the test's
// native statistic and two-sided p-value. Fails with
// core.ErrInsufficientSample when fewer than 8 usable values remain.
func (e *Engine) TestNormality(name string, method stats.Method) (stats.TestResult, error) {
	col, err := e.table.Extract(name)
	if err != nil {
		return stats.TestResult{}, err
	}

	sample := Sample(col.Values, e.sampleSize, e.seed)
	if len(sample) < minTestSample {
		return stats.TestResult{}, core.NewInsufficientSampleError(len(sample), minTestSample)
	}

	switch method {
	case stats.ShapiroWilk:
		return shapiroWilk(sample)
	case stats.KolmogorovSmirnov:
		return kolmogorovSmirnov(sample)
	case stats.DAgostinoK2:
		return dagostinoK2(sample)
	}
	return stats.TestResult{}, fmt.Errorf("unknown normality test %q", method)
}

// SampleColumn exposes the normality tester's sample draw so the Q-Q
// transformer can plot exactly the values the test saw.
func (e *Engine) SampleColumn(name string) ([]float64, error) {
	col, err := e.table.Extract(name)
	if err != nil {
		return nil, err
	}
	return Sample(col.Values, e.sampleSize, e.seed), nil
}
