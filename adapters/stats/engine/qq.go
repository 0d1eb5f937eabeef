package engine

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"salestat/domain/stats"
)

// QQPoints computes the normal probability plot for a sample: ordered
// theoretical quantiles (standard normal, at Filliben's order-statistic
// medians), the ascending sample quantiles, and the least-squares
// reference line through the quantile pairs. Purely descriptive; the
// reference line carries no coefficient of determination.
func QQPoints(sample []float64) (stats.QQPlot, error) {
	n := len(sample)
	if n < 2 {
		return stats.QQPlot{}, fmt.Errorf("q-q plot requires at least 2 values, got %d", n)
	}

	ordered := make([]float64, n)
	copy(ordered, sample)
	sort.Float64s(ordered)

	theoretical := make([]float64, n)
	for i := 0; i < n; i++ {
		theoretical[i] = distuv.UnitNormal.Quantile(fillibenMedian(i+1, n))
	}

	alpha, beta := stat.LinearRegression(theoretical, ordered, nil, false)

	return stats.QQPlot{
		Theoretical: theoretical,
		Sample:      ordered,
		Reference:   stats.NewFitLine(beta, alpha),
	}, nil
}

// fillibenMedian is Filliben's estimate of the i-th uniform order
// statistic median for a sample of size n
func fillibenMedian(i, n int) float64 {
	switch i {
	case 1:
		return 1 - fillibenMedian(n, n)
	case n:
		return math.Pow(0.5, 1/float64(n))
	default:
		return (float64(i) - 0.3175) / (float64(n) + 0.365)
	}
}

// QQColumn draws the column's deterministic normality sample and computes
// its probability plot, so the plot shows exactly the values the
// normality test consumed.
func (e *Engine) QQColumn(name string) (stats.QQPlot, error) {
	sample, err := e.SampleColumn(name)
	if err != nil {
		return stats.QQPlot{}, err
	}
	return QQPoints(sample)
}
