package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"salestat/domain/stats"
)

// dagostinoK2 runs D'Agostino's K² omnibus test: the squared normalized
// skewness and kurtosis z-scores summed into a statistic that is chi-square
// distributed with 2 degrees of freedom under normality.
func dagostinoK2(data []float64) (stats.TestResult, error) {
	n := len(data)
	if n < 8 {
		return stats.TestResult{}, fmt.Errorf("d'agostino k² requires at least 8 values, got %d", n)
	}

	m2, m3, m4, err := centralMoments(data)
	if err != nil {
		return stats.TestResult{}, err
	}

	z1 := skewnessZ(m2, m3, n)
	z2 := kurtosisZ(m2, m4, n)
	k2 := z1*z1 + z2*z2

	chi2 := distuv.ChiSquared{K: 2}
	return stats.TestResult{
		Statistic:  k2,
		PValue:     chi2.Survival(k2),
		Method:     stats.DAgostinoK2,
		SampleSize: n,
	}, nil
}

// centralMoments returns the second, third and fourth central sample
// moments (biased, divide-by-n form, as the classical test statistics use)
func centralMoments(data []float64) (m2, m3, m4 float64, err error) {
	n := float64(len(data))

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= n

	for _, v := range data {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	if m2 == 0 {
		return 0, 0, 0, fmt.Errorf("d'agostino k² undefined: sample variance is zero")
	}
	return m2, m3, m4, nil
}

// skewnessZ normalizes sample skewness to an approximate standard normal
// (D'Agostino 1970)
func skewnessZ(m2, m3 float64, size int) float64 {
	n := float64(size)
	b1 := m3 / math.Pow(m2, 1.5)

	y := b1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))

	if y == 0 {
		return 0
	}
	t := y / alpha
	return delta * math.Log(t+math.Sqrt(t*t+1))
}

// kurtosisZ normalizes sample kurtosis via the Anscombe-Glynn
// transformation
func kurtosisZ(m2, m4 float64, size int) float64 {
	n := float64(size)
	b2 := m4 / (m2 * m2)

	meanB2 := 3 * (n - 1) / (n + 1)
	varB2 := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	xs := (b2 - meanB2) / math.Sqrt(varB2)

	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))

	term1 := 1 - 2/(9*a)
	denom := 1 + xs*math.Sqrt(2/(a-4))

	var term2 float64
	if denom == 0 {
		term2 = 0
	} else {
		frac := (1 - 2/a) / math.Abs(denom)
		term2 = math.Cbrt(frac)
		if denom < 0 {
			term2 = -term2
		}
	}

	return (term1 - term2) / math.Sqrt(2/(9*a))
}
