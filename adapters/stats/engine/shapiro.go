package engine

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"salestat/domain/stats"
)

// Polynomial coefficients from Royston's AS R94 algorithm (Applied
// Statistics 44, 1995), lowest order first.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
)

func swPoly(c []float64, x float64) float64 {
	res := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		res = res*x + c[i]
	}
	return res
}

// shapiroWilk computes the Shapiro-Wilk W statistic and its p-value using
// Royston's approximation, valid for 3 <= n <= 5000. The null hypothesis
// is that the sample was drawn from a normal distribution.
func shapiroWilk(data []float64) (stats.TestResult, error) {
	n := len(data)
	if n < 3 {
		return stats.TestResult{}, fmt.Errorf("shapiro-wilk requires at least 3 values, got %d", n)
	}
	if n > 5000 {
		return stats.TestResult{}, fmt.Errorf("shapiro-wilk approximation is valid up to 5000 values, got %d", n)
	}

	x := make([]float64, n)
	copy(x, data)
	sort.Float64s(x)

	if x[n-1] == x[0] {
		return stats.TestResult{}, fmt.Errorf("shapiro-wilk undefined: all sample values are identical")
	}

	// Expected upper-half normal order statistics at Blom-style plotting
	// positions; m[0] pairs with the largest observation. The middle
	// position of an odd-length sample maps to probability 0.5 exactly,
	// so it contributes nothing and is excluded from both halves.
	n2 := n / 2
	m := make([]float64, n2)
	summ2 := 0.0
	for i := 0; i < n2; i++ {
		m[i] = distuv.UnitNormal.Quantile((float64(n-i) - 0.375) / (float64(n) + 0.25))
		summ2 += 2 * m[i] * m[i]
	}
	ssqrt := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))

	// Weights: polynomial corrections for the one (n <= 5) or two
	// (n > 5) extreme weights, remainder rescaled through phi.
	a := make([]float64, n2)
	var phi float64
	i1 := 1
	switch {
	case n == 3:
		a[0] = math.Sqrt(0.5)
		phi = 1
	case n > 5:
		a[0] = swPoly(swC1, rsn) + m[0]/ssqrt
		a[1] = swPoly(swC2, rsn) + m[1]/ssqrt
		i1 = 2
		phi = (summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a[0]*a[0] - 2*a[1]*a[1])
	default:
		a[0] = swPoly(swC1, rsn) + m[0]/ssqrt
		phi = (summ2 - 2*m[0]*m[0]) / (1 - 2*a[0]*a[0])
	}
	for i := i1; i < n2; i++ {
		a[i] = m[i] / math.Sqrt(phi)
	}

	// W = b^2 / sum((x - mean)^2) with b built from symmetric ranges
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	ssd := 0.0
	for _, v := range x {
		d := v - mean
		ssd += d * d
	}

	b := 0.0
	for i := 0; i < n2; i++ {
		b += a[i] * (x[n-1-i] - x[i])
	}

	w := (b * b) / ssd
	if w > 1 {
		w = 1
	}

	// Normalizing transformation of W to an approximate standard normal
	var p float64
	switch {
	case n == 3:
		p = (6 / math.Pi) * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
	case n <= 11:
		fn := float64(n)
		gamma := -2.273 + 0.459*fn
		wln := -math.Log(gamma - math.Log1p(-w))
		mu := swPoly(swC3, fn)
		sigma := math.Exp(swPoly(swC4, fn))
		p = distuv.UnitNormal.Survival((wln - mu) / sigma)
	default:
		lnn := math.Log(float64(n))
		wln := math.Log1p(-w)
		mu := swPoly(swC5, lnn)
		sigma := math.Exp(swPoly(swC6, lnn))
		p = distuv.UnitNormal.Survival((wln - mu) / sigma)
	}

	return stats.TestResult{
		Statistic:  w,
		PValue:     p,
		Method:     stats.ShapiroWilk,
		SampleSize: n,
	}, nil
}
