package engine

import (
	"fmt"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"salestat/domain/stats"
)

// kolmogorovSmirnov runs the one-sample KS test against a normal
// distribution parameterized by the sample's own mean and (n-1) standard
// deviation. Estimating the reference parameters from the sample biases
// the test toward accepting normality; that is the established behavior
// of this analysis and is preserved, not corrected.
func kolmogorovSmirnov(data []float64) (stats.TestResult, error) {
	n := len(data)
	if n < 2 {
		return stats.TestResult{}, fmt.Errorf("kolmogorov-smirnov requires at least 2 values, got %d", n)
	}

	mean, err := mstats.Mean(data)
	if err != nil {
		return stats.TestResult{}, err
	}
	sd, err := mstats.StandardDeviationSample(data)
	if err != nil {
		return stats.TestResult{}, err
	}
	if sd == 0 {
		return stats.TestResult{}, fmt.Errorf("kolmogorov-smirnov undefined: sample standard deviation is zero")
	}

	ref := distuv.Normal{Mu: mean, Sigma: sd}

	x := make([]float64, n)
	copy(x, data)
	sort.Float64s(x)

	// D = sup |F_n - F| via the one-sided suprema over the sorted sample
	d := 0.0
	fn := float64(n)
	for i, v := range x {
		cdf := ref.CDF(v)
		dPlus := float64(i+1)/fn - cdf
		dMinus := cdf - float64(i)/fn
		if dPlus > d {
			d = dPlus
		}
		if dMinus > d {
			d = dMinus
		}
	}

	// Asymptotic Kolmogorov distribution with the Stephens small-sample
	// correction to the effective sqrt(n)
	sqrtN := math.Sqrt(fn)
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	return stats.TestResult{
		Statistic:  d,
		PValue:     kolmogorovSurvival(lambda),
		Method:     stats.KolmogorovSmirnov,
		SampleSize: n,
	}, nil
}

// kolmogorovSurvival evaluates Q(lambda) = 2 * sum_{k>=1} (-1)^{k-1}
// exp(-2 k^2 lambda^2), the upper tail of the Kolmogorov distribution.
func kolmogorovSurvival(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}

	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2 * float64(k*k) * lambda * lambda)
		sum += sign * term
		if term < 1e-12 {
			break
		}
		sign = -sign
	}

	p := 2 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
