package stats

import (
	"fmt"
)

// Method identifies a normality goodness-of-fit test
type Method string

const (
	// ShapiroWilk tests the null hypothesis that a sample was drawn from a
	// normal distribution. Valid for small-to-moderate samples (n <= 5000).
	ShapiroWilk Method = "shapiro"

	// KolmogorovSmirnov is a one-sample test against a normal distribution
	// parameterized by the sample's own mean and standard deviation.
	KolmogorovSmirnov Method = "ks"

	// DAgostinoK2 is the omnibus test based on sample skewness and kurtosis.
	DAgostinoK2 Method = "dagostino"
)

// ParseMethod parses a test selector string into a Method
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case ShapiroWilk, KolmogorovSmirnov, DAgostinoK2:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown normality test %q", s)
}

// DisplayName returns the human-readable test name
func (m Method) DisplayName() string {
	switch m {
	case ShapiroWilk:
		return "Shapiro-Wilk"
	case KolmogorovSmirnov:
		return "Kolmogorov-Smirnov"
	case DAgostinoK2:
		return "D'Agostino K²"
	}
	return string(m)
}

// TestResult is the outcome of a single normality test invocation.
// Created per invocation, never persisted.
type TestResult struct {
	Statistic  float64 `json:"statistic"`
	PValue     float64 `json:"p_value"`
	Method     Method  `json:"method"`
	SampleSize int     `json:"sample_size"`
}

// String renders the result the way the reporting collaborator expects:
// statistic to 3 decimals, p-value to 4.
func (r TestResult) String() string {
	return fmt.Sprintf("%s: stat = %s, p = %s",
		r.Method.DisplayName(), FormatStatistic(r.Statistic), FormatPValue(r.PValue))
}

// FitLine is an ordinary-least-squares line. RSquared is nil when the
// coefficient of determination was not requested (Q-Q reference lines,
// trendline-off fits); absent means absent, never a numeric placeholder.
type FitLine struct {
	Slope     float64  `json:"slope"`
	Intercept float64  `json:"intercept"`
	RSquared  *float64 `json:"r_squared,omitempty"`
}

// NewFitLine builds a line without a coefficient of determination
func NewFitLine(slope, intercept float64) FitLine {
	return FitLine{Slope: slope, Intercept: intercept}
}

// WithRSquared builds a line carrying its coefficient of determination
func WithRSquared(slope, intercept, r2 float64) FitLine {
	return FitLine{Slope: slope, Intercept: intercept, RSquared: &r2}
}

// HasRSquared reports whether the coefficient of determination is present
func (f FitLine) HasRSquared() bool {
	return f.RSquared != nil
}

// At evaluates the line at x
func (f FitLine) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// TransformKind selects a monotonic column transform
type TransformKind string

const (
	// Log computes ln(1 + x), defined for x > -1
	Log TransformKind = "log"
	// Sqrt computes the non-negative square root, defined for x >= 0
	Sqrt TransformKind = "sqrt"
)

// ParseTransformKind parses a transform selector string
func ParseTransformKind(s string) (TransformKind, error) {
	switch TransformKind(s) {
	case Log, Sqrt:
		return TransformKind(s), nil
	}
	return "", fmt.Errorf("unknown transform %q", s)
}

// DisplayName returns the label used for transformed-column headings
func (k TransformKind) DisplayName(column string) string {
	switch k {
	case Log:
		return fmt.Sprintf("Log(1 + %s)", column)
	case Sqrt:
		return fmt.Sprintf("√%s", column)
	}
	return column
}

// QQPlot holds matched theoretical-vs-sample quantile pairs and the
// least-squares reference line for a normal probability plot. Purely
// descriptive; no p-value is produced here.
type QQPlot struct {
	Theoretical []float64 `json:"theoretical"`
	Sample      []float64 `json:"sample"`
	Reference   FitLine   `json:"reference"`
}

// ReferenceValues evaluates the reference line at each theoretical quantile
func (q QQPlot) ReferenceValues() []float64 {
	out := make([]float64, len(q.Theoretical))
	for i, t := range q.Theoretical {
		out[i] = q.Reference.At(t)
	}
	return out
}

// ColumnSummary is the five-number summary plus moments for one column,
// the companion numbers to a boxplot.
type ColumnSummary struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}
