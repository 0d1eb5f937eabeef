package engine

import (
	mstats "github.com/montanaflynn/stats"

	"salestat/domain/core"
	"salestat/domain/stats"
)

// Summarize computes the five-number summary plus mean and standard
// deviation for a column, the companion numbers to its boxplot.
func (e *Engine) Summarize(name string) (stats.ColumnSummary, error) {
	col, err := e.table.Extract(name)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	if col.Len() < 2 {
		return stats.ColumnSummary{}, core.NewInsufficientSampleError(col.Len(), 2)
	}

	mean, err := mstats.Mean(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	sd, err := mstats.StandardDeviationSample(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	min, err := mstats.Min(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	max, err := mstats.Max(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	median, err := mstats.Median(col.Values)
	if err != nil {
		return stats.ColumnSummary{}, err
	}

	// Quartiles use the same linear-interpolation rule as the outlier
	// fences so the boxplot and its whiskers agree.
	q1, err := Quantile(col.Values, 0.25)
	if err != nil {
		return stats.ColumnSummary{}, err
	}
	q3, err := Quantile(col.Values, 0.75)
	if err != nil {
		return stats.ColumnSummary{}, err
	}

	return stats.ColumnSummary{
		Name:   name,
		Count:  col.Len(),
		Mean:   mean,
		StdDev: sd,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
	}, nil
}
