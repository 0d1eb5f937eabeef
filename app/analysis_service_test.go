package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestat/adapters/stats/engine"
	"salestat/domain/stats"
	"salestat/internal/testkit"
)

func salesEngine(t *testing.T, rows int) *engine.Engine {
	t.Helper()
	gen := testkit.NewDataGenerator(11)
	tbl, err := gen.SalesTable(rows)
	require.NoError(t, err, "sales fixture")
	return engine.New(tbl)
}

func TestRun_FullBattery(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 200), nil)

	sel := DefaultSelection()
	sel.Trendline = true

	report, err := service.Run(context.Background(), sel)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Empty(t, report.Errors, "no analysis should fail on clean data")

	require.NotNil(t, report.Summary)
	assert.Equal(t, 200, report.Summary.Count)

	require.NotNil(t, report.Outliers)
	assert.LessOrEqual(t, report.Outliers.Filtered.Len(), report.Outliers.Raw.Len())

	require.NotNil(t, report.Normality)
	assert.Equal(t, stats.ShapiroWilk, report.Normality.Method)
	assert.Equal(t, 200, report.Normality.SampleSize)

	require.NotNil(t, report.QQ)
	assert.Len(t, report.QQ.Sample, 200)

	require.NotNil(t, report.Transformed)
	assert.Equal(t, "Log(1 + Amount)", report.Transformed.Name)
	assert.GreaterOrEqual(t, report.Bins, 15)
	assert.LessOrEqual(t, report.Bins, 40)

	require.NotNil(t, report.Trend)
	require.True(t, report.Trend.HasRSquared())
	assert.GreaterOrEqual(t, *report.Trend.RSquared, 0.0)
	assert.LessOrEqual(t, *report.Trend.RSquared, 1.0)

	require.NotNil(t, report.Correlation)
	assert.Equal(t, 2, report.Correlation.Size())
}

func TestRun_TrendlineOffSkipsFit(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 100), nil)

	report, err := service.Run(context.Background(), DefaultSelection())
	require.NoError(t, err)

	assert.Nil(t, report.Trend, "trendline must not be computed when not requested")
	assert.NotContains(t, report.Errors, "trend")
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 100), nil)

	sel := DefaultSelection()
	sel.NormalityColumn = "Revenue" // not in the schema

	report, err := service.Run(context.Background(), sel)
	require.NoError(t, err, "a failed analysis must not fail the battery")

	assert.Nil(t, report.Normality)
	assert.Nil(t, report.QQ)
	assert.Contains(t, report.Errors, "normality")

	// Siblings still ran to completion.
	assert.NotNil(t, report.Summary)
	assert.NotNil(t, report.Outliers)
	assert.NotNil(t, report.Transformed)
	assert.NotNil(t, report.Correlation)
}

func TestRun_MultipleIndependentFailures(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 100), nil)

	sel := DefaultSelection()
	sel.BoxplotFeature = "Revenue"
	sel.TransformColumn = "Margin"

	report, err := service.Run(context.Background(), sel)
	require.NoError(t, err)

	assert.Contains(t, report.Errors, "summary")
	assert.Contains(t, report.Errors, "transform")
	assert.NotNil(t, report.Normality)
	assert.NotNil(t, report.Correlation)
}

func TestRun_CancelledContext(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 100), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Run(ctx, DefaultSelection())
	assert.Error(t, err, "a cancelled context is a battery-level failure")
}

func TestRun_ReportsAreIndependent(t *testing.T) {
	service := NewAnalysisService(salesEngine(t, 100), nil)

	first, err := service.Run(context.Background(), DefaultSelection())
	require.NoError(t, err)
	second, err := service.Run(context.Background(), DefaultSelection())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "each battery gets its own report identity")
	// Same engine, same seed: statistical content is reproducible.
	require.NotNil(t, first.Normality)
	require.NotNil(t, second.Normality)
	assert.Equal(t, first.Normality.Statistic, second.Normality.Statistic)
	assert.Equal(t, first.Normality.PValue, second.Normality.PValue)
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()

	assert.Equal(t, "Amount", sel.BoxplotFeature)
	assert.Equal(t, stats.ShapiroWilk, sel.NormalityMethod)
	assert.Equal(t, stats.Log, sel.TransformKind)
	assert.Equal(t, "Boxes Shipped", sel.ScatterX)
	assert.Equal(t, "Amount", sel.ScatterY)
	assert.False(t, sel.Trendline)
}
