package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"salestat/adapters/stats/engine"
	"salestat/domain/core"
	"salestat/domain/stats"
	"salestat/domain/table"
	"salestat/internal"
)

// Selection is the dashboard's statistics-tab state expressed as explicit
// inputs: which columns to analyze, which test and transform to apply,
// and whether a trendline was requested.
type Selection struct {
	BoxplotFeature  string              `json:"boxplot_feature"`
	NormalityColumn string              `json:"normality_column"`
	NormalityMethod stats.Method        `json:"normality_method"`
	TransformColumn string              `json:"transform_column"`
	TransformKind   stats.TransformKind `json:"transform_kind"`
	ScatterX        string              `json:"scatter_x"`
	ScatterY        string              `json:"scatter_y"`
	Trendline       bool                `json:"trendline"`
}

// DefaultSelection mirrors the statistics tab's initial state
func DefaultSelection() Selection {
	return Selection{
		BoxplotFeature:  table.ColAmount,
		NormalityColumn: table.ColAmount,
		NormalityMethod: stats.ShapiroWilk,
		TransformColumn: table.ColAmount,
		TransformKind:   stats.Log,
		ScatterX:        table.ColBoxesShipped,
		ScatterY:        table.ColAmount,
		Trendline:       false,
	}
}

// OutlierSplit pairs a column's raw values with its IQR-filtered subset
type OutlierSplit struct {
	Raw      table.Column `json:"raw"`
	Filtered table.Column `json:"filtered"`
}

// Report is the complete output of one analysis battery. Sections are nil
// when their analysis failed; the diagnostic lives in Errors keyed by
// analysis name. Created per invocation, never persisted.
type Report struct {
	ID          core.ReportID            `json:"id"`
	GeneratedAt core.Timestamp           `json:"generated_at"`
	Selection   Selection                `json:"selection"`
	Summary     *stats.ColumnSummary     `json:"summary,omitempty"`
	Outliers    *OutlierSplit            `json:"outliers,omitempty"`
	Normality   *stats.TestResult        `json:"normality,omitempty"`
	QQ          *stats.QQPlot            `json:"qq,omitempty"`
	Transformed *table.Column            `json:"transformed,omitempty"`
	Bins        int                      `json:"bins,omitempty"`
	Trend       *stats.FitLine           `json:"trend,omitempty"`
	Correlation *stats.CorrelationMatrix `json:"-"`
	Errors      map[string]string        `json:"errors,omitempty"`
	RuntimeMs   int64                    `json:"runtime_ms"`
}

// AnalysisService runs the full statistical battery for a selection.
// The analyses are independent of each other, so they run concurrently;
// a failure in one never aborts the others, it is captured as a short
// diagnostic instead. Each normality analysis performs its own sample
// draw, so concurrent batteries never share sampling state.
type AnalysisService struct {
	engine *engine.Engine
	logger *internal.Logger
}

// NewAnalysisService creates an analysis service over one engine
func NewAnalysisService(eng *engine.Engine, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{engine: eng, logger: logger}
}

// Run executes every analysis the selection calls for and returns the
// assembled report. The returned error covers battery-level failures
// only (context cancellation); per-analysis failures land in
// Report.Errors.
func (s *AnalysisService) Run(ctx context.Context, sel Selection) (*Report, error) {
	start := time.Now()
	report := &Report{
		ID:          core.ReportID(core.NewID()),
		GeneratedAt: core.Now(),
		Selection:   sel,
		Errors:      make(map[string]string),
	}

	var mu sync.Mutex
	fail := func(analysis string, err error) {
		s.logger.Warn("analysis %s failed: %v", analysis, err)
		mu.Lock()
		report.Errors[analysis] = err.Error()
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		summary, err := s.engine.Summarize(sel.BoxplotFeature)
		if err != nil {
			fail("summary", err)
			return nil
		}
		raw, filtered, err := s.engine.FilterOutliers(sel.BoxplotFeature)
		if err != nil {
			fail("outliers", err)
			return nil
		}
		mu.Lock()
		report.Summary = &summary
		report.Outliers = &OutlierSplit{Raw: raw, Filtered: filtered}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := s.engine.TestNormality(sel.NormalityColumn, sel.NormalityMethod)
		if err != nil {
			fail("normality", err)
			return nil
		}
		qq, err := s.engine.QQColumn(sel.NormalityColumn)
		if err != nil {
			fail("qq", err)
			return nil
		}
		mu.Lock()
		report.Normality = &result
		report.QQ = &qq
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		transformed, err := s.engine.TransformColumn(sel.TransformColumn, sel.TransformKind)
		if err != nil {
			fail("transform", err)
			return nil
		}
		bins := engine.HistogramBins(transformed)
		mu.Lock()
		report.Transformed = &transformed
		report.Bins = bins
		mu.Unlock()
		return nil
	})

	// The trendline is on-demand: when the toggle is off the fit is
	// skipped entirely, not computed and discarded.
	if sel.Trendline {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := s.engine.FitTrendline(sel.ScatterX, sel.ScatterY)
			if err != nil {
				fail("trend", err)
				return nil
			}
			mu.Lock()
			report.Trend = &line
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		matrix, err := s.engine.ContractCorrelations()
		if err != nil {
			fail("correlation", err)
			return nil
		}
		mu.Lock()
		report.Correlation = matrix
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.RuntimeMs = time.Since(start).Milliseconds()
	s.logger.Info("analysis battery %s finished in %dms (%d failures)",
		report.ID, report.RuntimeMs, len(report.Errors))
	return report, nil
}
