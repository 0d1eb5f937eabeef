package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"salestat/adapters/excel"
	statengine "salestat/adapters/stats/engine"
	"salestat/app"
	"salestat/domain/stats"
	"salestat/internal"
	"salestat/internal/config"
)

func main() {
	// Optional .env for local runs; real environments set variables directly
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the sales statistical analysis battery",
		Long: `Loads the sales dataset named by DATA_FILE (.xlsx or .csv) and runs
outlier filtering, a normality test, a Q-Q transform, a monotonic
transform, optional OLS regression and the correlation matrix.`,
	}
	rootCmd.AddCommand(newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		feature      string
		normColumn   string
		normTest     string
		transColumn  string
		transKind    string
		scatterX     string
		scatterY     string
		trendline    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one analysis battery and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.NewDefaultLogger()

			method, err := stats.ParseMethod(normTest)
			if err != nil {
				return err
			}
			kind, err := stats.ParseTransformKind(transKind)
			if err != nil {
				return err
			}

			sel := app.DefaultSelection()
			sel.BoxplotFeature = feature
			sel.NormalityColumn = normColumn
			sel.NormalityMethod = method
			sel.TransformColumn = transColumn
			sel.TransformKind = kind
			sel.ScatterX = scatterX
			sel.ScatterY = scatterY
			sel.Trendline = trendline

			return runBattery(cmd.Context(), cfg, logger, sel)
		},
	}

	cmd.Flags().StringVar(&feature, "feature", "Amount", "Column for the boxplot summary")
	cmd.Flags().StringVar(&normColumn, "normality-column", "Amount", "Column for the normality test")
	cmd.Flags().StringVar(&normTest, "test", "shapiro", "Normality test: shapiro, ks or dagostino")
	cmd.Flags().StringVar(&transColumn, "transform-column", "Amount", "Column to transform")
	cmd.Flags().StringVar(&transKind, "transform", "log", "Transform: log or sqrt")
	cmd.Flags().StringVar(&scatterX, "x", "Boxes Shipped", "Scatter x column")
	cmd.Flags().StringVar(&scatterY, "y", "Amount", "Scatter y column")
	cmd.Flags().BoolVar(&trendline, "trendline", false, "Fit an OLS trendline and report R²")

	return cmd
}

func runBattery(ctx context.Context, cfg *config.Config, logger *internal.Logger, sel app.Selection) error {
	reader := excel.NewDataReader(excel.NewReaderConfig(cfg.Data.FilePath))
	tbl, err := reader.ReadTable()
	if err != nil {
		return err
	}
	logger.Info("loaded %s (%d columns, %d rows)", cfg.Data.FilePath, tbl.ColumnCount(), tbl.RowCount())

	eng := statengine.New(tbl,
		statengine.WithSampleSize(cfg.Engine.SampleSize),
		statengine.WithSeed(cfg.Engine.Seed),
	)
	service := app.NewAnalysisService(eng, logger)

	report, err := service.Run(ctx, sel)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

// printReport renders the report with the display contracts the
// dashboard used: currency sums to 0 decimals, statistics to 3 and
// p-values to 4 decimals, correlation cells to 2.
func printReport(r *app.Report) {
	fmt.Printf("Report %s\n\n", r.ID)

	if r.Summary != nil {
		s := r.Summary
		fmt.Printf("%s: n=%d mean=%s sd=%s min=%s q1=%s median=%s q3=%s max=%s\n",
			s.Name, s.Count,
			stats.FormatStatistic(s.Mean), stats.FormatStatistic(s.StdDev),
			stats.FormatStatistic(s.Min), stats.FormatStatistic(s.Q1),
			stats.FormatStatistic(s.Median), stats.FormatStatistic(s.Q3),
			stats.FormatStatistic(s.Max))

		total := 0.0
		for _, v := range r.Outliers.Raw.Values {
			total += v
		}
		fmt.Printf("%s total: %s\n", s.Name, stats.FormatCurrency(total))
	}

	if r.Outliers != nil {
		fmt.Printf("Outlier filter: %d raw values, %d kept after IQR fences\n",
			r.Outliers.Raw.Len(), r.Outliers.Filtered.Len())
	}

	if r.Normality != nil {
		fmt.Printf("Normality (n=%d): %s\n", r.Normality.SampleSize, r.Normality)
	}

	if r.Transformed != nil {
		fmt.Printf("Transform: %s (%d values, %d histogram bins)\n",
			r.Transformed.Name, r.Transformed.Len(), r.Bins)
	}

	if r.Trend != nil {
		fmt.Printf("Trendline: slope=%s intercept=%s",
			stats.FormatStatistic(r.Trend.Slope), stats.FormatStatistic(r.Trend.Intercept))
		if r.Trend.HasRSquared() {
			fmt.Printf(" %s", stats.FormatRSquared(*r.Trend.RSquared))
		}
		fmt.Println()
	} else if r.Selection.Trendline {
		fmt.Println("Trendline: unavailable")
	}

	if r.Correlation != nil {
		cols := r.Correlation.Columns()
		cells := r.Correlation.Render()
		fmt.Printf("Correlation matrix (%s):\n", strings.Join(cols, ", "))
		for i, row := range cells {
			fmt.Printf("  %-14s %s\n", cols[i], strings.Join(row, "  "))
		}
	}

	if len(r.Errors) > 0 {
		fmt.Println("\nFailed analyses:")
		for name, msg := range r.Errors {
			fmt.Printf("  %s: %s\n", name, msg)
		}
	}
}
