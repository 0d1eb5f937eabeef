package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display contracts the rendering collaborator relies on: currency-like
// sums to 0 decimals with thousands grouping, statistics to 3 decimals,
// p-values to 4, correlation cells to 2.

// FormatCurrency renders a currency-like sum, e.g. 1234567.8 -> "$1,234,568"
func FormatCurrency(v float64) string {
	neg := v < 0
	whole := strconv.FormatInt(int64(math.Round(math.Abs(v))), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
		if len(whole) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(whole); i += 3 {
		b.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatStatistic renders a test statistic to 3 decimals
func FormatStatistic(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatPValue renders a p-value to 4 decimals
func FormatPValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// FormatCorrelation renders a correlation coefficient to 2 decimals
func FormatCorrelation(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatRSquared renders a coefficient of determination to 4 decimals,
// matching the scatter panel's "R² = 0.1234" readout
func FormatRSquared(v float64) string {
	return fmt.Sprintf("R² = %.4f", v)
}
