package renderer

import (
	"fmt"
	"strings"

	"github.com/folioquant/folio"
)

// BenchmarkMarkdown renders the portfolio track against the benchmark
// shadow track built from the same cash flows.
func BenchmarkMarkdown(symbol string, history []folio.HistoryEntry, benchmark []folio.BenchmarkPoint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Benchmark Comparison vs %s\n\n", symbol)

	byDate := make(map[folio.Date]folio.BenchmarkPoint, len(benchmark))
	for _, p := range benchmark {
		byDate[p.Date] = p
	}

	fmt.Fprintln(&b, "| Date | Portfolio | Benchmark | Spread |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")

	for _, e := range history {
		p, ok := byDate[e.Date]
		if !ok {
			continue
		}
		spread := e.Value - p.Value
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %+.2f |\n", e.Date, e.Value, p.Value, spread)
	}

	if n := len(history); n > 0 {
		last := history[n-1]
		if p, ok := byDate[last.Date]; ok && p.Value > 0 {
			fmt.Fprintf(&b, "\nFinal spread: %s\n",
				folio.Percent((last.Value-p.Value)/p.Value*100).SignedString())
		}
	}

	return b.String()
}

// ReinvestmentMarkdown renders the dividend-reinvestment growth curve for
// a single asset.
func ReinvestmentMarkdown(symbol string, points []folio.ReinvestmentPoint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dividend Reinvestment for %s\n\n", symbol)
	fmt.Fprintln(&b, "| Date | Shares | Adjusted Value | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %.6f | %.2f | %s |\n",
			p.Date, p.TotalShares, p.AdjustedValue, folio.Percent(p.ReturnPercent).SignedString())
	}

	return b.String()
}
