package renderer

import (
	"fmt"
	"strings"

	"github.com/folioquant/folio"
)

// GainsMarkdown renders the realized/unrealized profit and loss breakdown.
// Cost basis is FIFO.
func GainsMarkdown(assets []folio.AssetPnL, totals folio.PnLTotals) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profit & Loss Report (%s)\n\n", totals.Currency)
	fmt.Fprint(&b, "Method: FIFO\n\n")

	fmt.Fprint(&b, "## Gains per Asset\n\n")
	fmt.Fprintln(&b, "| Asset | Type | Realized | Unrealized | Total | ROI |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")

	for _, a := range assets {
		if a.Realized.IsZero() && a.Unrealized.IsZero() && a.Closed {
			continue
		}
		symbol := a.Symbol
		if a.Closed {
			symbol += " (closed)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			symbol,
			a.AssetType,
			a.Realized.SignedString(),
			a.Unrealized.SignedString(),
			a.Total.SignedString(),
			a.ROIPercent.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		totals.Realized.SignedString(),
		totals.Unrealized.SignedString(),
		totals.Total.SignedString(),
		totals.ROIPercent.SignedString(),
	)

	return b.String()
}
