// Package renderer turns engine outputs into markdown reports. It owns no
// calculation: every number it prints was computed by the folio package.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/folioquant/folio"
)

// SummaryMarkdown renders the per-currency portfolio summaries and the
// asset allocation table.
func SummaryMarkdown(summaries map[string]folio.PortfolioSummary, allocations []folio.AssetAllocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	currencies := make([]string, 0, len(summaries))
	for currency := range summaries {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	table := md.TableSet{
		Header: []string{"Currency", "Invested", "Current Value", "Gain/Loss", "Return", "Holdings", "Dividends"},
	}
	for _, currency := range currencies {
		s := summaries[currency]
		table.Rows = append(table.Rows, []string{
			currency,
			s.TotalInvested.String(),
			s.CurrentValue.String(),
			s.TotalGainLoss.SignedString(),
			s.TotalGainLossPercent.SignedString(),
			fmt.Sprintf("%d", s.HoldingsCount),
			s.DividendsCollected.String(),
		})
	}
	doc.Table(table)

	if len(allocations) > 0 {
		doc.H2("Allocation")
		alloc := md.TableSet{
			Header: []string{"Asset Type", "Value", "Count", "Share"},
		}
		for _, a := range allocations {
			alloc.Rows = append(alloc.Rows, []string{
				string(a.AssetType),
				a.Value.String(),
				fmt.Sprintf("%d", a.Count),
				a.Percentage.String(),
			})
		}
		doc.Table(alloc)
	}

	return doc.String()
}

// UnifiedSummaryMarkdown renders the single-currency view of a
// mixed-currency portfolio.
func UnifiedSummaryMarkdown(summary folio.PortfolioSummary, allocations []folio.AssetAllocation) string {
	return SummaryMarkdown(map[string]folio.PortfolioSummary{summary.Currency: summary}, allocations)
}
