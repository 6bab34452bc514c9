package cmd

import (
	"context"
	"flag"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	unify bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio valuation summary" }
func (*summaryCmd) Usage() string {
	return `fq summary [-unify]

  Displays the portfolio valuation, grouped by currency, with the asset
  allocation breakdown. With -unify, all positions are converted to the
  reporting currency and shown as a single summary.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.unify, "unify", false, "convert everything to the reporting currency")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := LoadHoldings()
	if err != nil {
		return failErr("Error loading holdings: %v", err)
	}
	dividends, err := LoadDividends()
	if err != nil {
		return failErr("Error loading dividends: %v", err)
	}

	allocations := folio.Allocations(holdings)

	if c.unify {
		rates, reporting, err := LoadRates(fallbackCurrency(holdings))
		if err != nil {
			return failErr("Error loading rates: %v", err)
		}
		summary, err := folio.UnifySummary(holdings, dividends, rates, reporting)
		if err != nil {
			return failErr("Error unifying portfolio: %v", err)
		}
		unified, err := folio.UnifyHoldings(holdings, rates, reporting)
		if err != nil {
			return failErr("Error unifying holdings: %v", err)
		}
		printMarkdown(renderer.UnifiedSummaryMarkdown(summary, folio.Allocations(unified)))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(folio.Summarize(holdings, dividends), allocations))
	return subcommands.ExitSuccess
}
