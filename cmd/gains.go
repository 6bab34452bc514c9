package cmd

import (
	"context"
	"flag"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "display realized and unrealized profit and loss" }
func (*gainsCmd) Usage() string {
	return `fq gains

  Replays the trade ledger against the current holdings and displays the
  realized (FIFO cost basis) and unrealized profit and loss per asset,
  with a total converted to the reporting currency.
`
}

func (*gainsCmd) SetFlags(f *flag.FlagSet) {}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, err := LoadTrades()
	if err != nil {
		return failErr("Error loading trades: %v", err)
	}
	holdings, err := LoadHoldings()
	if err != nil {
		return failErr("Error loading holdings: %v", err)
	}
	rates, reporting, err := LoadRates(fallbackCurrency(holdings))
	if err != nil {
		return failErr("Error loading rates: %v", err)
	}

	assets := folio.AllocatePnL(trades, holdings)
	totals, err := folio.TotalPnL(assets, rates, reporting)
	if err != nil {
		return failErr("Error totalling gains: %v", err)
	}

	printMarkdown(renderer.GainsMarkdown(assets, totals))
	return subcommands.ExitSuccess
}
