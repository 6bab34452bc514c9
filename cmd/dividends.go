package cmd

import (
	"context"
	"flag"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct {
	symbol string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "simulate dividend reinvestment for one asset" }
func (*dividendsCmd) Usage() string {
	return `fq dividends -s <symbol>

  Simulates reinvesting every dividend of the asset into more of the same
  asset at the first available price on or after the payment date, and
  displays the resulting growth curve.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "asset symbol to simulate")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return usageErr("-s <symbol> is required")
	}

	holdings, err := LoadHoldings()
	if err != nil {
		return failErr("Error loading holdings: %v", err)
	}
	var holding *folio.Holding
	for i := range holdings {
		if holdings[i].Symbol == c.symbol {
			holding = &holdings[i]
			break
		}
	}
	if holding == nil {
		return usageErr("No holding with symbol %q", c.symbol)
	}

	prices, err := LoadPrices()
	if err != nil {
		return failErr("Error loading prices: %v", err)
	}
	series := prices[c.symbol]
	if len(series) == 0 {
		return usageErr("No price series for %q", c.symbol)
	}

	allDividends, err := LoadDividends()
	if err != nil {
		return failErr("Error loading dividends: %v", err)
	}
	dividends := folio.FilterDividends(allDividends[c.symbol], holding.PurchaseDate)

	points := folio.Reinvest(series, dividends, holding.PurchaseDate)
	printMarkdown(renderer.ReinvestmentMarkdown(c.symbol, points))
	return subcommands.ExitSuccess
}
