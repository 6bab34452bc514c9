package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	date   string
	liquid bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the cash-flow-adjusted value history" }
func (*historyCmd) Usage() string {
	return `fq history [-d <date>] [-liquid]

  Replays the trade ledger into a daily value history and displays the
  cash-flow-adjusted performance index. Deposits and withdrawals move the
  value but never the index. With -liquid, a second index excluding
  commodities and fixed deposits is shown alongside.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "last date of the history")
	f.BoolVar(&c.liquid, "liquid", false, "also show the liquid-only index")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	through, err := folio.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	b, err := loadBook(through)
	if err != nil {
		return failErr("Error: %v", err)
	}

	adjusted := folio.AdjustHistory(b.history)
	var liquid []folio.AdjustedEntry
	if c.liquid {
		liquid = folio.AdjustHistoryLiquid(b.history)
	}

	printMarkdown(renderer.HistoryMarkdown(b.reporting, adjusted, liquid))
	return subcommands.ExitSuccess
}

// book bundles the inputs every time-dimension command needs, replayed
// into a daily value history in the reporting currency.
type book struct {
	trades    []folio.Trade
	prices    map[string]folio.PriceSeries
	rates     folio.RateMap
	reporting string
	history   []folio.HistoryEntry
}

// loadBook loads the ledger, prices and rates, and replays them through
// the given date.
func loadBook(through folio.Date) (*book, error) {
	trades, err := LoadTrades()
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}
	prices, err := LoadPrices()
	if err != nil {
		return nil, fmt.Errorf("loading prices: %w", err)
	}
	fallback := "USD"
	if len(trades) > 0 {
		fallback = trades[0].Currency
	}
	rates, reporting, err := LoadRates(fallback)
	if err != nil {
		return nil, fmt.Errorf("loading rates: %w", err)
	}
	return &book{
		trades:    trades,
		prices:    prices,
		rates:     rates,
		reporting: reporting,
		history:   folio.BuildHistory(trades, prices, rates, reporting, through),
	}, nil
}
