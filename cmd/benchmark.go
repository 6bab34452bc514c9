package cmd

import (
	"context"
	"flag"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type benchmarkCmd struct {
	symbol string
	date   string
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare the portfolio against a benchmark" }
func (*benchmarkCmd) Usage() string {
	return `fq benchmark -s <symbol> [-d <date>]

  Builds a shadow portfolio that invests every deposit and buy into the
  benchmark instead, and compares its track against the portfolio's.
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "benchmark symbol from the price file")
	f.StringVar(&c.date, "d", folio.Today().String(), "last date of the comparison")
}

func (c *benchmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return usageErr("-s <symbol> is required")
	}
	through, err := folio.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	b, err := loadBook(through)
	if err != nil {
		return failErr("Error: %v", err)
	}
	series := b.prices[c.symbol]
	if len(series) == 0 {
		return usageErr("No price series for benchmark %q", c.symbol)
	}

	track := folio.TrackBenchmark(b.history, b.trades, series, b.rates, b.reporting)
	printMarkdown(renderer.BenchmarkMarkdown(c.symbol, b.history, track))
	return subcommands.ExitSuccess
}
