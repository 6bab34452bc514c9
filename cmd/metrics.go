package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type metricsCmd struct {
	date      string
	benchmark string
	riskFree  float64
	asJSON    bool
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compute risk and performance metrics" }
func (*metricsCmd) Usage() string {
	return `fq metrics [-d <date>] [-b <symbol>] [-risk-free <rate>] [-json]

  Computes CAGR, XIRR, volatility, Sharpe, Sortino, max drawdown and, when
  a benchmark symbol is given, beta. Metrics that cannot be computed for
  the available data are omitted (null in JSON output), never NaN.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "date to compute the metrics at")
	f.StringVar(&c.benchmark, "b", "", "benchmark symbol from the price file, enables beta")
	f.Float64Var(&c.riskFree, "risk-free", folio.DefaultConfig().RiskFreeRate, "annual risk-free rate")
	f.BoolVar(&c.asJSON, "json", false, "emit the metrics as JSON instead of a report")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := folio.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	b, err := loadBook(asOf)
	if err != nil {
		return failErr("Error: %v", err)
	}
	if len(b.history) == 0 {
		return failErr("Ledger is empty, nothing to compute.")
	}

	var benchmark folio.PriceSeries
	if c.benchmark != "" {
		benchmark = b.prices[c.benchmark]
		if len(benchmark) == 0 {
			return usageErr("No price series for benchmark %q", c.benchmark)
		}
	}

	cfg := folio.DefaultConfig()
	cfg.RiskFreeRate = c.riskFree

	adjusted := folio.AdjustHistory(b.history)
	terminal := b.history[len(b.history)-1].Value
	flows := folio.FlowSchedule(b.trades, terminal, asOf, b.rates, b.reporting)

	metrics := folio.ComputeMetrics(adjusted, flows, benchmark, cfg)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(metrics); err != nil {
			return failErr("Error encoding metrics: %v", err)
		}
		return subcommands.ExitSuccess
	}

	periods := folio.PeriodReturns(adjusted, asOf)
	printMarkdown(renderer.MetricsMarkdown(metrics, periods))
	return subcommands.ExitSuccess
}
