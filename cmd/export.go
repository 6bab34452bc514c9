package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/folioquant/folio"
	"github.com/folioquant/folio/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write all reports as HTML files" }
func (*exportCmd) Usage() string {
	return `fq export [-o <dir>]

  Generates the summary, history, gains and metrics reports and saves
  them as standalone HTML files in the output directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "root directory for the generated reports")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return failErr("Error creating output directory: %v", err)
	}

	holdings, err := LoadHoldings()
	if err != nil {
		return failErr("Error loading holdings: %v", err)
	}
	dividends, err := LoadDividends()
	if err != nil {
		return failErr("Error loading dividends: %v", err)
	}
	b, err := loadBook(folio.Today())
	if err != nil {
		return failErr("Error: %v", err)
	}

	adjusted := folio.AdjustHistory(b.history)
	assets := folio.AllocatePnL(b.trades, holdings)
	totals, err := folio.TotalPnL(assets, b.rates, b.reporting)
	if err != nil {
		return failErr("Error totalling gains: %v", err)
	}

	reports := map[string]string{
		"summary": renderer.SummaryMarkdown(folio.Summarize(holdings, dividends), folio.Allocations(holdings)),
		"history": renderer.HistoryMarkdown(b.reporting, adjusted, folio.AdjustHistoryLiquid(b.history)),
		"gains":   renderer.GainsMarkdown(assets, totals),
	}
	if len(b.history) > 0 {
		asOf := b.history[len(b.history)-1].Date
		terminal := b.history[len(b.history)-1].Value
		flows := folio.FlowSchedule(b.trades, terminal, asOf, b.rates, b.reporting)
		metrics := folio.ComputeMetrics(adjusted, flows, nil, folio.DefaultConfig())
		reports["metrics"] = renderer.MetricsMarkdown(metrics, folio.PeriodReturns(adjusted, asOf))
	}

	for name, md := range reports {
		html, err := markdownToHTML(name, md)
		if err != nil {
			return failErr("Error rendering %s: %v", name, err)
		}
		path := filepath.Join(c.outputDir, name+".html")
		if err := os.WriteFile(path, html, 0644); err != nil {
			return failErr("Error writing %s: %v", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return subcommands.ExitSuccess
}
