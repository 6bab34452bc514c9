// Package cmd implements the CLI application to analyze a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/folioquant/folio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&metricsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&benchmarkCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&importPricesCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings-file", "holdings.json", "Path to the holdings file (JSON array)")
var tradesFile = flag.String("trades-file", "trades.json", "Path to the trade ledger file (JSON array)")
var pricesFile = flag.String("prices-file", "prices.json", "Path to the price series file (JSON object, symbol to points)")
var dividendsFile = flag.String("dividends-file", "dividends.json", "Path to the dividends file (JSON object, symbol to records)")
var ratesFile = flag.String("rates-file", "rates.json", "Path to the exchange rates file")

// LoadHoldings decodes the app holdings file.
func LoadHoldings() ([]folio.Holding, error) {
	f, err := os.Open(*holdingsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return folio.DecodeHoldings(f)
}

// LoadTrades decodes the app trade ledger file.
func LoadTrades() ([]folio.Trade, error) {
	f, err := os.Open(*tradesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return folio.DecodeTrades(f)
}

// LoadPrices decodes the app price series file. A missing file is an empty
// price map, not an error: commands fall back to last trade prices.
func LoadPrices() (map[string]folio.PriceSeries, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, price file %q does not exist, using an empty price map", *pricesFile)
		return map[string]folio.PriceSeries{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return folio.DecodePriceSeries(f)
}

// LoadDividends decodes the app dividends file. A missing file means no
// dividends were collected.
func LoadDividends() (map[string][]folio.DividendRecord, error) {
	f, err := os.Open(*dividendsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]folio.DividendRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return folio.DecodeDividends(f)
}

// LoadRates decodes the app exchange rates file. A missing file means a
// single-currency portfolio: rates default to an identity map on the given
// fallback currency.
func LoadRates(fallback string) (folio.RateMap, string, error) {
	f, err := os.Open(*ratesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, rates file %q does not exist, reporting in %s only", *ratesFile, fallback)
		return folio.RateMap{fallback: 1}, fallback, nil
	}
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return folio.DecodeRates(f)
}

// fallbackCurrency picks the reporting currency to use when no rates file
// exists: the currency of the first holding, or USD for an empty book.
func fallbackCurrency(holdings []folio.Holding) string {
	if len(holdings) > 0 {
		return holdings[0].Currency
	}
	return "USD"
}

func usageErr(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}

func failErr(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
