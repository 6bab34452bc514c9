package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioquant/folio"
	"github.com/google/subcommands"
)

type importPricesCmd struct {
	symbol    string
	datePath  string
	closePath string
}

func (*importPricesCmd) Name() string     { return "import-prices" }
func (*importPricesCmd) Synopsis() string { return "import a price series from a provider document" }
func (*importPricesCmd) Usage() string {
	return `fq import-prices -s <symbol> -dates <jsonpath> -closes <jsonpath> <file>

  Extracts a price series from an arbitrary provider JSON document using
  two jsonpath expressions, one for the date list and one for the close
  list, and merges it into the price file.

Usage Examples:
# Import SPY closes from an EODHD-shaped export.
$ fq import-prices -s SPY -dates '$.data.dates' -closes '$.data.closes' spy.json
`
}

func (c *importPricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "symbol to store the series under")
	f.StringVar(&c.datePath, "dates", "", "jsonpath expression yielding the date list")
	f.StringVar(&c.closePath, "closes", "", "jsonpath expression yielding the close list")
}

func (c *importPricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.datePath == "" || c.closePath == "" {
		return usageErr("-s, -dates and -closes are all required")
	}
	if f.NArg() != 1 {
		return usageErr("exactly one provider document is expected")
	}

	doc, err := os.Open(f.Arg(0))
	if err != nil {
		return failErr("Error opening provider document: %v", err)
	}
	defer doc.Close()

	series, err := folio.ExtractPricePoints(doc, c.datePath, c.closePath)
	if err != nil {
		return failErr("Error extracting prices: %v", err)
	}

	prices, err := LoadPrices()
	if err != nil {
		return failErr("Error loading prices: %v", err)
	}
	merged := append(prices[c.symbol], series...)
	prices[c.symbol] = merged.Normalize()

	out, err := os.Create(*pricesFile)
	if err != nil {
		return failErr("Error opening price file: %v", err)
	}
	defer out.Close()
	if err := folio.EncodePriceSeries(out, prices); err != nil {
		return failErr("Error writing price file: %v", err)
	}

	fmt.Printf("Imported %d points for %s into %s\n", len(series), c.symbol, *pricesFile)
	return subcommands.ExitSuccess
}
