package folio

// BenchmarkPoint is one day of the cash-flow-adjusted benchmark curve.
type BenchmarkPoint struct {
	Date   Date    `json:"date"`
	Value  float64 `json:"value"`
	Shares float64 `json:"shares"`
}

// TrackBenchmark builds a benchmark value series that experienced the same
// external capital movements as the portfolio, making the two curves
// directly comparable in notional terms. A portfolio that received a large
// deposit would otherwise spuriously "outperform" a passive index that
// never compounds new capital.
//
// The tracker seeds virtual benchmark shares so that shares * price equals
// the portfolio value on the first day with both a positive value and a
// benchmark price. Each subsequent day the benchmark's own price return
// applies to the held shares; then buy trades add shares worth the
// trade's value at that day's benchmark price, and sell trades remove the
// proportional fraction of the current shares.
//
// Trade amounts are converted into the reporting currency before they buy
// or release shares, since the history and the benchmark prices are
// already expressed in it. Trades whose currency has no rate are skipped.
func TrackBenchmark(history []HistoryEntry, trades []Trade, benchmark PriceSeries, rates RateMap, reporting string) []BenchmarkPoint {
	history = sortHistory(history)
	benchmark = benchmark.Normalize()
	if len(history) == 0 || len(benchmark) == 0 {
		return nil
	}
	trades = sortTrades(trades)

	var out []BenchmarkPoint
	shares := 0.0
	next := 0
	for _, e := range history {
		price, ok := benchmark.CloseAsOf(e.Date)
		if !ok || price <= 0 {
			// before the benchmark's first quote, skip trades of those days too
			for next < len(trades) && !trades[next].TradeDate.After(e.Date) {
				next++
			}
			continue
		}

		if shares == 0 && e.Value > 0 {
			// equal starting basis with the portfolio
			shares = e.Value / price
			for next < len(trades) && !trades[next].TradeDate.After(e.Date) {
				next++ // flows up to the seed day are already in the basis
			}
			out = append(out, BenchmarkPoint{Date: e.Date, Value: shares * price, Shares: shares})
			continue
		}

		for next < len(trades) && !trades[next].TradeDate.After(e.Date) {
			t := trades[next]
			next++
			if t.Type != Buy && t.Type != Sell {
				continue
			}
			amount, ok := rates.ToReporting(t.TotalAmount.AsFloat(), t.Currency, reporting)
			if !ok {
				continue
			}
			switch t.Type {
			case Buy:
				shares += amount / price
			case Sell:
				if current := shares * price; current > 0 {
					fraction := amount / current
					if fraction > 1 {
						fraction = 1
					}
					shares -= shares * fraction
				}
			}
		}

		out = append(out, BenchmarkPoint{Date: e.Date, Value: shares * price, Shares: shares})
	}
	return out
}
