package folio

import "sort"

// HistoryEntry is one day of raw portfolio history: market value plus
// cash, cumulative invested capital, and the external cash flow of the
// day. The liquid fields repeat value and flow for the liquid sleeve only:
// illiquid positions are excluded from the value and their purchases are
// treated as withdrawals from the sleeve, so that risk statistics are not
// distorted by illiquid marks.
type HistoryEntry struct {
	Date           Date    `json:"date"`
	Value          float64 `json:"value"`
	Invested       float64 `json:"invested"`
	CashFlow       float64 `json:"cashFlow"`
	LiquidValue    float64 `json:"liquidValue"`
	LiquidCashFlow float64 `json:"liquidCashFlow"`
}

// BuildHistory replays the trade ledger day by day up to 'through' and
// values open positions against the given price series, producing one
// entry per calendar day in the reporting currency. When a series has no
// point on or before a day, the most recent trade price stands in.
func BuildHistory(trades []Trade, prices map[string]PriceSeries, rates RateMap, reporting string, through Date) []HistoryEntry {
	trades = sortTrades(trades)
	if len(trades) == 0 {
		return nil
	}

	type position struct {
		assetType AssetType
		symbol    string
		currency  string
		quantity  float64
		lastPrice float64 // in the position's currency
	}

	normalized := make(map[string]PriceSeries, len(prices))
	for symbol, s := range prices {
		normalized[symbol] = s.Normalize()
	}

	positions := make(map[string]*position)
	var cash float64 // reporting currency
	var invested float64
	var entries []HistoryEntry

	next := 0
	for on := trades[0].TradeDate; !on.After(through); on = on.Add(1) {
		var flow, liquidAdj float64
		for next < len(trades) && !trades[next].TradeDate.After(on) {
			t := trades[next]
			next++
			amount, ok := rates.ToReporting(t.TotalAmount.AsFloat(), t.Currency, reporting)
			if !ok {
				continue // unknown currency, the caller's rate map is incomplete
			}
			fees, _ := rates.ToReporting(t.Fees.AsFloat(), t.Currency, reporting)
			switch t.Type {
			case Deposit:
				cash += amount
				flow += amount
				invested += amount
			case Withdrawal:
				cash -= amount
				flow -= amount
				invested -= amount
			case Buy:
				cash -= amount + fees
				p := positions[t.Key()]
				if p == nil {
					p = &position{assetType: t.AssetType, symbol: t.Symbol, currency: t.Currency}
					positions[t.Key()] = p
				}
				p.quantity += t.Quantity.AsFloat()
				p.lastPrice = t.Price.AsFloat()
				if !t.AssetType.Liquid() {
					liquidAdj -= amount
				}
			case Sell:
				cash += amount - fees
				if p := positions[t.Key()]; p != nil {
					p.quantity -= t.Quantity.AsFloat()
					p.lastPrice = t.Price.AsFloat()
				}
				if !t.AssetType.Liquid() {
					liquidAdj += amount
				}
			}
		}

		value, liquidValue := cash, cash
		for _, p := range positions {
			if p.quantity == 0 {
				continue
			}
			price := p.lastPrice
			if s, ok := normalized[p.symbol]; ok {
				if close, ok := s.CloseAsOf(on); ok {
					price = close
				}
			}
			worth, ok := rates.ToReporting(p.quantity*price, p.currency, reporting)
			if !ok {
				continue
			}
			value += worth
			if p.assetType.Liquid() {
				liquidValue += worth
			}
		}

		entries = append(entries, HistoryEntry{
			Date:           on,
			Value:          value,
			Invested:       invested,
			CashFlow:       flow,
			LiquidValue:    liquidValue,
			LiquidCashFlow: flow + liquidAdj,
		})
	}
	return entries
}

// AdjustedEntry is one day of the flow-neutral index derived from the raw
// history.
type AdjustedEntry struct {
	Date          Date    `json:"date"`
	AdjustedValue float64 `json:"adjustedValue"`
	DailyReturn   float64 `json:"dailyReturn"`
}

// AdjustHistory converts the raw (value, cashFlow) series into a
// flow-neutral index: each day's return is measured net of that day's
// external flow and compounded onto an index seeded at the first positive
// value. Returns measured on the result reflect market performance only,
// not deposits or withdrawals.
//
// A day whose previous value is zero or negative yields a 0 return (the
// zero-basis safeguard); it cannot produce a defined percentage and must
// not poison subsequent compounding.
func AdjustHistory(entries []HistoryEntry) []AdjustedEntry {
	return adjust(entries,
		func(e HistoryEntry) float64 { return e.Value },
		func(e HistoryEntry) float64 { return e.CashFlow })
}

// AdjustHistoryLiquid is AdjustHistory over the liquid sleeve.
func AdjustHistoryLiquid(entries []HistoryEntry) []AdjustedEntry {
	return adjust(entries,
		func(e HistoryEntry) float64 { return e.LiquidValue },
		func(e HistoryEntry) float64 { return e.LiquidCashFlow })
}

func adjust(entries []HistoryEntry, value, flow func(HistoryEntry) float64) []AdjustedEntry {
	entries = sortHistory(entries)
	if len(entries) == 0 {
		return nil
	}

	out := make([]AdjustedEntry, 0, len(entries))
	index := 0.0
	prev := 0.0
	for i, e := range entries {
		v := value(e)
		var r float64
		if i > 0 && prev > 0 {
			r = (v - (prev + flow(e))) / prev
		}
		if index == 0 && v > 0 {
			index = v // seed at the first positive value
		} else {
			index *= 1 + r
		}
		out = append(out, AdjustedEntry{Date: e.Date, AdjustedValue: index, DailyReturn: r})
		prev = v
	}
	return out
}

// sortHistory orders entries by date and collapses duplicate days, last
// entry wins. History is supposed to arrive sorted and unique; this is
// cheap defense.
func sortHistory(entries []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	dedup := out[:0]
	for _, e := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Date == e.Date {
			dedup[n-1] = e
			continue
		}
		dedup = append(dedup, e)
	}
	return dedup
}

// dailyReturns extracts the daily return column of an adjusted series.
func dailyReturns(adjusted []AdjustedEntry) []float64 {
	if len(adjusted) < 2 {
		return nil
	}
	out := make([]float64, 0, len(adjusted)-1)
	for _, e := range adjusted[1:] {
		out = append(out, e.DailyReturn)
	}
	return out
}
