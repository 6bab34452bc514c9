package folio

import "sort"

// HoldingValuation is the value breakdown of a single holding.
type HoldingValuation struct {
	Holding         Holding
	Invested        Money
	CurrentValue    Money
	GainLoss        Money
	GainLossPercent Percent
}

// Valuate computes invested capital, market value and gain/loss for one
// holding. A zero invested amount yields a zero percentage, not an
// infinite one.
func Valuate(h Holding) HoldingValuation {
	invested := h.PurchasePrice.Mul(h.Quantity)
	current := h.CurrentPrice.Mul(h.Quantity)
	gain := current.Sub(invested)
	var pct Percent
	if !invested.IsZero() {
		pct = Percent(100 * gain.AsFloat() / invested.AsFloat())
	}
	return HoldingValuation{
		Holding:         h,
		Invested:        invested,
		CurrentValue:    current,
		GainLoss:        gain,
		GainLossPercent: pct,
	}
}

// PortfolioSummary aggregates holdings of a single currency.
type PortfolioSummary struct {
	Currency             string  `json:"currency"`
	CurrentValue         Money   `json:"currentValue"`
	TotalInvested        Money   `json:"totalInvested"`
	TotalGainLoss        Money   `json:"totalGainLoss"`
	TotalGainLossPercent Percent `json:"totalGainLossPercent"`
	HoldingsCount        int     `json:"holdingsCount"`
	DividendsCollected   Money   `json:"dividendsCollected"`
}

// Summarize aggregates holdings grouped by currency. Dividends, keyed by
// symbol, are credited per holding row: each row collects the records on
// or after its own purchase date, scaled by its own quantity. Rows are
// lots, so two lots of the same symbol each collect for their own shares
// only. Combining lots first (Combine) shifts the later lot onto the
// earlier purchase date and over-credits it; pass raw lots for exact
// dividend accounting.
//
// An empty holding set yields an empty map, never an error.
func Summarize(holdings []Holding, dividends map[string][]DividendRecord) map[string]PortfolioSummary {
	out := make(map[string]PortfolioSummary)
	for _, h := range holdings {
		v := Valuate(h)
		s, ok := out[h.Currency]
		if !ok {
			s = PortfolioSummary{
				Currency:           h.Currency,
				CurrentValue:       M(0, h.Currency),
				TotalInvested:      M(0, h.Currency),
				TotalGainLoss:      M(0, h.Currency),
				DividendsCollected: M(0, h.Currency),
			}
		}
		s.CurrentValue = s.CurrentValue.Add(v.CurrentValue)
		s.TotalInvested = s.TotalInvested.Add(v.Invested)
		s.TotalGainLoss = s.TotalGainLoss.Add(v.GainLoss)
		s.HoldingsCount++
		for _, d := range FilterDividends(dividends[h.Symbol], h.PurchaseDate) {
			s.DividendsCollected = s.DividendsCollected.Add(M(d.AmountPerShare, h.Currency).Mul(h.Quantity))
		}
		out[h.Currency] = s
	}
	for currency, s := range out {
		if !s.TotalInvested.IsZero() {
			s.TotalGainLossPercent = Percent(100 * s.TotalGainLoss.AsFloat() / s.TotalInvested.AsFloat())
			out[currency] = s
		}
	}
	return out
}

// AssetAllocation is one asset-type bucket of the allocation table.
type AssetAllocation struct {
	AssetType  AssetType `json:"assetType"`
	Value      Money     `json:"value"`
	Count      int       `json:"count"`
	Percentage Percent   `json:"percentage"`
}

// Allocations buckets holdings by asset type and computes each bucket's
// share of the total market value. When the total value is zero all
// percentages are zero. Buckets are sorted by descending value.
//
// Mixed-currency holdings are summed numerically and the bucket loses its
// currency label; unify the holdings first for meaningful amounts.
func Allocations(holdings []Holding) []AssetAllocation {
	buckets := make(map[AssetType]*AssetAllocation)
	var total float64
	for _, h := range holdings {
		v := Valuate(h)
		b, ok := buckets[h.AssetType]
		if !ok {
			b = &AssetAllocation{AssetType: h.AssetType, Value: M(0, h.Currency)}
			buckets[h.AssetType] = b
		}
		b.Value = addValue(b.Value, v.CurrentValue)
		b.Count++
		total += v.CurrentValue.AsFloat()
	}
	out := make([]AssetAllocation, 0, len(buckets))
	for _, b := range buckets {
		if total > 0 {
			b.Percentage = Percent(100 * b.Value.AsFloat() / total)
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value.AsFloat() != out[j].Value.AsFloat() {
			return out[i].Value.AsFloat() > out[j].Value.AsFloat()
		}
		return out[i].AssetType < out[j].AssetType
	})
	return out
}

// addValue sums market values; a bucket that mixes currencies degrades to
// a currencyless amount rather than failing the whole report.
func addValue(a, b Money) Money {
	if a.cur == b.cur || a.cur == "" || b.cur == "" {
		return a.Add(b)
	}
	return Money{value: a.value.Add(b.value)}
}
