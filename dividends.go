package folio

// DividendRecord is one dividend event, per share, in the holding's
// currency.
type DividendRecord struct {
	Date           Date    `json:"date"`
	AmountPerShare float64 `json:"amountPerShare"`
}

// FilterDividends keeps the records on or after the purchase date, the
// only ones a holder was entitled to. Order is preserved.
func FilterDividends(dividends []DividendRecord, purchase Date) []DividendRecord {
	var out []DividendRecord
	for _, d := range dividends {
		if !d.Date.Before(purchase) {
			out = append(out, d)
		}
	}
	return out
}

// ReinvestmentPoint is one step of the total-return curve.
type ReinvestmentPoint struct {
	Date          Date    `json:"date"`
	AdjustedValue float64 `json:"adjustedValue"`
	TotalShares   float64 `json:"totalShares"`
	ReturnPercent Percent `json:"returnPercent"`
}

// Reinvest simulates a single-share position whose dividends buy
// additional fractional shares. The walk starts with one share at the
// first price; each dividend on or after the purchase date is processed
// exactly once, in date order, reinvested at the first available price on
// or after the dividend date. One point is emitted per price point, so the
// result is a total-return curve directly comparable to the raw price
// curve; multiply AdjustedValue by the actual held quantity to scale it.
//
// The simulation is deterministic: identical inputs give identical output.
func Reinvest(prices PriceSeries, dividends []DividendRecord, purchase Date) []ReinvestmentPoint {
	prices = prices.Normalize()
	if len(prices) == 0 {
		return nil
	}
	dividends = FilterDividends(dividends, purchase)

	shares := 1.0
	initial := prices[0].Close
	next := 0
	out := make([]ReinvestmentPoint, 0, len(prices))
	for _, p := range prices {
		for next < len(dividends) && !dividends[next].Date.After(p.Date) {
			if p.Close > 0 {
				shares += dividends[next].AmountPerShare / p.Close
			}
			next++
		}
		value := shares * p.Close
		var ret Percent
		if initial > 0 {
			ret = Percent(100 * (value - initial) / initial)
		}
		out = append(out, ReinvestmentPoint{
			Date:          p.Date,
			AdjustedValue: value,
			TotalShares:   shares,
			ReturnPercent: ret,
		})
	}
	return out
}
