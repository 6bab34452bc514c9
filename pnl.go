package folio

import "sort"

// AssetPnL reconciles the realized and unrealized profit of one asset
// key (assetType:symbol:currency).
//
// Cost basis matching is FIFO: the oldest lots are consumed first by each
// sell, with partial lots pro-rated by quantity. The policy is fixed; it
// is applied identically to every asset key.
type AssetPnL struct {
	AssetType  AssetType `json:"assetType"`
	Symbol     string    `json:"symbol"`
	Currency   string    `json:"currency"`
	Realized   Money     `json:"realized"`
	Unrealized Money     `json:"unrealized"`
	Total      Money     `json:"total"`
	Invested   Money     `json:"invested"` // cumulative buy totals, for ROI on closed positions
	Quantity   Quantity  `json:"quantity"` // currently held, zero for closed positions
	Closed     bool      `json:"closed"`
	ROIPercent Percent   `json:"roiPercent"`
}

// AllocatePnL walks the trade ledger and reconciles realized P&L (sell
// proceeds net of fees, minus FIFO-matched cost basis) with unrealized
// P&L from the open holdings. Fully-closed positions appear with a zero
// unrealized component; for every key, Total = Realized + Unrealized.
func AllocatePnL(trades []Trade, holdings []Holding) []AssetPnL {
	type book struct {
		assetType AssetType
		symbol    string
		currency  string
		open      lots
		realized  Money
		invested  Money
	}

	books := make(map[string]*book)
	for _, t := range sortTrades(trades) {
		if t.IsCashFlow() {
			continue
		}
		b, ok := books[t.Key()]
		if !ok {
			b = &book{
				assetType: t.AssetType,
				symbol:    t.Symbol,
				currency:  t.Currency,
				realized:  M(0, t.Currency),
				invested:  M(0, t.Currency),
			}
			books[t.Key()] = b
		}
		switch t.Type {
		case Buy:
			b.open = append(b.open, lot{
				Date:     t.TradeDate,
				Quantity: t.Quantity,
				Cost:     t.TotalAmount.Add(t.Fees),
			})
			b.invested = b.invested.Add(t.TotalAmount)
		case Sell:
			proceeds := t.TotalAmount.Sub(t.Fees)
			basis := b.open.costOfSelling(t.Quantity)
			b.realized = b.realized.Add(proceeds.Sub(basis))
			b.open = b.open.sell(t.Quantity)
		}
	}

	byKey := make(map[string]HoldingValuation, len(holdings))
	for _, h := range holdings {
		byKey[h.Key()] = Valuate(h)
	}

	keys := make([]string, 0, len(books))
	for key := range books {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]AssetPnL, 0, len(keys))
	for _, key := range keys {
		b := books[key]
		p := AssetPnL{
			AssetType:  b.assetType,
			Symbol:     b.symbol,
			Currency:   b.currency,
			Realized:   b.realized,
			Unrealized: M(0, b.currency),
			Invested:   b.invested,
		}
		if v, ok := byKey[key]; ok && !v.Holding.Quantity.IsZero() {
			p.Unrealized = v.GainLoss
			p.Quantity = v.Holding.Quantity
		} else {
			p.Closed = true
		}
		p.Total = p.Realized.Add(p.Unrealized)
		if !p.Invested.IsZero() {
			p.ROIPercent = Percent(100 * p.Total.AsFloat() / p.Invested.AsFloat())
		}
		out = append(out, p)
	}
	return out
}

// PnLTotals sums a P&L allocation across asset keys, open and closed, in
// the reporting currency.
type PnLTotals struct {
	Currency   string  `json:"currency"`
	Realized   Money   `json:"realized"`
	Unrealized Money   `json:"unrealized"`
	Total      Money   `json:"total"`
	ROIPercent Percent `json:"roiPercent"`
}

// TotalPnL converts and sums per-asset P&L into the reporting currency.
// ROI is total gain over cumulative invested capital, like AssetPnL.
func TotalPnL(assets []AssetPnL, rates RateMap, reporting string) (PnLTotals, error) {
	totals := PnLTotals{
		Currency:   reporting,
		Realized:   M(0, reporting),
		Unrealized: M(0, reporting),
		Total:      M(0, reporting),
	}
	invested := M(0, reporting)
	for _, a := range assets {
		realized, err := rates.ConvertMoney(a.Realized, reporting)
		if err != nil {
			return PnLTotals{}, err
		}
		unrealized, err := rates.ConvertMoney(a.Unrealized, reporting)
		if err != nil {
			return PnLTotals{}, err
		}
		inv, err := rates.ConvertMoney(a.Invested, reporting)
		if err != nil {
			return PnLTotals{}, err
		}
		totals.Realized = totals.Realized.Add(realized)
		totals.Unrealized = totals.Unrealized.Add(unrealized)
		invested = invested.Add(inv)
	}
	totals.Total = totals.Realized.Add(totals.Unrealized)
	if !invested.IsZero() {
		totals.ROIPercent = Percent(100 * totals.Total.AsFloat() / invested.AsFloat())
	}
	return totals, nil
}
