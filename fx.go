package folio

import "fmt"

// RateMap maps a currency to its exchange rate against the reporting
// currency, expressed as "1 reporting-currency unit = rate units of that
// currency". The reporting currency itself must map to 1.
type RateMap map[string]float64

// Validate checks that the reporting currency maps to 1 and that no rate
// is zero or negative.
func (r RateMap) Validate(reporting string) error {
	rate, ok := r[reporting]
	if !ok || rate != 1 {
		return fmt.Errorf("rate map must map reporting currency %q to 1, got %v", reporting, rate)
	}
	for currency, rate := range r {
		if rate <= 0 {
			return fmt.Errorf("invalid rate %v for currency %q", rate, currency)
		}
	}
	return nil
}

// ToReporting converts an amount of the given currency into the reporting
// currency. The second return is false when the currency is unknown.
func (r RateMap) ToReporting(amount float64, currency, reporting string) (float64, bool) {
	if currency == reporting {
		return amount, true
	}
	rate, ok := r[currency]
	if !ok || rate <= 0 {
		return 0, false
	}
	return amount / rate, true
}

// ConvertMoney converts a Money value into the reporting currency.
func (r RateMap) ConvertMoney(m Money, reporting string) (Money, error) {
	if m.Currency() == reporting || m.Currency() == "" {
		return M(m.value, reporting), nil
	}
	rate, ok := r[m.Currency()]
	if !ok || rate <= 0 {
		return Money{}, fmt.Errorf("no exchange rate for currency %q", m.Currency())
	}
	return M(m.value, reporting).Div(Q(rate)), nil
}

// UnifyHoldings expresses all money fields of the holdings in the
// reporting currency, so that the single-currency aggregations
// (Summarize, Allocations) apply to a mixed-currency portfolio.
func UnifyHoldings(holdings []Holding, rates RateMap, reporting string) ([]Holding, error) {
	out := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		purchase, err := rates.ConvertMoney(h.PurchasePrice, reporting)
		if err != nil {
			return nil, fmt.Errorf("holding %q: %w", h.Symbol, err)
		}
		current, err := rates.ConvertMoney(h.CurrentPrice, reporting)
		if err != nil {
			return nil, fmt.Errorf("holding %q: %w", h.Symbol, err)
		}
		h.PurchasePrice = purchase
		h.CurrentPrice = current
		h.Currency = reporting
		out = append(out, h)
	}
	return out, nil
}

// UnifySummary aggregates a mixed-currency portfolio into a single
// summary in the reporting currency, structurally identical to the
// per-currency summaries of Summarize.
func UnifySummary(holdings []Holding, dividends map[string][]DividendRecord, rates RateMap, reporting string) (PortfolioSummary, error) {
	unified, err := UnifyHoldings(holdings, rates, reporting)
	if err != nil {
		return PortfolioSummary{}, err
	}
	// Dividend amounts are quoted in each holding's original currency and
	// must follow it into the reporting currency.
	converted := make(map[string][]DividendRecord, len(dividends))
	for _, h := range holdings {
		records, ok := dividends[h.Symbol]
		if !ok {
			continue
		}
		out := make([]DividendRecord, 0, len(records))
		for _, d := range records {
			amount, ok := rates.ToReporting(d.AmountPerShare, h.Currency, reporting)
			if !ok {
				return PortfolioSummary{}, fmt.Errorf("no exchange rate for currency %q", h.Currency)
			}
			d.AmountPerShare = amount
			out = append(out, d)
		}
		converted[h.Symbol] = out
	}
	summary, ok := Summarize(unified, converted)[reporting]
	if !ok {
		// no holdings: explicit zero-filled summary, not an error
		summary = PortfolioSummary{
			Currency:           reporting,
			CurrentValue:       M(0, reporting),
			TotalInvested:      M(0, reporting),
			TotalGainLoss:      M(0, reporting),
			DividendsCollected: M(0, reporting),
		}
	}
	return summary, nil
}
