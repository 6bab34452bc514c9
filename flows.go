package folio

// FlowSchedule derives the signed cash-flow schedule of the portfolio for
// the money-weighted return: deposits are negative (capital paid in),
// withdrawals positive, and the terminal market value closes the schedule
// as a positive flow on the asOf date. Amounts are expressed in the
// reporting currency; trades in a currency missing from the rate map are
// skipped.
func FlowSchedule(trades []Trade, terminalValue float64, asOf Date, rates RateMap, reporting string) []CashFlow {
	var flows []CashFlow
	for _, t := range sortTrades(trades) {
		if !t.IsCashFlow() || t.TradeDate.After(asOf) {
			continue
		}
		amount, ok := rates.ToReporting(t.TotalAmount.AsFloat(), t.Currency, reporting)
		if !ok {
			continue
		}
		if t.Type == Deposit {
			amount = -amount
		}
		flows = append(flows, CashFlow{Date: t.TradeDate, Amount: amount})
	}
	if len(flows) > 0 {
		flows = append(flows, CashFlow{Date: asOf, Amount: terminalValue})
	}
	return flows
}
