package folio

import "sort"

// TradeType is the kind of ledger entry.
type TradeType string

const (
	Buy        TradeType = "buy"
	Sell       TradeType = "sell"
	Deposit    TradeType = "deposit"
	Withdrawal TradeType = "withdrawal"
)

// Trade is one immutable entry of the append-only ledger. Realized P&L and
// external cash flows are derived from trades; holdings are only a
// projection over them.
type Trade struct {
	AssetType   AssetType
	Symbol      string
	Currency    string
	Type        TradeType
	Quantity    Quantity
	Price       Money // per unit
	TotalAmount Money // quantity * price for buys/sells, flow amount for deposits/withdrawals
	TradeDate   Date
	Fees        Money
}

// Key identifies the asset bucket the trade belongs to.
func (t Trade) Key() string {
	return assetKey(t.AssetType, t.Symbol, t.Currency)
}

// IsCashFlow reports whether the trade is an external cash flow rather
// than a position change.
func (t Trade) IsCashFlow() bool {
	return t.Type == Deposit || t.Type == Withdrawal
}

// sortTrades returns the trades ordered by date, stable within a day. The
// ledger is expected to be sorted already; re-sorting is cheap defense.
func sortTrades(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TradeDate.Before(out[j].TradeDate) })
	return out
}
