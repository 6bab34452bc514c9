package folio

import (
	"sort"
)

// AssetType classifies a holding. It drives allocation bucketing and the
// liquid/illiquid split used by risk statistics.
type AssetType string

const (
	Stock        AssetType = "stock"
	Crypto       AssetType = "crypto"
	MutualFund   AssetType = "mutual-fund"
	Commodity    AssetType = "commodity"
	FixedDeposit AssetType = "fixed-deposit"
	CashAsset    AssetType = "cash"
)

// Liquid reports whether positions of this asset type belong to the liquid
// sleeve. Commodities and fixed deposits carry stale or notional marks, so
// they are excluded from return-based risk statistics.
func (t AssetType) Liquid() bool {
	switch t {
	case Commodity, FixedDeposit:
		return false
	}
	return true
}

// FixedDepositTerms carries the strongly-typed attributes of a fixed
// deposit holding, decoded once at the boundary.
type FixedDepositTerms struct {
	Principal  Money   `json:"principal"`
	AnnualRate Percent `json:"annualRate"`
	Maturity   Date    `json:"maturity"`
}

// Holding is an open position: a quantity of an asset with its average
// purchase price and latest known price, both per unit.
//
// Holdings are a materialized projection over the trade ledger, not an
// authoritative record: a position sold down to zero simply disappears
// from the holdings list and survives only in the ledger.
type Holding struct {
	AssetType     AssetType
	Symbol        string
	Quantity      Quantity
	PurchasePrice Money // per unit
	CurrentPrice  Money // per unit
	PurchaseDate  Date
	Currency      string
	Notes         string

	// FixedDeposit is set only when AssetType is FixedDeposit.
	FixedDeposit *FixedDepositTerms
}

// Key identifies the asset bucket a holding (or trade) belongs to.
func (h Holding) Key() string {
	return assetKey(h.AssetType, h.Symbol, h.Currency)
}

func assetKey(t AssetType, symbol, currency string) string {
	return string(t) + ":" + symbol + ":" + currency
}

// Combine merges holdings sharing the same assetType+symbol+currency key
// into one, summing quantities and weighting the average purchase price by
// quantity. The earliest purchase date wins. Order of the result is stable
// by key.
func Combine(holdings []Holding) []Holding {
	merged := make(map[string]Holding)
	keys := make([]string, 0, len(holdings))
	for _, h := range holdings {
		key := h.Key()
		prev, ok := merged[key]
		if !ok {
			merged[key] = h
			keys = append(keys, key)
			continue
		}
		total := prev.Quantity.Add(h.Quantity)
		cost := prev.PurchasePrice.Mul(prev.Quantity).Add(h.PurchasePrice.Mul(h.Quantity))
		if !total.IsZero() {
			prev.PurchasePrice = cost.Div(total)
		}
		prev.Quantity = total
		prev.CurrentPrice = h.CurrentPrice // latest entry wins
		if h.PurchaseDate.Before(prev.PurchaseDate) {
			prev.PurchaseDate = h.PurchaseDate
		}
		merged[key] = prev
	}
	sort.Strings(keys)
	out := make([]Holding, 0, len(keys))
	for _, key := range keys {
		out = append(out, merged[key])
	}
	return out
}
