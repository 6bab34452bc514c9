package folio

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeHoldings(t *testing.T) {
	const input = `[
	  {"assetType":"stock","symbol":"AAPL","quantity":"10","purchasePrice":100,
	   "currentPrice":150,"purchaseDate":"2024-01-02","currency":"USD"},
	  {"assetType":"fixed-deposit","symbol":"FD-01","quantity":"1","purchasePrice":50000,
	   "currentPrice":50000,"purchaseDate":"2024-03-01","currency":"PKR",
	   "fixedDeposit":{"principal":50000,"annualRate":14.5,"maturity":"2025-03-01"}}
	]`
	holdings, err := DecodeHoldings(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("len = %d, want 2", len(holdings))
	}
	aapl := holdings[0]
	if !aapl.Quantity.Equal(Q(10)) || !aapl.PurchasePrice.Equal(M(100, "USD")) {
		t.Errorf("AAPL = %+v, not decoded correctly", aapl)
	}
	fd := holdings[1]
	if fd.FixedDeposit == nil {
		t.Fatal("fixed deposit terms not decoded")
	}
	if !fd.FixedDeposit.Principal.Equal(M(50000, "PKR")) || !fd.FixedDeposit.AnnualRate.Equal(14.5) {
		t.Errorf("fixed deposit terms = %+v", fd.FixedDeposit)
	}
	if fd.FixedDeposit.Maturity != NewDate(2025, time.March, 1) {
		t.Errorf("maturity = %s, want 2025-03-01", fd.FixedDeposit.Maturity)
	}
}

func TestDecodeHoldings_NegativeQuantity(t *testing.T) {
	const input = `[{"symbol":"BAD","quantity":"-1","currency":"USD"}]`
	if _, err := DecodeHoldings(strings.NewReader(input)); err == nil {
		t.Error("DecodeHoldings accepted a negative quantity")
	}
}

func TestDecodeTrades_UnknownType(t *testing.T) {
	const input = `[{"symbol":"X","tradeType":"short","currency":"USD"}]`
	if _, err := DecodeTrades(strings.NewReader(input)); err == nil {
		t.Error("DecodeTrades accepted an unknown trade type")
	}
}

func TestDecodeRates(t *testing.T) {
	const input = `{"reporting":"USD","rates":{"USD":1,"PKR":280,"EUR":0.92}}`
	rates, reporting, err := DecodeRates(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	if reporting != "USD" || rates["PKR"] != 280 {
		t.Errorf("rates = %v %q", rates, reporting)
	}

	const bad = `{"reporting":"USD","rates":{"USD":2}}`
	if _, _, err := DecodeRates(strings.NewReader(bad)); err == nil {
		t.Error("DecodeRates accepted a reporting currency not mapping to 1")
	}
}

func TestExtractPricePoints(t *testing.T) {
	// provider-shaped document: columns, not rows
	const doc = `{
	  "data": {
	    "dates": ["2024-01-03", "2024-01-02", "2024-01-02"],
	    "closes": [102.5, 99.0, 101.0]
	  }
	}`
	series, err := ExtractPricePoints(strings.NewReader(doc), "$.data.dates", "$.data.closes")
	if err != nil {
		t.Fatalf("ExtractPricePoints() error = %v", err)
	}
	// normalized: sorted, duplicate day collapsed
	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Date != NewDate(2024, time.January, 2) || series[0].Close != 101.0 {
		t.Errorf("first point = %+v, want 2024-01-02 @ 101", series[0])
	}
	if series[1].Close != 102.5 {
		t.Errorf("second point = %+v, want 102.5", series[1])
	}
}

func TestExtractPricePoints_LengthMismatch(t *testing.T) {
	const doc = `{"dates":["2024-01-02"],"closes":[1.0,2.0]}`
	if _, err := ExtractPricePoints(strings.NewReader(doc), "$.dates", "$.closes"); err == nil {
		t.Error("ExtractPricePoints accepted mismatched columns")
	}
}
