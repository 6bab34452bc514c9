package folio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file is the decoding boundary of the engine: user-supplied JSON
// documents are decoded once into strongly-typed values here, and nothing
// downstream ever parses text again.

// holdingRecord is the wire shape of a holding.
type holdingRecord struct {
	AssetType     AssetType          `json:"assetType"`
	Symbol        string             `json:"symbol"`
	Quantity      Quantity           `json:"quantity"`
	PurchasePrice float64            `json:"purchasePrice"`
	CurrentPrice  float64            `json:"currentPrice"`
	PurchaseDate  Date               `json:"purchaseDate"`
	Currency      string             `json:"currency"`
	Notes         string             `json:"notes,omitempty"`
	FixedDeposit  *fixedDepositWire  `json:"fixedDeposit,omitempty"`
}

type fixedDepositWire struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	Maturity   Date    `json:"maturity"`
}

// DecodeHoldings reads a JSON array of holdings. Quantities must not be
// negative; fixed-deposit terms are decoded into their typed variant.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var records []holdingRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding holdings: %w", err)
	}
	out := make([]Holding, 0, len(records))
	for i, rec := range records {
		if rec.Quantity.IsNegative() {
			return nil, fmt.Errorf("holding %d (%s): negative quantity %s", i, rec.Symbol, rec.Quantity)
		}
		h := Holding{
			AssetType:     rec.AssetType,
			Symbol:        rec.Symbol,
			Quantity:      rec.Quantity,
			PurchasePrice: M(rec.PurchasePrice, rec.Currency),
			CurrentPrice:  M(rec.CurrentPrice, rec.Currency),
			PurchaseDate:  rec.PurchaseDate,
			Currency:      rec.Currency,
			Notes:         rec.Notes,
		}
		if rec.FixedDeposit != nil {
			h.FixedDeposit = &FixedDepositTerms{
				Principal:  M(rec.FixedDeposit.Principal, rec.Currency),
				AnnualRate: Percent(rec.FixedDeposit.AnnualRate),
				Maturity:   rec.FixedDeposit.Maturity,
			}
		}
		out = append(out, h)
	}
	return out, nil
}

// tradeRecord is the wire shape of a ledger entry.
type tradeRecord struct {
	AssetType   AssetType `json:"assetType"`
	Symbol      string    `json:"symbol"`
	Currency    string    `json:"currency"`
	TradeType   TradeType `json:"tradeType"`
	Quantity    Quantity  `json:"quantity"`
	Price       float64   `json:"price"`
	TotalAmount float64   `json:"totalAmount"`
	TradeDate   Date      `json:"tradeDate"`
	Fees        float64   `json:"fees"`
}

// DecodeTrades reads a JSON array of ledger entries, ordered or not; the
// engine re-sorts by date where it matters.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var records []tradeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding trades: %w", err)
	}
	out := make([]Trade, 0, len(records))
	for i, rec := range records {
		switch rec.TradeType {
		case Buy, Sell, Deposit, Withdrawal:
		default:
			return nil, fmt.Errorf("trade %d (%s): unknown trade type %q", i, rec.Symbol, rec.TradeType)
		}
		out = append(out, Trade{
			AssetType:   rec.AssetType,
			Symbol:      rec.Symbol,
			Currency:    rec.Currency,
			Type:        rec.TradeType,
			Quantity:    rec.Quantity,
			Price:       M(rec.Price, rec.Currency),
			TotalAmount: M(rec.TotalAmount, rec.Currency),
			TradeDate:   rec.TradeDate,
			Fees:        M(rec.Fees, rec.Currency),
		})
	}
	return out, nil
}

// DecodePriceSeries reads a JSON object mapping symbols to arrays of
// {date, close} points. Each series is normalized (sorted, deduplicated).
func DecodePriceSeries(r io.Reader) (map[string]PriceSeries, error) {
	var records map[string]PriceSeries
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding price series: %w", err)
	}
	out := make(map[string]PriceSeries, len(records))
	for symbol, s := range records {
		out[symbol] = s.Normalize()
	}
	return out, nil
}

// DecodeDividends reads a JSON object mapping symbols to arrays of
// {date, amountPerShare} records.
func DecodeDividends(r io.Reader) (map[string][]DividendRecord, error) {
	var records map[string][]DividendRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding dividends: %w", err)
	}
	return records, nil
}

// rateFile is the wire shape of the exchange-rate map.
type rateFile struct {
	Reporting string             `json:"reporting"`
	Rates     map[string]float64 `json:"rates"`
}

// DecodeRates reads the exchange-rate map and its reporting currency, and
// validates the map against it.
func DecodeRates(r io.Reader) (RateMap, string, error) {
	var record rateFile
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return nil, "", fmt.Errorf("decoding rates: %w", err)
	}
	rates := RateMap(record.Rates)
	if err := rates.Validate(record.Reporting); err != nil {
		return nil, "", err
	}
	return rates, record.Reporting, nil
}

// EncodePriceSeries writes the symbol-to-series map back in the format
// DecodePriceSeries reads.
func EncodePriceSeries(w io.Writer, prices map[string]PriceSeries) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prices); err != nil {
		return fmt.Errorf("encoding price series: %w", err)
	}
	return nil
}

// ExtractPricePoints pulls a price series out of an arbitrary
// provider-shaped JSON document using two jsonpath expressions, one
// yielding the list of date strings and one the list of closes. The two
// lists are paired positionally. This lets provider exports be consumed
// without a bespoke decoder per provider.
func ExtractPricePoints(doc io.Reader, datePath, closePath string) (PriceSeries, error) {
	var jobj any
	if err := json.NewDecoder(doc).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decoding provider document: %w", err)
	}

	dates, err := jsonpath.Get(datePath, jobj)
	if err != nil {
		return nil, fmt.Errorf("extracting dates with %q: %w", datePath, err)
	}
	closes, err := jsonpath.Get(closePath, jobj)
	if err != nil {
		return nil, fmt.Errorf("extracting closes with %q: %w", closePath, err)
	}

	dateList, ok := dates.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q: expected a list, got %T", datePath, dates)
	}
	closeList, ok := closes.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q: expected a list, got %T", closePath, closes)
	}
	if len(dateList) != len(closeList) {
		return nil, fmt.Errorf("date and close lists differ in length: %d vs %d", len(dateList), len(closeList))
	}

	series := make(PriceSeries, 0, len(dateList))
	for i := range dateList {
		str, ok := dateList[i].(string)
		if !ok {
			return nil, fmt.Errorf("date %d: expected a string, got %T", i, dateList[i])
		}
		on, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("date %d: %w", i, err)
		}
		close, ok := closeList[i].(float64)
		if !ok {
			return nil, fmt.Errorf("close %d: expected a number, got %T", i, closeList[i])
		}
		series = append(series, PricePoint{Date: on, Close: close})
	}
	return series.Normalize(), nil
}
