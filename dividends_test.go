package folio

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestReinvest(t *testing.T) {
	purchase := NewDate(2024, time.January, 1)
	prices := PriceSeries{
		{Date: day(1), Close: 100},
		{Date: day(10), Close: 110},
		{Date: day(20), Close: 121},
	}
	dividends := []DividendRecord{
		{Date: day(5), AmountPerShare: 11}, // reinvested at the next price, 110
	}
	curve := Reinvest(prices, dividends, purchase)
	if len(curve) != 3 {
		t.Fatalf("len = %d, want 3", len(curve))
	}
	if curve[0].TotalShares != 1 || curve[0].AdjustedValue != 100 {
		t.Errorf("start = %+v, want 1 share worth 100", curve[0])
	}
	// 11 / 110 = 0.1 extra shares
	if math.Abs(curve[1].TotalShares-1.1) > 1e-12 {
		t.Errorf("shares after dividend = %v, want 1.1", curve[1].TotalShares)
	}
	if math.Abs(curve[1].AdjustedValue-121) > 1e-9 {
		t.Errorf("value after dividend = %v, want 121", curve[1].AdjustedValue)
	}
	// total return: (1.1*121 - 100) / 100 = 33.1%
	if !curve[2].ReturnPercent.Equal(33.1) {
		t.Errorf("final return = %s, want 33.10%%", curve[2].ReturnPercent)
	}
}

func TestReinvest_FiltersPrePurchaseDividends(t *testing.T) {
	purchase := day(10)
	prices := PriceSeries{
		{Date: day(1), Close: 100},
		{Date: day(15), Close: 100},
	}
	dividends := []DividendRecord{
		{Date: day(5), AmountPerShare: 50}, // before purchase, not entitled
	}
	curve := Reinvest(prices, dividends, purchase)
	last := curve[len(curve)-1]
	if last.TotalShares != 1 {
		t.Errorf("shares = %v, want 1 (pre-purchase dividend ignored)", last.TotalShares)
	}
}

func TestReinvest_Deterministic(t *testing.T) {
	purchase := day(1)
	prices := PriceSeries{
		{Date: day(1), Close: 50.13},
		{Date: day(3), Close: 51.07},
		{Date: day(7), Close: 49.92},
		{Date: day(12), Close: 52.40},
	}
	dividends := []DividendRecord{
		{Date: day(2), AmountPerShare: 0.37},
		{Date: day(9), AmountPerShare: 0.41},
	}
	first := Reinvest(prices, dividends, purchase)
	second := Reinvest(prices, dividends, purchase)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical inputs differ")
	}
}

func TestReinvest_Empty(t *testing.T) {
	if curve := Reinvest(nil, nil, day(1)); curve != nil {
		t.Errorf("Reinvest(nil) = %v, want nil", curve)
	}
}

func TestFilterDividends(t *testing.T) {
	dividends := []DividendRecord{
		{Date: day(1), AmountPerShare: 1},
		{Date: day(5), AmountPerShare: 2},
		{Date: day(9), AmountPerShare: 3},
	}
	got := FilterDividends(dividends, day(5))
	if len(got) != 2 || got[0].Date != day(5) {
		t.Errorf("FilterDividends() = %v, want the on/after-purchase records", got)
	}
}
