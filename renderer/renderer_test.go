package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/folioquant/folio"
)

func day(d int) folio.Date {
	return folio.NewDate(2024, time.January, 1).Add(d - 1)
}

func TestSummaryMarkdown(t *testing.T) {
	summaries := map[string]folio.PortfolioSummary{
		"USD": {
			Currency:             "USD",
			CurrentValue:         folio.M(1500, "USD"),
			TotalInvested:        folio.M(1000, "USD"),
			TotalGainLoss:        folio.M(500, "USD"),
			TotalGainLossPercent: 50,
			HoldingsCount:        1,
			DividendsCollected:   folio.M(10, "USD"),
		},
		"EUR": {
			Currency:      "EUR",
			CurrentValue:  folio.M(200, "EUR"),
			TotalInvested: folio.M(200, "EUR"),
			HoldingsCount: 2,
		},
	}
	allocations := []folio.AssetAllocation{
		{AssetType: folio.Stock, Value: folio.M(1500, "USD"), Count: 1, Percentage: 88.24},
		{AssetType: folio.Crypto, Value: folio.M(200, "USD"), Count: 2, Percentage: 11.76},
	}

	got := SummaryMarkdown(summaries, allocations)

	for _, want := range []string{
		"# Portfolio Summary",
		"+50.00%",
		"## Allocation",
		"stock",
		"88.24%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown missing %q in:\n%s", want, got)
		}
	}
	// currencies come out in a deterministic order
	if strings.Index(got, "EUR") > strings.Index(got, "USD") {
		t.Error("currencies not sorted")
	}
}

func TestMetricsMarkdown_NilsAsNA(t *testing.T) {
	cagr := 0.10
	m := folio.Metrics{CAGR: &cagr} // everything else absent
	got := MetricsMarkdown(m, folio.PeriodSummary{Date: day(10)})

	if !strings.Contains(got, "+10.00%") {
		t.Errorf("CAGR not rendered:\n%s", got)
	}
	if strings.Count(got, "n/a") != 6 {
		t.Errorf("want 6 n/a cells, got %d:\n%s", strings.Count(got, "n/a"), got)
	}
	if strings.Contains(got, "NaN") {
		t.Error("rendered a NaN")
	}
}

func TestHistoryMarkdown(t *testing.T) {
	adjusted := []folio.AdjustedEntry{
		{Date: day(1), AdjustedValue: 100, DailyReturn: 0},
		{Date: day(2), AdjustedValue: 110, DailyReturn: 0.10},
	}
	liquid := []folio.AdjustedEntry{
		{Date: day(1), AdjustedValue: 100},
		{Date: day(2), AdjustedValue: 105},
	}

	got := HistoryMarkdown("USD", adjusted, liquid)
	// table headers come out upper-cased
	for _, want := range []string{"LIQUID INDEX", "110.00", "105.00", "+10.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown missing %q in:\n%s", want, got)
		}
	}

	// without the liquid sleeve the column disappears
	if got := HistoryMarkdown("USD", adjusted, nil); strings.Contains(got, "LIQUID INDEX") {
		t.Error("liquid column rendered without liquid entries")
	}
}

func TestGainsMarkdown(t *testing.T) {
	assets := []folio.AssetPnL{
		{
			Symbol: "AAPL", AssetType: folio.Stock, Currency: "USD",
			Realized:   folio.M(500, "USD"),
			Unrealized: folio.M(250, "USD"),
			Total:      folio.M(750, "USD"),
			ROIPercent: 25,
		},
		{
			Symbol: "GONE", AssetType: folio.Stock, Currency: "USD",
			Realized: folio.M(0, "USD"), Unrealized: folio.M(0, "USD"),
			Total: folio.M(0, "USD"), Closed: true,
		},
	}
	totals := folio.PnLTotals{
		Currency: "USD",
		Realized: folio.M(500, "USD"), Unrealized: folio.M(250, "USD"),
		Total: folio.M(750, "USD"), ROIPercent: 25,
	}

	got := GainsMarkdown(assets, totals)
	if !strings.Contains(got, "AAPL") || !strings.Contains(got, "+25.00%") {
		t.Errorf("GainsMarkdown missing rows:\n%s", got)
	}
	if strings.Contains(got, "GONE") {
		t.Error("zero-gain closed position should be elided")
	}
}

func TestBenchmarkMarkdown(t *testing.T) {
	history := []folio.HistoryEntry{
		{Date: day(1), Value: 1000},
		{Date: day(2), Value: 1100},
	}
	benchmark := []folio.BenchmarkPoint{
		{Date: day(1), Value: 1000, Shares: 10},
		{Date: day(2), Value: 1050, Shares: 10},
	}

	got := BenchmarkMarkdown("SPY", history, benchmark)
	for _, want := range []string{"vs SPY", "+50.00", "Final spread: +4.76%"} {
		if !strings.Contains(got, want) {
			t.Errorf("BenchmarkMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestReinvestmentMarkdown(t *testing.T) {
	points := []folio.ReinvestmentPoint{
		{Date: day(1), TotalShares: 1, AdjustedValue: 100, ReturnPercent: 0},
		{Date: day(30), TotalShares: 1.1, AdjustedValue: 121, ReturnPercent: 21},
	}
	got := ReinvestmentMarkdown("KO", points)
	if !strings.Contains(got, "1.100000") || !strings.Contains(got, "+21.00%") {
		t.Errorf("ReinvestmentMarkdown missing values:\n%s", got)
	}
}
