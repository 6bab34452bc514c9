package folio

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// index builds an adjusted series from daily values starting at a date.
func index(start Date, values ...float64) []AdjustedEntry {
	out := make([]AdjustedEntry, 0, len(values))
	for i, v := range values {
		e := AdjustedEntry{Date: start.Add(i), AdjustedValue: v}
		if i > 0 && values[i-1] > 0 {
			e.DailyReturn = (v - values[i-1]) / values[i-1]
		}
		out = append(out, e)
	}
	return out
}

func TestCAGR(t *testing.T) {
	cfg := DefaultConfig()

	// 1000 -> 1210 over exactly two years is 10%/yr.
	adjusted := []AdjustedEntry{
		{Date: NewDate(2022, time.January, 1), AdjustedValue: 1000},
		{Date: NewDate(2024, time.January, 1), AdjustedValue: 1210},
	}
	got, ok := CAGR(adjusted, cfg)
	require.True(t, ok)
	assert.InDelta(t, 0.10, got, 0.001)

	// sub-day span is rejected
	sameDay := []AdjustedEntry{
		{Date: NewDate(2024, time.January, 1), AdjustedValue: 1000},
		{Date: NewDate(2024, time.January, 1), AdjustedValue: 2000},
	}
	_, ok = CAGR(sameDay, cfg)
	assert.False(t, ok)

	// leading zero values are skipped, not fatal
	withZeros := append(index(NewDate(2023, time.January, 1), 0, 0), adjusted...)
	got, ok = CAGR(withZeros, cfg)
	require.True(t, ok)
	assert.InDelta(t, 0.10, got, 0.001)

	_, ok = CAGR(nil, cfg)
	assert.False(t, ok)
}

func TestVolatility(t *testing.T) {
	cfg := DefaultConfig()

	_, ok := Volatility([]float64{0.01}, cfg)
	assert.False(t, ok, "a single return has no deviation")

	vol, ok := Volatility([]float64{0.01, 0.01, 0.01}, cfg)
	require.True(t, ok)
	assert.Zero(t, vol, "constant returns have zero volatility")

	vol, ok = Volatility([]float64{0.01, -0.01, 0.02, -0.02}, cfg)
	require.True(t, ok)
	assert.InDelta(t, stdev([]float64{0.01, -0.01, 0.02, -0.02})*math.Sqrt(252), vol, 1e-12)
}

func TestSharpeRatio(t *testing.T) {
	cfg := DefaultConfig()

	_, ok := SharpeRatio([]float64{0.01, 0.01, 0.01}, cfg)
	assert.False(t, ok, "zero volatility leaves Sharpe undefined")

	returns := []float64{0.01, -0.005, 0.02, -0.01, 0.015}
	got, ok := SharpeRatio(returns, cfg)
	require.True(t, ok)
	vol, _ := Volatility(returns, cfg)
	want := (mean(returns)*252 - cfg.RiskFreeRate) / vol
	assert.InDelta(t, want, got, 1e-12)
}

func TestSortinoRatio_NoNegativeDays(t *testing.T) {
	cfg := DefaultConfig()
	_, ok := SortinoRatio([]float64{0.01, 0.0, 0.02, 0.03}, cfg)
	assert.False(t, ok, "Sortino is undefined without a losing day, not infinite")
}

func TestSortinoRatio(t *testing.T) {
	cfg := DefaultConfig()
	returns := []float64{0.01, -0.02, 0.03, -0.01, 0.02}
	got, ok := SortinoRatio(returns, cfg)
	require.True(t, ok)
	dd := stdev([]float64{-0.02, -0.01}) * math.Sqrt(252)
	want := (mean(returns)*252 - cfg.RiskFreeRate) / dd
	assert.InDelta(t, want, got, 1e-12)
}

func TestMaxDrawdown(t *testing.T) {
	adjusted := index(NewDate(2024, time.January, 1), 100, 120, 90, 110, 130, 65)
	got, ok := MaxDrawdown(adjusted)
	require.True(t, ok)
	// worst decline: 130 -> 65 = -50%
	assert.InDelta(t, -50, got, 1e-9)
	assert.LessOrEqual(t, got, 0.0)
	assert.GreaterOrEqual(t, got, -100.0)

	_, ok = MaxDrawdown(nil)
	assert.False(t, ok)

	flat, ok := MaxDrawdown(index(NewDate(2024, time.January, 1), 100, 100))
	require.True(t, ok)
	assert.Zero(t, flat)
}

func TestBeta_InsufficientData(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	adjusted := index(start, 100, 101, 102)
	benchmark := PriceSeries{{Date: start, Close: 50}, {Date: start.Add(1), Close: 51}}
	_, ok := Beta(adjusted, benchmark)
	assert.False(t, ok, "fewer than 30 aligned dates must yield no beta")
}

func TestBeta_TracksBenchmark(t *testing.T) {
	// an asset that moves exactly like the benchmark has beta 1.
	start := NewDate(2024, time.January, 1)
	var adjusted []AdjustedEntry
	var benchmark PriceSeries
	value := 100.0
	for i := 0; i < 40; i++ {
		move := 1 + 0.01*math.Sin(float64(i))
		value *= move
		adjusted = append(adjusted, AdjustedEntry{Date: start.Add(i), AdjustedValue: value})
		benchmark = append(benchmark, PricePoint{Date: start.Add(i), Close: value / 2})
	}
	got, ok := Beta(adjusted, benchmark)
	require.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestBeta_FlatBenchmark(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	var adjusted []AdjustedEntry
	var benchmark PriceSeries
	for i := 0; i < 40; i++ {
		adjusted = append(adjusted, AdjustedEntry{Date: start.Add(i), AdjustedValue: 100 + float64(i)})
		benchmark = append(benchmark, PricePoint{Date: start.Add(i), Close: 50})
	}
	_, ok := Beta(adjusted, benchmark)
	assert.False(t, ok, "zero benchmark variance must yield no beta")
}

func TestComputeMetrics_PartialResults(t *testing.T) {
	cfg := DefaultConfig()
	// two entries: CAGR and drawdown computable, Sortino has no losing
	// day, beta has no benchmark, XIRR has no flows. One missing metric
	// must not suppress the others.
	adjusted := []AdjustedEntry{
		{Date: NewDate(2023, time.January, 1), AdjustedValue: 1000},
		{Date: NewDate(2024, time.January, 1), AdjustedValue: 1100, DailyReturn: 0.1},
	}
	m := ComputeMetrics(adjusted, nil, nil, cfg)
	assert.NotNil(t, m.CAGR)
	assert.NotNil(t, m.MaxDrawdown)
	assert.Nil(t, m.XIRR)
	assert.Nil(t, m.SortinoRatio)
	assert.Nil(t, m.Beta)
}

func TestMetrics_JSONNulls(t *testing.T) {
	data, err := json.Marshal(Metrics{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cagr":null`)
	assert.Contains(t, string(data), `"beta":null`)
}
