package folio

import "math"

// Metrics is the risk and performance panel of the portfolio. Every field
// is absent (nil, JSON null) when its statistic is undefined for the given
// inputs; no field is ever NaN or infinite, and a failure to compute one
// metric never prevents the others from being filled.
type Metrics struct {
	CAGR         *float64 `json:"cagr"`
	XIRR         *float64 `json:"xirr"`
	MaxDrawdown  *float64 `json:"maxDrawdown"`
	Volatility   *float64 `json:"volatility"`
	SharpeRatio  *float64 `json:"sharpeRatio"`
	SortinoRatio *float64 `json:"sortinoRatio"`
	Beta         *float64 `json:"beta"`
}

// ComputeMetrics fills the whole panel from a flow-neutral adjusted
// history, an optional cash-flow schedule for XIRR, and an optional
// benchmark series for beta. Each metric is computed independently.
func ComputeMetrics(adjusted []AdjustedEntry, flows []CashFlow, benchmark PriceSeries, cfg Config) Metrics {
	var m Metrics
	if v, ok := CAGR(adjusted, cfg); ok {
		m.CAGR = &v
	}
	if v, ok := XIRR(flows); ok {
		m.XIRR = &v
	}
	if v, ok := MaxDrawdown(adjusted); ok {
		m.MaxDrawdown = &v
	}
	returns := dailyReturns(adjusted)
	if v, ok := Volatility(returns, cfg); ok {
		m.Volatility = &v
	}
	if v, ok := SharpeRatio(returns, cfg); ok {
		m.SharpeRatio = &v
	}
	if v, ok := SortinoRatio(returns, cfg); ok {
		m.SortinoRatio = &v
	}
	if v, ok := Beta(adjusted, benchmark); ok {
		m.Beta = &v
	}
	return m
}

// minCAGRYears rejects windows shorter than one day, which would blow up
// the exponent.
const minCAGRYears = 1.0 / 365.0

// CAGR is the compound annual growth rate of the adjusted index, measured
// from the first entry with a positive value. It is absent for windows
// shorter than a day, non-positive bases, and non-finite or absurd
// (>10^6%) results.
func CAGR(adjusted []AdjustedEntry, cfg Config) (float64, bool) {
	start := -1
	for i, e := range adjusted {
		if e.AdjustedValue > 0 {
			start = i
			break
		}
	}
	if start < 0 || start == len(adjusted)-1 {
		return 0, false
	}
	first, last := adjusted[start], adjusted[len(adjusted)-1]
	years := float64(last.Date.Sub(first.Date)) / cfg.DaysPerYear
	if years < minCAGRYears || last.AdjustedValue <= 0 {
		return 0, false
	}
	cagr := math.Pow(last.AdjustedValue/first.AdjustedValue, 1/years) - 1
	if !isFinite(cagr) || cagr > 1e4 {
		return 0, false
	}
	return cagr, true
}

// Volatility is the annualized standard deviation of daily returns.
func Volatility(returns []float64, cfg Config) (float64, bool) {
	if len(returns) < 2 {
		return 0, false
	}
	sd := stdev(returns)
	v := sd * math.Sqrt(float64(cfg.TradingDays))
	if !isFinite(v) {
		return 0, false
	}
	return v, true
}

// SharpeRatio is the annualized mean excess return over the risk-free
// rate, per unit of annualized volatility. Absent when volatility is zero.
func SharpeRatio(returns []float64, cfg Config) (float64, bool) {
	vol, ok := Volatility(returns, cfg)
	if !ok || vol == 0 {
		return 0, false
	}
	annualized := mean(returns) * float64(cfg.TradingDays)
	s := (annualized - cfg.RiskFreeRate) / vol
	if !isFinite(s) {
		return 0, false
	}
	return s, true
}

// SortinoRatio is like Sharpe but penalizes only downside deviation.
// Absent when the window has no negative-return day: the ratio is
// undefined there, not infinite.
func SortinoRatio(returns []float64, cfg Config) (float64, bool) {
	if len(returns) < 2 {
		return 0, false
	}
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		return 0, false
	}
	dd := stdev(downside) * math.Sqrt(float64(cfg.TradingDays))
	if dd == 0 {
		return 0, false
	}
	annualized := mean(returns) * float64(cfg.TradingDays)
	s := (annualized - cfg.RiskFreeRate) / dd
	if !isFinite(s) {
		return 0, false
	}
	return s, true
}

// MaxDrawdown is the most negative peak-to-trough decline of the adjusted
// index, as a percentage in [-100, 0]. Absent when no entry has a positive
// value.
func MaxDrawdown(adjusted []AdjustedEntry) (float64, bool) {
	peak := 0.0
	worst := 0.0
	seen := false
	for _, e := range adjusted {
		if e.AdjustedValue <= 0 {
			continue
		}
		seen = true
		if e.AdjustedValue > peak {
			peak = e.AdjustedValue
		}
		if dd := 100 * (e.AdjustedValue - peak) / peak; dd < worst {
			worst = dd
		}
	}
	if !seen {
		return 0, false
	}
	if worst < -100 {
		worst = -100
	}
	return worst, true
}

// minBetaPoints is the minimum number of aligned asset/benchmark dates for
// a meaningful regression.
const minBetaPoints = 30

// Beta regresses the portfolio's daily returns against the benchmark's
// over their common dates (inner join, no interpolation). Absent with
// fewer than 30 aligned dates or a flat benchmark.
func Beta(adjusted []AdjustedEntry, benchmark PriceSeries) (float64, bool) {
	if len(adjusted) == 0 || len(benchmark) == 0 {
		return 0, false
	}
	benchmark = benchmark.Normalize()
	byDate := make(map[Date]float64, len(benchmark))
	for _, p := range benchmark {
		byDate[p.Date] = p.Close
	}

	var asset, bench []float64
	for _, e := range adjusted {
		if close, ok := byDate[e.Date]; ok {
			asset = append(asset, e.AdjustedValue)
			bench = append(bench, close)
		}
	}
	if len(asset) < minBetaPoints {
		return 0, false
	}

	assetReturns := simpleReturns(asset)
	benchReturns := simpleReturns(bench)
	varB := variance(benchReturns)
	if varB == 0 {
		return 0, false
	}
	beta := covariance(assetReturns, benchReturns) / varB
	if !isFinite(beta) {
		return 0, false
	}
	return beta, true
}

// --- small statistics helpers ---

func simpleReturns(values []float64) []float64 {
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (values[i]-values[i-1])/values[i-1])
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values)-1)
}

func stdev(values []float64) float64 {
	return math.Sqrt(variance(values))
}

func covariance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}
	ma, mb := mean(a[:n]), mean(b[:n])
	var sum float64
	for i := 0; i < n; i++ {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(n-1)
}
