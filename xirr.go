package folio

import "math"

// CashFlow is one dated flow of an irregular schedule. By convention
// money paid in (deposits, purchases) is negative and money received
// (withdrawals, the terminal market value) is positive.
type CashFlow struct {
	Date   Date    `json:"date"`
	Amount float64 `json:"amount"`
}

const (
	xirrMaxIterations = 100
	xirrPrecision     = 1e-7
	// bisection bounds: -99% to +1000% annualized
	xirrRateMin = -0.99
	xirrRateMax = 10.0
)

// XIRR finds the annualized discount rate that zeroes the net present
// value of the flow schedule, using a 365-day year. It is a generic root
// finder with no dependency on portfolio types.
//
// Newton-Raphson runs first with an analytic derivative; when it diverges,
// oscillates past its iteration budget, or produces a non-finite value,
// bisection over [-99%, +1000%] takes over. The second return is false for
// degenerate schedules: fewer than two flows, all flows of one sign, or
// both solvers failing.
func XIRR(flows []CashFlow) (float64, bool) {
	if len(flows) < 2 {
		return 0, false
	}
	var hasPositive, hasNegative bool
	for _, f := range flows {
		if f.Amount > 0 {
			hasPositive = true
		}
		if f.Amount < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, false
	}

	t0 := flows[0].Date
	npv := func(rate float64) float64 {
		var sum float64
		for _, f := range flows {
			years := float64(f.Date.Sub(t0)) / 365.0
			sum += f.Amount / math.Pow(1+rate, years)
		}
		return sum
	}
	dnpv := func(rate float64) float64 {
		var sum float64
		for _, f := range flows {
			years := float64(f.Date.Sub(t0)) / 365.0
			sum -= years * f.Amount / math.Pow(1+rate, years+1)
		}
		return sum
	}

	if rate, ok := newton(npv, dnpv); ok {
		return rate, true
	}
	return bisect(npv)
}

func newton(f, df func(float64) float64) (float64, bool) {
	rate := 0.1
	for i := 0; i < xirrMaxIterations; i++ {
		value := f(rate)
		deriv := df(rate)
		if !isFinite(value) || !isFinite(deriv) || deriv == 0 {
			return 0, false
		}
		next := rate - value/deriv
		if !isFinite(next) || next <= -1 {
			return 0, false
		}
		if math.Abs(next-rate) < xirrPrecision {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func bisect(f func(float64) float64) (float64, bool) {
	lo, hi := xirrRateMin, xirrRateMax
	flo, fhi := f(lo), f(hi)
	if !isFinite(flo) || !isFinite(fhi) || flo*fhi > 0 {
		return 0, false
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if !isFinite(fmid) {
			return 0, false
		}
		if math.Abs(fmid) < xirrPrecision || (hi-lo)/2 < xirrPrecision {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return 0, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
