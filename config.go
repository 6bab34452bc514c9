package folio

// Config carries the numeric conventions of the engine. It is passed
// explicitly to the calculators that need it; there is no ambient state.
type Config struct {
	// RiskFreeRate is the annualized risk-free rate used by Sharpe and
	// Sortino, as a fraction (0.025 for 2.5%/yr).
	RiskFreeRate float64
	// TradingDays is the annualization factor for daily statistics.
	TradingDays int
	// DaysPerYear is the day-count convention for CAGR and XIRR.
	DaysPerYear float64
}

// DefaultConfig returns the conventional constants: 2.5%/yr risk free,
// 252 trading days, 365-day years.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate: 0.025,
		TradingDays:  252,
		DaysPerYear:  365,
	}
}
