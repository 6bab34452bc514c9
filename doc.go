// Package folio is a portfolio analytics engine: a set of pure functions
// that turn holdings, a trade ledger, and historical price series into
// valuations, time-weighted and money-weighted returns, risk statistics,
// dividend-reinvested total returns, and cash-flow-adjusted benchmark
// comparisons.
//
// The engine deliberately owns no I/O. Callers supply already-fetched,
// already-parsed inputs (price points, holdings, trades, exchange rates)
// and receive plain values back. Every function is a synchronous
// transformation with no shared state, so independent computations can be
// run concurrently without coordination.
//
// The core calculators are:
//   - Valuation and allocation: invested capital, market value and
//     gain/loss per holding and aggregated per currency or asset type.
//   - Cash-flow-adjusted history: a flow-neutral daily index on which
//     time-weighted statistics are measured.
//   - XIRR: the money-weighted return of an irregular cash-flow schedule.
//   - Risk metrics: CAGR, volatility, Sharpe, Sortino, max drawdown and
//     beta against a benchmark, all with a strict "absent, never NaN"
//     contract on degenerate inputs.
//   - Dividend reinvestment: a total-return price curve for a single
//     share with dividends buying fractional shares.
//   - Currency unification and benchmark tracking: mixed-currency
//     positions expressed in one reporting currency, and a benchmark
//     curve adjusted for the portfolio's own external cash flows.
//   - Realized/unrealized P&L: FIFO lot matching over the trade ledger,
//     reconciled with open positions.
//
// This package is the foundation of the `fq` command-line tool, which is
// only a thin file-decoding and report-rendering shell around it.
package folio
