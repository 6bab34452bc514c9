package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/folioquant/folio"
)

// MetricsMarkdown renders the risk and performance panel. Metrics that
// could not be computed for the given inputs are shown as "n/a", per the
// engine's absent-not-NaN contract.
func MetricsMarkdown(m folio.Metrics, periods folio.PeriodSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance Metrics on %s", periods.Date))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"CAGR", ratio(m.CAGR)},
			{"XIRR", ratio(m.XIRR)},
			{"Volatility", ratio(m.Volatility)},
			{"Sharpe", number(m.SharpeRatio)},
			{"Sortino", number(m.SortinoRatio)},
			{"Max Drawdown", percent(m.MaxDrawdown)},
			{"Beta", number(m.Beta)},
		},
	})

	doc.H2("Period Returns")
	doc.Table(md.TableSet{
		Header: []string{"Period", "Return"},
		Rows: [][]string{
			{"Day", periods.Daily.Return.SignedString()},
			{"Week to date", periods.WTD.Return.SignedString()},
			{"Month to date", periods.MTD.Return.SignedString()},
			{"Quarter to date", periods.QTD.Return.SignedString()},
			{"Year to date", periods.YTD.Return.SignedString()},
			{"Inception", periods.Inception.Return.SignedString()},
		},
	})

	return doc.String()
}

// ratio formats a fractional rate (0.1 -> "+10.00%").
func ratio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return folio.Percent(*v * 100).SignedString()
}

// percent formats a value already expressed in percent.
func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return folio.Percent(*v).SignedString()
}

func number(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
