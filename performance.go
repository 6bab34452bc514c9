package folio

// Performance holds the index value at both ends of a window and the
// return over it.
type Performance struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Return Percent `json:"return"`
}

// PeriodSummary slices the flow-neutral index into the usual calendar
// windows ending at a given date. Because the index is flow-neutral, a
// deposit never shows up as a gain in any window.
type PeriodSummary struct {
	Date      Date        `json:"date"`
	Daily     Performance `json:"daily"`
	WTD       Performance `json:"wtd"`
	MTD       Performance `json:"mtd"`
	QTD       Performance `json:"qtd"`
	YTD       Performance `json:"ytd"`
	Inception Performance `json:"inception"`
}

// PeriodReturns computes day, week-to-date, month-to-date, quarter-to-date,
// year-to-date and inception returns of the adjusted index as of a date.
// Windows starting before the index existed, or at a zero value, report a
// zero return rather than failing.
func PeriodReturns(adjusted []AdjustedEntry, asOf Date) PeriodSummary {
	end := indexAsOf(adjusted, asOf)
	summary := PeriodSummary{Date: asOf}
	summary.Daily = windowPerformance(adjusted, asOf.Add(-1), end)
	summary.WTD = windowPerformance(adjusted, asOf.StartOf(Weekly).Add(-1), end)
	summary.MTD = windowPerformance(adjusted, asOf.StartOf(Monthly).Add(-1), end)
	summary.QTD = windowPerformance(adjusted, asOf.StartOf(Quarterly).Add(-1), end)
	summary.YTD = windowPerformance(adjusted, asOf.StartOf(Yearly).Add(-1), end)
	if len(adjusted) > 0 {
		summary.Inception = newPerformance(adjusted[0].AdjustedValue, end)
	}
	return summary
}

// windowPerformance measures the index between the value at the window
// start (the close of the day before the period begins) and the end value.
func windowPerformance(adjusted []AdjustedEntry, startDate Date, end float64) Performance {
	return newPerformance(indexAsOf(adjusted, startDate), end)
}

func newPerformance(start, end float64) Performance {
	p := Performance{Start: start, End: end}
	if start > 0 {
		p.Return = Percent(100 * (end - start) / start)
	}
	return p
}

// indexAsOf returns the adjusted index value on the most recent day on or
// before the given date, 0 before inception.
func indexAsOf(adjusted []AdjustedEntry, on Date) float64 {
	var value float64
	for _, e := range adjusted {
		if e.Date.After(on) {
			break
		}
		value = e.AdjustedValue
	}
	return value
}
