package folio

import "sort"

// PricePoint is a single closing price on a calendar day, exchange-local.
type PricePoint struct {
	Date  Date    `json:"date"`
	Close float64 `json:"close"`
}

// PriceSeries is a daily close series for one symbol. All lookups assume
// the series is normalized: ascending by date, one point per day.
type PriceSeries []PricePoint

// Normalize returns the series sorted ascending with duplicate days
// collapsed (the last point of a day wins). The receiver is not modified.
func (s PriceSeries) Normalize() PriceSeries {
	out := make(PriceSeries, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	dedup := out[:0]
	for _, p := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Date == p.Date {
			dedup[n-1] = p
			continue
		}
		dedup = append(dedup, p)
	}
	return dedup
}

// CloseAsOf returns the most recent close on or before the given date.
// Gaps are never interpolated. The second return is false when the series
// has no point on or before the date.
func (s PriceSeries) CloseAsOf(on Date) (float64, bool) {
	// first index strictly after 'on'
	i := sort.Search(len(s), func(i int) bool { return s[i].Date.After(on) })
	if i == 0 {
		return 0, false
	}
	return s[i-1].Close, true
}

// AsOf returns the most recent point on or before the given date.
func (s PriceSeries) AsOf(on Date) (PricePoint, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].Date.After(on) })
	if i == 0 {
		return PricePoint{}, false
	}
	return s[i-1], true
}

// First returns the earliest point of a normalized series.
func (s PriceSeries) First() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[0], true
}

// Returns computes the day-over-day simple returns of the series. A leg
// starting from a non-positive close contributes 0, the zero-basis
// safeguard shared with the history builder.
func (s PriceSeries) Returns() []float64 {
	if len(s) < 2 {
		return nil
	}
	out := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		prev := s[i-1].Close
		if prev <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (s[i].Close-prev)/prev)
	}
	return out
}
