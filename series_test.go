package folio

import (
	"testing"
)

func TestPriceSeries_Normalize(t *testing.T) {
	s := PriceSeries{
		{Date: day(3), Close: 30},
		{Date: day(1), Close: 10},
		{Date: day(3), Close: 33}, // duplicate day, last wins
		{Date: day(2), Close: 20},
	}
	n := s.Normalize()
	if len(n) != 3 {
		t.Fatalf("len = %d, want 3", len(n))
	}
	if n[0].Date != day(1) || n[2].Date != day(3) {
		t.Errorf("not sorted: %v", n)
	}
	if n[2].Close != 33 {
		t.Errorf("duplicate day close = %v, want 33 (last wins)", n[2].Close)
	}
	if len(s) != 4 {
		t.Error("Normalize must not modify the receiver")
	}
}

func TestPriceSeries_CloseAsOf(t *testing.T) {
	s := PriceSeries{
		{Date: day(2), Close: 20},
		{Date: day(5), Close: 50},
	}
	if _, ok := s.CloseAsOf(day(1)); ok {
		t.Error("CloseAsOf before the first point must fail")
	}
	if close, ok := s.CloseAsOf(day(2)); !ok || close != 20 {
		t.Errorf("CloseAsOf(day 2) = %v, %v; want 20, true", close, ok)
	}
	// gap: most recent prior point, never interpolation
	if close, ok := s.CloseAsOf(day(4)); !ok || close != 20 {
		t.Errorf("CloseAsOf(day 4) = %v, %v; want 20, true", close, ok)
	}
	if close, ok := s.CloseAsOf(day(9)); !ok || close != 50 {
		t.Errorf("CloseAsOf(day 9) = %v, %v; want 50, true", close, ok)
	}
}

func TestPriceSeries_Returns(t *testing.T) {
	s := PriceSeries{
		{Date: day(1), Close: 100},
		{Date: day(2), Close: 110},
		{Date: day(3), Close: 99},
	}
	r := s.Returns()
	if len(r) != 2 {
		t.Fatalf("len = %d, want 2", len(r))
	}
	if r[0] != 0.10 || r[1] != -0.10 {
		t.Errorf("returns = %v, want [0.10 -0.10]", r)
	}
	if got := (PriceSeries{{Date: day(1), Close: 1}}).Returns(); got != nil {
		t.Errorf("single point returns = %v, want nil", got)
	}
}
