package folio

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. Arithmetic is
// exact (decimal); the currency matters for display and for the mismatch
// guard on binary operators.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// M builds a Money value from any numeric type.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's own formatting rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money      { return Money{value: m.value.Div(q.value), cur: m.cur} }
func (m Money) DivPrice(p Money) Quantity { return Quantity{value: m.value.Div(p.value)} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// AsFloat converts to float64 for the statistics layer, where exactness no
// longer matters.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// cur resolves the currency of a binary operation, treating "" as weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// moneyJSON is the wire shape for Money.
type moneyJSON struct {
	Currency string          `json:"currency,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Currency: m.cur, Amount: m.value})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var w moneyJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.value, m.cur = w.Amount, w.Currency
	return nil
}
