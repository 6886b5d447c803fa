package whatif

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value as a major-unit decimal plus a currency code.
type Money struct {
	value decimal.Decimal
	cur   string
}

func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// M creates a Money value in the given currency.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD creates a Money value in US dollars, the app's only display currency.
func USD[T float32 | float64 | int | int64 | decimal.Decimal](value T) Money {
	return M(value, "USD")
}

// currency returns a never-nil currency for formatting.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit leading sign.
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

func (m Money) Currency() string          { return m.cur }
func (m Money) AsFloat() float64          { return m.value.InexactFloat64() }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money      { return Money{value: m.value.Div(q.value), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

// cur makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// Quantity represents a number of shares or coins. Fractional holdings are the
// norm here, so it is a plain decimal.
type Quantity struct{ value decimal.Decimal }

// Q creates a Quantity.
func Q[T float32 | float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Add(r Quantity) Quantity { return Quantity{value: q.value.Add(r.value)} }
func (q Quantity) AsFloat() float64        { return q.value.InexactFloat64() }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) Equal(r Quantity) bool   { return q.value.Equal(r.value) }

func (q Quantity) String() string { return q.value.String() }

// Percent is a rate expressed in percent points (42.5 means 42.5%).
type Percent float64

// Equal compares two percents with a fixed tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// SignedString renders the percent with an explicit sign, or "-" when zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
