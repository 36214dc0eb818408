package gbce

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single currency every amount on the exchange is
// denominated in.
const currencyCode = money.GBP

var hundred = decimal.NewFromInt(100)

// Money represents a monetary value.
//
// It is backed by an exact decimal so that no computation ever goes through
// binary floating point. The canonical way to build one is from an integer
// count of pennies.
type Money struct {
	value decimal.Decimal // as major unit value
}

// Pennies returns the Money worth n minor currency units.
func Pennies(n int64) Money {
	return Money{value: decimal.NewFromInt(n).Div(hundred)}
}

// M returns the Money worth value major currency units.
func M(value decimal.Decimal) Money { return Money{value: value} }

// ParseMoney parses a decimal string such as "95.50" into a Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// Round returns the value rounded to 2 fractional digits, ties away from
// zero. This is the single rounding rule of the exchange, applied once at
// every public boundary and never on intermediates.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool  { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n int64) Money      { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }
func (m Money) DivPrice(n Money) Ratio { return Ratio{value: m.value.Div(n.value)} }

// currency returns the money's full currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, currencyCode).Currency()
}

// String returns the string representation of the money value, e.g. "£95.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) MarshalJSON() ([]byte, error)     { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
