package gbce

import "github.com/shopspring/decimal"

// Percent is a percentage value, exact to 2 fractional digits.
type Percent struct {
	value decimal.Decimal
}

// percent builds a Percent from the exact ratio num/den, scaled to a
// percentage and rounded once.
func percent(num, den decimal.Decimal) Percent {
	return Percent{value: num.Mul(hundred).Div(den).Round(2)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}
