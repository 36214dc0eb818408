package gbce

import "github.com/shopspring/decimal"

// Ratio is a dimensionless quotient of two monetary values, such as a
// price/earnings multiple. Unlike Money it is not forced to 2 fractional
// digits: it is a ratio, not a currency amount.
type Ratio struct {
	value decimal.Decimal
}

func (r Ratio) Equal(q Ratio) bool       { return r.value.Equal(q.value) }
func (r Ratio) Decimal() decimal.Decimal { return r.value }
func (r Ratio) String() string           { return r.value.String() }
