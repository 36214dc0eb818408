package gbce

import (
	"fmt"
	"time"
)

// TradeIndicator classifies a trade as a buy or a sell. It is a pure
// classification: buys and sells weigh identically in every metric.
type TradeIndicator int

const (
	Buy TradeIndicator = iota
	Sell
)

func (i TradeIndicator) String() string {
	switch i {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeIndicator parses a string into a TradeIndicator.
func ParseTradeIndicator(s string) (TradeIndicator, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade indicator: %q", s)
	}
}

// Trade is one executed trade, recorded once and never mutated. A Trade
// belongs to exactly one stock's ledger.
type Trade struct {
	Timestamp time.Time
	Quantity  int64
	Indicator TradeIndicator
	Price     Money
}
