package gbce

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultWindow is the trailing window over which the volume-weighted
// stock price and the all-share index are computed.
const DefaultWindow = 5 * time.Minute

// StockKind is a typed string identifying the dividend policy of a stock.
type StockKind string

const (
	Common    StockKind = "common"
	Preferred StockKind = "preferred"
)

// Stock is an equity listed on the exchange. The two implementations,
// CommonStock and PreferredStock, share everything but the dividend-yield
// formula.
//
// The interface is sealed: only this package can implement it, which keeps
// the dividend policy a closed two-variant choice.
type Stock interface {
	Kind() StockKind
	Symbol() string
	ParValue() Money
	LastDividend() Money

	// DividendYield returns the yield at the given price as a percentage.
	// A non-positive price yields exactly 0.00: a defined value, not an
	// error.
	DividendYield(price Money) Percent

	// PERatio returns price over last dividend, unrounded. It reports
	// ok=false when the price is not positive or the last dividend is
	// zero: a defined absence, not an error.
	PERatio(price Money) (Ratio, bool)

	// RecordTrade validates and appends a trade to the stock's ledger.
	RecordTrade(quantity int64, indicator TradeIndicator, price Money) (Trade, error)

	// VolumeWeightedPrice returns the quantity-weighted average price of
	// the trades within the trailing window, rounded once. It reports
	// ok=false when no trade falls in the window.
	VolumeWeightedPrice(window time.Duration) (Money, bool)

	// Trades returns every trade ever recorded on this stock.
	Trades() iter.Seq[Trade]

	// TradesSince returns the trades recorded within the trailing window.
	TradesSince(window time.Duration) iter.Seq[Trade]

	tradeLedger() *TradeLedger
}

// stock carries the state common to both dividend policies.
type stock struct {
	symbol       string
	parValue     Money
	lastDividend Money
	ledger       *TradeLedger
}

func newStock(symbol string, lastDividend, parValue Money, now Clock) (stock, error) {
	if symbol == "" || len(symbol) > 10 {
		return stock{}, fmt.Errorf("symbol must be 1-10 characters, got %q", symbol)
	}
	if !parValue.IsPositive() {
		return stock{}, fmt.Errorf("par value must be positive, got %s", parValue)
	}
	if lastDividend.IsNegative() {
		return stock{}, fmt.Errorf("last dividend cannot be negative, got %s", lastDividend)
	}
	return stock{
		symbol:       symbol,
		parValue:     parValue,
		lastDividend: lastDividend,
		ledger:       NewTradeLedger(symbol, now),
	}, nil
}

func (s *stock) Symbol() string          { return s.symbol }
func (s *stock) ParValue() Money         { return s.parValue }
func (s *stock) LastDividend() Money     { return s.lastDividend }
func (s *stock) Trades() iter.Seq[Trade] { return s.ledger.All() }

func (s *stock) TradesSince(window time.Duration) iter.Seq[Trade] { return s.ledger.Since(window) }

func (s *stock) tradeLedger() *TradeLedger { return s.ledger }

func (s *stock) RecordTrade(quantity int64, indicator TradeIndicator, price Money) (Trade, error) {
	return s.ledger.Record(quantity, indicator, price)
}

func (s *stock) PERatio(price Money) (Ratio, bool) {
	if !price.IsPositive() || s.lastDividend.IsZero() {
		return Ratio{}, false
	}
	return price.DivPrice(s.lastDividend), true
}

func (s *stock) VolumeWeightedPrice(window time.Duration) (Money, bool) {
	var quantity int64
	weighted := decimal.Zero
	for t := range s.ledger.Since(window) {
		quantity += t.Quantity
		weighted = weighted.Add(t.Price.Mul(t.Quantity).value)
	}
	if quantity == 0 {
		return Money{}, false
	}
	return M(weighted.Div(decimal.NewFromInt(quantity))).Round(), true
}

// CommonStock pays whatever dividend was last declared.
type CommonStock struct {
	stock
}

// NewCommonStock creates a common stock, stamping its trades with the given
// clock.
func NewCommonStock(symbol string, lastDividend, parValue Money, now Clock) (*CommonStock, error) {
	s, err := newStock(symbol, lastDividend, parValue, now)
	if err != nil {
		return nil, err
	}
	return &CommonStock{stock: s}, nil
}

func (s *CommonStock) Kind() StockKind { return Common }

func (s *CommonStock) DividendYield(price Money) Percent {
	if !price.IsPositive() {
		return Percent{}
	}
	return percent(s.lastDividend.value, price.value)
}

// PreferredStock pays a fixed fraction of its par value.
type PreferredStock struct {
	stock
	rate decimal.Decimal // fixed dividend rate, in (0, 1]
}

// NewPreferredStock creates a preferred stock with a fixed dividend rate in
// the open-closed interval (0, 1].
func NewPreferredStock(symbol string, lastDividend Money, rate float64, parValue Money, now Clock) (*PreferredStock, error) {
	if rate <= 0 || rate > 1 {
		return nil, errors.New("fixed dividend rate must be in (0, 1]")
	}
	s, err := newStock(symbol, lastDividend, parValue, now)
	if err != nil {
		return nil, err
	}
	return &PreferredStock{stock: s, rate: decimal.NewFromFloat(rate)}, nil
}

func (s *PreferredStock) Kind() StockKind { return Preferred }

// FixedDividendRate returns the rate as a fraction of par value.
func (s *PreferredStock) FixedDividendRate() decimal.Decimal { return s.rate }

func (s *PreferredStock) DividendYield(price Money) Percent {
	if !price.IsPositive() {
		return Percent{}
	}
	return percent(s.rate.Mul(s.parValue.value), price.value)
}
