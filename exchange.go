package gbce

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateSymbol reports an attempt to register a symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	// ErrUnknownSymbol reports a lookup for a symbol never registered.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Exchange is a registry of stocks keyed by symbol. It is the sole owner of
// its stocks: they are created through the factory methods and never
// removed, and a symbol is never reassigned to a different stock.
type Exchange struct {
	mu     sync.RWMutex
	clock  Clock
	stocks map[string]Stock
}

// NewExchange creates an empty exchange on the system clock.
func NewExchange() *Exchange { return NewExchangeClock(time.Now) }

// NewExchangeClock creates an empty exchange on the given clock, propagated
// to the ledger of every stock it creates.
func NewExchangeClock(now Clock) *Exchange {
	return &Exchange{clock: now, stocks: make(map[string]Stock)}
}

// NewCommonStock creates and registers a common stock. It fails with
// ErrDuplicateSymbol when the symbol is taken, leaving the registered stock
// untouched.
func (e *Exchange) NewCommonStock(symbol string, lastDividend, parValue Money) (*CommonStock, error) {
	s, err := NewCommonStock(symbol, lastDividend, parValue, e.clock)
	if err != nil {
		return nil, err
	}
	if err := e.register(s); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPreferredStock creates and registers a preferred stock. It fails with
// ErrDuplicateSymbol when the symbol is taken, leaving the registered stock
// untouched.
func (e *Exchange) NewPreferredStock(symbol string, lastDividend Money, rate float64, parValue Money) (*PreferredStock, error) {
	s, err := NewPreferredStock(symbol, lastDividend, rate, parValue, e.clock)
	if err != nil {
		return nil, err
	}
	if err := e.register(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Exchange) register(s Stock) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.stocks[s.Symbol()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, s.Symbol())
	}
	e.stocks[s.Symbol()] = s
	return nil
}

// Stock returns the stock registered with this symbol, or ErrUnknownSymbol.
func (e *Exchange) Stock(symbol string) (Stock, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.stocks[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return s, nil
}

// Symbols returns every registered symbol in lexical order.
func (e *Exchange) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.stocks))
}

// Stocks returns every registered stock in lexical symbol order.
func (e *Exchange) Stocks() iter.Seq[Stock] {
	return func(yield func(Stock) bool) {
		e.mu.RLock()
		stocks := make([]Stock, 0, len(e.stocks))
		for _, symbol := range slices.Sorted(maps.Keys(e.stocks)) {
			stocks = append(stocks, e.stocks[symbol])
		}
		e.mu.RUnlock()
		for _, s := range stocks {
			if !yield(s) {
				return
			}
		}
	}
}

// AllShareIndex returns the geometric mean of the volume-weighted price of
// every registered stock over the default window. Stocks whose VWSP is
// undefined or not positive are omitted rather than zeroing out the index;
// it reports ok=false when no stock qualifies.
//
// The mean is computed as exp(mean(ln vwsp)) instead of the direct
// product-then-nth-root, so it neither overflows nor underflows when the
// stock count or the price magnitudes grow.
func (e *Exchange) AllShareIndex() (Money, bool) {
	return e.allShareIndex(DefaultWindow)
}

func (e *Exchange) allShareIndex(window time.Duration) (Money, bool) {
	var logSum float64
	var n int
	for s := range e.Stocks() {
		vwsp, ok := s.VolumeWeightedPrice(window)
		if !ok || !vwsp.IsPositive() {
			continue
		}
		logSum += math.Log(vwsp.value.InexactFloat64())
		n++
	}
	if n == 0 {
		return Money{}, false
	}
	return M(decimal.NewFromFloat(math.Exp(logSum / float64(n)))).Round(), true
}
