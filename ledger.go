package gbce

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
	"sync"
	"time"
)

// ErrInvalidTrade reports a trade rejected by validation. The ledger is
// left untouched; there is no partial append.
var ErrInvalidTrade = errors.New("invalid trade")

// TradeLedger is the append-only record of the trades executed on a single
// stock.
//
// In a TradeLedger trades are always in insertion order, which is also
// timestamp order since timestamps are assigned at insertion time. Trades
// are never edited or removed. Appends are serialized under a per-ledger
// lock; readers observe a consistent snapshot of this one ledger.
type TradeLedger struct {
	mu     sync.Mutex
	now    Clock
	symbol string
	trades []Trade
}

// NewTradeLedger creates an empty ledger for symbol, stamping trades with
// the given clock.
func NewTradeLedger(symbol string, now Clock) *TradeLedger {
	return &TradeLedger{now: now, symbol: symbol}
}

// Record validates and appends a trade timestamped with the current clock,
// and returns the trade as recorded. It fails with ErrInvalidTrade when the
// quantity or the price is not strictly positive.
func (l *TradeLedger) Record(quantity int64, indicator TradeIndicator, price Money) (Trade, error) {
	if quantity <= 0 {
		return Trade{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidTrade, quantity)
	}
	if !price.IsPositive() {
		return Trade{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidTrade, price)
	}
	t := Trade{Timestamp: l.now(), Quantity: quantity, Indicator: indicator, Price: price}
	l.append(t)
	log.Printf("recorded %s trade: %d shares of %s @ %s", indicator, quantity, l.symbol, price)
	return t, nil
}

// record appends a trade carrying its own timestamp. Journal replay only;
// the public path is Record.
func (l *TradeLedger) record(t Trade) { l.append(t) }

func (l *TradeLedger) append(t Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trades = append(l.trades, t)
}

// Since returns the trades whose timestamp is no older than window before
// now. The cutoff is re-evaluated against the clock on every iteration, so
// successive calls over a moving clock see different trade sets; a
// non-monotonic clock merely changes the selection, it is not an error.
func (l *TradeLedger) Since(window time.Duration) iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		cutoff := l.now().Add(-window)
		for _, t := range l.snapshot() {
			if t.Timestamp.Before(cutoff) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// All returns every trade ever recorded, in insertion order.
func (l *TradeLedger) All() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.snapshot() {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the total number of recorded trades.
func (l *TradeLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.trades)
}

func (l *TradeLedger) snapshot() []Trade {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.trades)
}
