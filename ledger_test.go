package gbce

import (
	"errors"
	"testing"
	"time"
)

func TestLedger_RecordValidation(t *testing.T) {
	clock, _ := fakeClock(epoch)

	testCases := []struct {
		name     string
		quantity int64
		price    Money
	}{
		{name: "zero quantity", quantity: 0, price: Pennies(100)},
		{name: "negative quantity", quantity: -5, price: Pennies(100)},
		{name: "zero price", quantity: 10, price: Pennies(0)},
		{name: "negative price", quantity: 10, price: Pennies(-100)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewTradeLedger("TEA", clock)
			_, err := ledger.Record(tc.quantity, Buy, tc.price)
			if !errors.Is(err, ErrInvalidTrade) {
				t.Fatalf("Record() error = %v, want ErrInvalidTrade", err)
			}
			// No partial append.
			if ledger.Len() != 0 {
				t.Errorf("ledger grew to %d trades on a rejected record", ledger.Len())
			}
		})
	}
}

func TestLedger_RecordStampsClock(t *testing.T) {
	clock, advance := fakeClock(epoch)
	ledger := NewTradeLedger("TEA", clock)

	first, err := ledger.Record(10, Buy, Pennies(9550))
	if err != nil {
		t.Fatal(err)
	}
	advance(time.Minute)
	second, err := ledger.Record(20, Sell, Pennies(10230))
	if err != nil {
		t.Fatal(err)
	}

	if !first.Timestamp.Equal(epoch) {
		t.Errorf("first trade stamped %v, want %v", first.Timestamp, epoch)
	}
	if !second.Timestamp.Equal(epoch.Add(time.Minute)) {
		t.Errorf("second trade stamped %v, want %v", second.Timestamp, epoch.Add(time.Minute))
	}
}

func TestLedger_Since(t *testing.T) {
	clock, advance := fakeClock(epoch)
	ledger := NewTradeLedger("TEA", clock)

	ledger.Record(1, Buy, Pennies(100))
	advance(10 * time.Minute)
	ledger.Record(2, Buy, Pennies(200))
	advance(time.Minute)
	ledger.Record(3, Sell, Pennies(300))

	var quantities []int64
	for trade := range ledger.Since(5 * time.Minute) {
		quantities = append(quantities, trade.Quantity)
	}
	if len(quantities) != 2 || quantities[0] != 2 || quantities[1] != 3 {
		t.Errorf("Since(5m) = %v, want [2 3]", quantities)
	}

	// The sequence is restartable and re-evaluates the clock: once the
	// window slides past every trade it comes back empty.
	advance(time.Hour)
	for trade := range ledger.Since(5 * time.Minute) {
		t.Errorf("Since(5m) after 1h yielded %v", trade)
	}

	// All does not window.
	if got := ledger.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
