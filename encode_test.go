package gbce

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeExchange(t *testing.T) {
	clock, advance := fakeClock(epoch)
	e := NewExchangeClock(clock)

	tea, err := e.NewCommonStock("TEA", Pennies(0), Pennies(10000))
	if err != nil {
		t.Fatal(err)
	}
	gin, err := e.NewPreferredStock("GIN", Pennies(8), 0.02, Pennies(10000))
	if err != nil {
		t.Fatal(err)
	}

	tea.RecordTrade(1000, Buy, Pennies(9550))
	advance(time.Minute)
	tea.RecordTrade(2000, Sell, Pennies(10230))
	gin.RecordTrade(50, Buy, Pennies(10000))

	var journal bytes.Buffer
	if err := EncodeExchange(&journal, e); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeExchange(bytes.NewReader(journal.Bytes()), clock)
	if err != nil {
		t.Fatal(err)
	}

	// Stock definitions survive.
	gotGin, err := decoded.Stock("GIN")
	if err != nil {
		t.Fatal(err)
	}
	if gotGin.Kind() != Preferred || !gotGin.LastDividend().Equal(Pennies(8)) || !gotGin.ParValue().Equal(Pennies(10000)) {
		t.Error("decoded GIN lost its definition")
	}
	if rate := gotGin.(*PreferredStock).FixedDividendRate(); rate.String() != "0.02" {
		t.Errorf("decoded GIN rate = %s, want 0.02", rate)
	}

	// Trades survive with their original timestamps: the replayed
	// exchange computes the same metrics on the same clock.
	gotTea, err := decoded.Stock("TEA")
	if err != nil {
		t.Fatal(err)
	}
	var stamps []time.Time
	for trade := range gotTea.Trades() {
		stamps = append(stamps, trade.Timestamp)
	}
	if len(stamps) != 2 || !stamps[0].Equal(epoch) || !stamps[1].Equal(epoch.Add(time.Minute)) {
		t.Errorf("decoded TEA timestamps = %v", stamps)
	}

	wantVwsp, _ := tea.VolumeWeightedPrice(DefaultWindow)
	gotVwsp, ok := gotTea.VolumeWeightedPrice(DefaultWindow)
	if !ok || !gotVwsp.Equal(wantVwsp) {
		t.Errorf("decoded VWSP = %s ok=%v, want %s", gotVwsp.value, ok, wantVwsp.value)
	}

	wantIndex, _ := e.AllShareIndex()
	gotIndex, ok := decoded.AllShareIndex()
	if !ok || !gotIndex.Equal(wantIndex) {
		t.Errorf("decoded index = %s ok=%v, want %s", gotIndex.value, ok, wantIndex.value)
	}
}

func TestDecodeExchangeRejects(t *testing.T) {
	clock, _ := fakeClock(epoch)

	testCases := []struct {
		name    string
		journal string
	}{
		{
			name:    "trade before its stock definition",
			journal: `{"record":"trade","symbol":"TEA","timestamp":"2026-08-31T10:00:00Z","quantity":10,"indicator":"buy","price":95.5}`,
		},
		{
			name:    "unknown record type",
			journal: `{"record":"split","symbol":"TEA"}`,
		},
		{
			name:    "invalid stock definition",
			journal: `{"record":"common","symbol":"","lastDividend":0,"parValue":100}`,
		},
		{
			name:    "preferred without rate",
			journal: `{"record":"preferred","symbol":"GIN","lastDividend":0.08,"parValue":100}`,
		},
		{
			name: "non-positive trade",
			journal: `{"record":"common","symbol":"TEA","lastDividend":0,"parValue":100}
{"record":"trade","symbol":"TEA","timestamp":"2026-08-31T10:00:00Z","quantity":0,"indicator":"buy","price":95.5}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeExchange(strings.NewReader(tc.journal), clock); err == nil {
				t.Error("DecodeExchange accepted an invalid journal")
			}
		})
	}
}
