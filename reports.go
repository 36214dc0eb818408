package gbce

import "time"

// StockSummary is the metric snapshot of a single stock, priced at its own
// volume-weighted price when one is defined.
type StockSummary struct {
	Symbol       string
	Kind         StockKind
	ParValue     Money
	LastDividend Money
	Trades       int
	VWSP         Money
	VWSPOK       bool
	Yield        Percent
	PE           Ratio
	PEOK         bool
}

// MarketSummary is the metric snapshot of the whole exchange.
type MarketSummary struct {
	Window  time.Duration
	Stocks  []StockSummary
	Index   Money
	IndexOK bool
}

// Summarize prices every stock at its VWSP over the window and computes the
// all-share index. Stocks with no trade in the window keep undefined VWSP,
// yield 0.00 and undefined P/E.
func (e *Exchange) Summarize(window time.Duration) MarketSummary {
	report := MarketSummary{Window: window}
	for s := range e.Stocks() {
		sum := StockSummary{
			Symbol:       s.Symbol(),
			Kind:         s.Kind(),
			ParValue:     s.ParValue(),
			LastDividend: s.LastDividend(),
			Trades:       s.tradeLedger().Len(),
		}
		if vwsp, ok := s.VolumeWeightedPrice(window); ok {
			sum.VWSP, sum.VWSPOK = vwsp, true
			sum.Yield = s.DividendYield(vwsp)
			sum.PE, sum.PEOK = s.PERatio(vwsp)
		}
		report.Stocks = append(report.Stocks, sum)
	}
	report.Index, report.IndexOK = e.allShareIndex(window)
	return report
}
