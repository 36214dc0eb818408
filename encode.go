package gbce

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The exchange journal is a stream of JSONL records: one stock definition
// per listed stock followed by its trades in insertion order. A "record"
// field identifies each line, in the manner of the ledger command field.

// RecordType is a typed string identifying a journal record.
type RecordType string

const (
	RecCommon    RecordType = "common"
	RecPreferred RecordType = "preferred"
	RecTrade     RecordType = "trade"
)

// stockRecord is the JSONL form of a stock definition. Rate is only set on
// preferred records.
type stockRecord struct {
	Record       RecordType       `json:"record"`
	Symbol       string           `json:"symbol"`
	LastDividend Money            `json:"lastDividend"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	ParValue     Money            `json:"parValue"`
}

// tradeRecord is the JSONL form of one trade.
type tradeRecord struct {
	Record    RecordType     `json:"record"`
	Symbol    string         `json:"symbol"`
	Timestamp time.Time      `json:"timestamp"`
	Quantity  int64          `json:"quantity"`
	Indicator TradeIndicator `json:"indicator"`
	Price     Money          `json:"price"`
}

func (i TradeIndicator) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *TradeIndicator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTradeIndicator(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// EncodeStock appends the definition of a stock as a single JSONL line.
func EncodeStock(w io.Writer, s Stock) error {
	rec := stockRecord{
		Record:       RecordType(s.Kind()),
		Symbol:       s.Symbol(),
		LastDividend: s.LastDividend(),
		ParValue:     s.ParValue(),
	}
	if p, ok := s.(*PreferredStock); ok {
		rate := p.FixedDividendRate()
		rec.Rate = &rate
	}
	return encodeLine(w, rec)
}

// EncodeTrade appends one trade of the given stock as a single JSONL line.
func EncodeTrade(w io.Writer, symbol string, t Trade) error {
	return encodeLine(w, tradeRecord{
		Record:    RecTrade,
		Symbol:    symbol,
		Timestamp: t.Timestamp,
		Quantity:  t.Quantity,
		Indicator: t.Indicator,
		Price:     t.Price,
	})
}

// EncodeExchange writes the whole exchange as a JSONL journal: each stock
// definition followed by its trades.
func EncodeExchange(w io.Writer, e *Exchange) error {
	for s := range e.Stocks() {
		if err := EncodeStock(w, s); err != nil {
			return err
		}
		for t := range s.Trades() {
			if err := EncodeTrade(w, s.Symbol(), t); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// DecodeExchange replays a JSONL journal into a fresh exchange on the given
// clock. Stock definitions go through the registration factories, so every
// construction rule applies; trades are re-appended with their recorded
// timestamps, not re-stamped.
func DecodeExchange(r io.Reader, now Clock) (*Exchange, error) {
	e := NewExchangeClock(now)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case RecCommon:
			var rec stockRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			if _, err := e.NewCommonStock(rec.Symbol, rec.LastDividend, rec.ParValue); err != nil {
				return nil, fmt.Errorf("invalid common stock %q: %w", rec.Symbol, err)
			}
		case RecPreferred:
			var rec stockRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			if rec.Rate == nil {
				return nil, fmt.Errorf("preferred stock %q is missing its rate", rec.Symbol)
			}
			if _, err := e.NewPreferredStock(rec.Symbol, rec.LastDividend, rec.Rate.InexactFloat64(), rec.ParValue); err != nil {
				return nil, fmt.Errorf("invalid preferred stock %q: %w", rec.Symbol, err)
			}
		case RecTrade:
			var rec tradeRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s, err := e.Stock(rec.Symbol)
			if err != nil {
				return nil, fmt.Errorf("trade for unlisted stock: %w", err)
			}
			if rec.Quantity <= 0 || !rec.Price.IsPositive() {
				return nil, fmt.Errorf("%w: %s", ErrInvalidTrade, string(line))
			}
			s.tradeLedger().record(Trade{
				Timestamp: rec.Timestamp,
				Quantity:  rec.Quantity,
				Indicator: rec.Indicator,
				Price:     rec.Price,
			})
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return e, nil
}
