package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"gopkg.in/yaml.v3"
)

// universe describes the stocks to list on a fresh exchange. Monetary
// amounts are decimal strings in major units so they survive YAML without
// float damage.
type universe struct {
	Stocks []universeStock `yaml:"stocks"`
}

type universeStock struct {
	Symbol       string  `yaml:"symbol"`
	Type         string  `yaml:"type"` // common or preferred
	LastDividend string  `yaml:"last_dividend"`
	Rate         float64 `yaml:"rate,omitempty"` // preferred only, fraction of par
	ParValue     string  `yaml:"par_value"`
}

// loadUniverse reads a universe from a YAML file.
func loadUniverse(path string) (universe, error) {
	var u universe
	data, err := os.ReadFile(path)
	if err != nil {
		return u, fmt.Errorf("read universe: %w", err)
	}
	if err := yaml.Unmarshal(data, &u); err != nil {
		return u, fmt.Errorf("parse universe: %w", err)
	}
	return u, nil
}

// defaultUniverse is the classic GBCE sample data.
func defaultUniverse() universe {
	return universe{Stocks: []universeStock{
		{Symbol: "TEA", Type: "common", LastDividend: "0.00", ParValue: "100.00"},
		{Symbol: "POP", Type: "common", LastDividend: "0.08", ParValue: "100.00"},
		{Symbol: "ALE", Type: "common", LastDividend: "0.23", ParValue: "60.00"},
		{Symbol: "GIN", Type: "preferred", LastDividend: "0.08", Rate: 0.02, ParValue: "100.00"},
		{Symbol: "JOE", Type: "common", LastDividend: "0.13", ParValue: "250.00"},
	}}
}

// apply lists every stock of the universe on the exchange.
func (u universe) apply(e *gbce.Exchange) error {
	for _, s := range u.Stocks {
		lastDividend, err := gbce.ParseMoney(s.LastDividend)
		if err != nil {
			return fmt.Errorf("stock %q: %w", s.Symbol, err)
		}
		parValue, err := gbce.ParseMoney(s.ParValue)
		if err != nil {
			return fmt.Errorf("stock %q: %w", s.Symbol, err)
		}
		switch s.Type {
		case "common":
			_, err = e.NewCommonStock(s.Symbol, lastDividend, parValue)
		case "preferred":
			_, err = e.NewPreferredStock(s.Symbol, lastDividend, s.Rate, parValue)
		default:
			err = fmt.Errorf("unknown stock type %q", s.Type)
		}
		if err != nil {
			return fmt.Errorf("stock %q: %w", s.Symbol, err)
		}
	}
	return nil
}
