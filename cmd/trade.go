package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type tradeCmd struct {
	symbol   string
	quantity int64
	price    string
	sell     bool
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "record a trade in the journal" }
func (*tradeCmd) Usage() string {
	return `gbce trade -s <symbol> -q <quantity> -p <price> [-sell]

  Records a buy (or, with -sell, a sell) of the given quantity of shares at
  the given price, timestamped now, and appends it to the journal.

Usage Examples:
# Buy 1000 TEA shares at £95.50.
$ gbce trade -s TEA -q 1000 -p 95.50

`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares traded.")
	f.StringVar(&c.price, "p", "", "Traded price, in major units (e.g. 95.50).")
	f.BoolVar(&c.sell, "sell", false, "Record a sell instead of a buy.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, status := getStock(c.symbol)
	if status != subcommands.ExitSuccess {
		return status
	}

	price, err := gbce.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	indicator := gbce.Buy
	if c.sell {
		indicator = gbce.Sell
	}

	trade, err := s.RecordTrade(c.quantity, indicator, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return AppendTrade(c.symbol, trade)
}
