package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type yieldCmd struct {
	symbol string
	price  string
}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "dividend yield of a stock at a given price" }
func (*yieldCmd) Usage() string {
	return `gbce yield -s <symbol> -p <price>

  Prints the dividend yield at the given price: last dividend over price for
  a common stock, fixed rate times par value over price for a preferred one.

Usage Examples:
$ gbce yield -s GIN -p 100.00

`
}

func (c *yieldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.StringVar(&c.price, "p", "", "Price, in major units (e.g. 100.00).")
}

func (c *yieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, status := getStock(c.symbol)
	if status != subcommands.ExitSuccess {
		return status
	}

	price, err := gbce.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("%s dividend yield @ %s: %s\n", c.symbol, price, s.DividendYield(price))
	return subcommands.ExitSuccess
}
