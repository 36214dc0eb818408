package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type peCmd struct {
	symbol string
	price  string
}

func (*peCmd) Name() string     { return "pe" }
func (*peCmd) Synopsis() string { return "price/earnings ratio of a stock at a given price" }
func (*peCmd) Usage() string {
	return `gbce pe -s <symbol> -p <price>

  Prints price over last dividend as an unrounded ratio. The ratio is
  undefined when the stock never paid a dividend.

Usage Examples:
$ gbce pe -s POP -p 100.00

`
}

func (c *peCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.StringVar(&c.price, "p", "", "Price, in major units (e.g. 100.00).")
}

func (c *peCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, status := getStock(c.symbol)
	if status != subcommands.ExitSuccess {
		return status
	}

	price, err := gbce.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	pe, ok := s.PERatio(price)
	if !ok {
		fmt.Printf("%s P/E @ %s: undefined\n", c.symbol, price)
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s P/E @ %s: %s\n", c.symbol, price, pe)
	return subcommands.ExitSuccess
}
