package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type vwspCmd struct {
	symbol string
	window time.Duration
}

func (*vwspCmd) Name() string     { return "vwsp" }
func (*vwspCmd) Synopsis() string { return "volume-weighted stock price over the trailing window" }
func (*vwspCmd) Usage() string {
	return `gbce vwsp -s <symbol> [-w <window>]

  Prints the quantity-weighted average price of the trades recorded within
  the trailing window. Undefined when no trade falls in the window.

Usage Examples:
$ gbce vwsp -s TEA -w 5m

`
}

func (c *vwspCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "Trailing window.")
}

func (c *vwspCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, status := getStock(c.symbol)
	if status != subcommands.ExitSuccess {
		return status
	}

	vwsp, ok := s.VolumeWeightedPrice(c.window)
	if !ok {
		fmt.Printf("%s VWSP (%s): undefined, no trade in window\n", c.symbol, c.window)
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s VWSP (%s): %s\n", c.symbol, c.window, vwsp)
	return subcommands.ExitSuccess
}
