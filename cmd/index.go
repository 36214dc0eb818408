package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "all-share index of the exchange" }
func (*indexCmd) Usage() string {
	return `gbce index

  Prints the geometric mean of the volume-weighted price of every listed
  stock. Stocks with no recent trade are omitted; the index is undefined
  when no stock qualifies.

Usage Examples:
$ gbce index

`
}

func (*indexCmd) SetFlags(f *flag.FlagSet) {}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	index, ok := e.AllShareIndex()
	if !ok {
		fmt.Println("All-share index: undefined, no stock with recent trades")
		return subcommands.ExitSuccess
	}
	fmt.Printf("All-share index: %s\n", index)
	return subcommands.ExitSuccess
}
