package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/etnz/gbce/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	window time.Duration
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "metrics of every listed stock and the index" }
func (*summaryCmd) Usage() string {
	return `gbce summary [-w <window>]

  Prints a table of every stock with its VWSP over the window, its dividend
  yield and P/E priced at that VWSP, and the all-share index.

Usage Examples:
$ gbce summary

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "Trailing window.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(e.Summarize(c.window)))
	return subcommands.ExitSuccess
}
