package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a journal from a universe of stocks" }
func (*initCmd) Usage() string {
	return `gbce init [-f]

  Creates the journal file seeded with the stocks of the universe file, or
  with the classic GBCE universe (TEA, POP, ALE, GIN, JOE) when no universe
  file is configured. Refuses to overwrite an existing journal unless -f.

Usage Examples:
# Seed the default journal with the classic universe.
$ gbce init

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite an existing journal.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u := defaultUniverse()
	if *universeFile != "" {
		var err error
		u, err = loadUniverse(*universeFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	e := gbce.NewExchange()
	if err := u.apply(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error building exchange: %v\n", err)
		return subcommands.ExitFailure
	}

	mode := os.O_CREATE | os.O_WRONLY | os.O_EXCL
	if c.force {
		mode = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	out, err := os.OpenFile(*journalFile, mode, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating journal %q: %v (use -f to overwrite)\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := gbce.EncodeExchange(out, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s with %d stocks\n", *journalFile, len(u.Stocks))
	return subcommands.ExitSuccess
}
