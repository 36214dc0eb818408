// Package cmd implements the CLI application to operate the exchange.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
)

// Commands lists every subcommand of the gbce binary. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&tradeCmd{},
	&yieldCmd{},
	&peCmd{},
	&vwspCmd{},
	&indexCmd{},
	&summaryCmd{},
	&quoteCmd{},
	&topicCmd{},
}

// environment holds the GBCE_* variables overriding the flag defaults.
type environment struct {
	JournalFile  string `envconfig:"JOURNAL_FILE" default:"gbce.jsonl"`
	UniverseFile string `envconfig:"UNIVERSE_FILE"`
	QuoteURL     string `envconfig:"QUOTE_URL"`
	QuotePath    string `envconfig:"QUOTE_PATH" default:"$.last"`
}

func loadEnvironment() environment {
	var env environment
	if err := envconfig.Process("gbce", &env); err != nil {
		log.Printf("ignoring environment overrides: %v", err)
	}
	return env
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var defaults = loadEnvironment()

var journalFile = flag.String("journal-file", defaults.JournalFile, "Path to the exchange journal file (JSONL format)")
var universeFile = flag.String("universe-file", defaults.UniverseFile, "Path to the YAML universe file used by init")

// DecodeJournal loads the exchange from the app journal file.
func DecodeJournal() (*gbce.Exchange, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, journal does not exist, starting from an empty exchange instead")
		return gbce.NewExchange(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal %q: %w", *journalFile, err)
	}
	defer f.Close()
	return gbce.DecodeExchange(f, time.Now)
}

// AppendTrade appends a single trade record to the app journal file.
func AppendTrade(symbol string, t gbce.Trade) subcommands.ExitStatus {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := gbce.EncodeTrade(f, symbol, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended trade to %s\n", *journalFile)
	return subcommands.ExitSuccess
}

// getStock resolves a symbol on the journal exchange, reporting usage
// errors on stderr.
func getStock(symbol string) (gbce.Stock, *gbce.Exchange, subcommands.ExitStatus) {
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <symbol> is required.")
		return nil, nil, subcommands.ExitUsageError
	}
	e, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, subcommands.ExitFailure
	}
	s, err := e.Stock(symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, subcommands.ExitFailure
	}
	return s, e, subcommands.ExitSuccess
}
