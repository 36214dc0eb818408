package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	symbol string
	url    string
	path   string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "price metrics from a remote quote feed" }
func (*quoteCmd) Usage() string {
	return `gbce quote -s <symbol> [-url <url>] [-path <jsonpath>]

  Fetches the latest price from a JSON quote service and prints the dividend
  yield and P/E of the stock at that price. The feed defaults to
  GBCE_QUOTE_URL and GBCE_QUOTE_PATH.

Usage Examples:
$ gbce quote -s ALE -url https://quotes.example.com/ALE -path '$.last'

`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.StringVar(&c.url, "url", defaults.QuoteURL, "URL of the JSON quote document.")
	f.StringVar(&c.path, "path", defaults.QuotePath, "jsonpath expression locating the price.")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: no quote feed configured, set -url or GBCE_QUOTE_URL.")
		return subcommands.ExitUsageError
	}

	s, _, status := getStock(c.symbol)
	if status != subcommands.ExitSuccess {
		return status
	}

	feed := gbce.QuoteFeed{URL: c.url, Path: c.path}
	price, err := feed.Latest(new(http.Client))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s quoted @ %s\n", c.symbol, price)
	fmt.Printf("  dividend yield: %s\n", s.DividendYield(price))
	if pe, ok := s.PERatio(price); ok {
		fmt.Printf("  P/E: %s\n", pe)
	} else {
		fmt.Printf("  P/E: undefined\n")
	}
	return subcommands.ExitSuccess
}
