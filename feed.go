package gbce

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// QuoteFeed fetches the latest traded price from a remote JSON quote
// service. It is a collaborator of the exchange, not part of it: the core
// metrics never go through the network.
type QuoteFeed struct {
	// URL of the JSON document holding the quote.
	URL string
	// Path is the jsonpath expression locating the price inside the
	// document, e.g. "$.last" or "$.series.intraday.data[-1:][1]".
	Path string
}

// Latest fetches and extracts the current price. Quote services are sloppy
// about types: the price may arrive as a number or as a localized string
// with a comma decimal separator, both are accepted.
func (q QuoteFeed) Latest(client *http.Client) (Money, error) {
	var jobj any
	if err := jwget(client, q.URL, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving quote from %q: %w", q.URL, err)
	}

	jval, err := jsonpath.Get(q.Path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error evaluating %q on quote from %q: %w", q.Path, q.URL, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// one answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	var price decimal.Decimal
	switch v := jval.(type) {
	case float64:
		price = decimal.NewFromFloat(v)
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		price, err = decimal.NewFromString(s)
		if err != nil {
			return Money{}, fmt.Errorf("quote %q is an invalid string: %w", v, err)
		}
	default:
		return Money{}, fmt.Errorf("quote at %q is neither a number nor a string: %v", q.Path, jval)
	}

	if !price.IsPositive() {
		return Money{}, fmt.Errorf("quote at %q is not a positive price: %s", q.Path, price)
	}
	return M(price).Round(), nil
}
