// Package renderer turns exchange reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/gbce"
	md "github.com/nao1215/markdown"
)

// undefined marks a metric with no defined value (no recent trade, zero
// dividend). It is a defined absence, not an error.
const undefined = "n/a"

// SummaryMarkdown renders the per-stock metrics and the all-share index as
// a markdown document. Yield and P/E are priced at each stock's own VWSP.
func SummaryMarkdown(r gbce.MarketSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Summary")
	doc.PlainText(fmt.Sprintf("Trailing window: %s", r.Window))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Type", "Par", "Last Div.", "Trades", "VWSP", "Yield", "P/E"},
	}
	for _, s := range r.Stocks {
		vwsp, yield, pe := undefined, undefined, undefined
		if s.VWSPOK {
			vwsp = s.VWSP.String()
			yield = s.Yield.String()
		}
		if s.PEOK {
			pe = s.PE.String()
		}
		table.Rows = append(table.Rows, []string{
			s.Symbol,
			string(s.Kind),
			s.ParValue.String(),
			s.LastDividend.String(),
			fmt.Sprintf("%d", s.Trades),
			vwsp,
			yield,
			pe,
		})
	}
	doc.Table(table)

	index := undefined
	if r.IndexOK {
		index = r.Index.String()
	}
	doc.H2("All-Share Index")
	doc.PlainText(fmt.Sprintf("%s (geometric mean of defined VWSPs)", index))

	return doc.String()
}
