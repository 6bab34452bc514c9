package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/folioquant/folio"
)

// HistoryMarkdown renders the cash-flow-adjusted performance index.
// When liquid entries are provided a third column shows the liquid-sleeve
// index next to the full-portfolio one.
func HistoryMarkdown(currency string, adjusted, liquid []folio.AdjustedEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Adjusted History (%s)", currency))

	liquidByDate := make(map[folio.Date]folio.AdjustedEntry, len(liquid))
	for _, e := range liquid {
		liquidByDate[e.Date] = e
	}

	header := []string{"Date", "Index", "Daily Return"}
	if len(liquid) > 0 {
		header = append(header, "Liquid Index")
	}
	table := md.TableSet{
		Header: header,
	}
	for _, e := range adjusted {
		row := []string{
			e.Date.String(),
			fmt.Sprintf("%.2f", e.AdjustedValue),
			folio.Percent(e.DailyReturn * 100).SignedString(),
		}
		if len(liquid) > 0 {
			if le, ok := liquidByDate[e.Date]; ok {
				row = append(row, fmt.Sprintf("%.2f", le.AdjustedValue))
			} else {
				row = append(row, "")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
