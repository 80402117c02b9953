package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts the first <table> element from an HTML document into
// a Table. The retrieval layer guarantees the page carries exactly the
// target statistics table, so no table-selection heuristics are needed.
//
// Header cells (<th>) and data cells (<td>) are treated alike: the stats
// pages render the header as the first <tr>, which the normalizer drops
// after shape validation.
func ParseHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no <table> element in document")
	}

	var rows [][]string
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapseSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	tbl := &Table{Rows: rows}
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("malformed stats table: %w", err)
	}
	return tbl, nil
}

// collapseSpace trims a cell and collapses internal whitespace runs to a
// single space. Stats pages pad cells with newlines and tabs.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
