// Package wikttest builds synthetic Wiktionary conjugation pages for tests.
package wikttest

import (
	"fmt"
	"strings"
)

// Rows is the number of row-groups a full conjugation table body has:
// six header rows, eight active finite rows, two active imperative rows,
// three passive imperative rows and eight passive finite rows.
const Rows = 27

// Cells is enough cells per row for every position the layout reads
const Cells = 10

// CellID is the default cell text: the row and cell position
func CellID(row, cell int) string {
	return fmt.Sprintf("r%dc%d", row, cell)
}

// Table renders an inflection table body of rows x cells. text returns the
// Arabic text of a cell; an empty string leaves the cell without an Arabic
// span.
func Table(rows, cells int, text func(row, cell int) string) string {
	var b strings.Builder
	b.WriteString(`<table class="inflection-table"><tbody>`)
	for r := 0; r < rows; r++ {
		b.WriteString("<tr>")
		for c := 0; c < cells; c++ {
			t := text(r, c)
			if t == "" {
				b.WriteString("<td>—</td>")
				continue
			}
			fmt.Fprintf(&b, `<td><span class="Arab" lang="ar"><a href="#">%s</a></span><br><span class="tr Latn">x</span></td>`, t)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// Page wraps tables into a page, each in its own collapsible frame
func Page(tables ...string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>كتب - Wiktionary</title></head><body>`)
	b.WriteString(`<h1 class="firstHeading">كتب</h1>`)
	for i, t := range tables {
		fmt.Fprintf(&b, `<h4>Conjugation %d</h4><div class="NavFrame"><div class="NavContent">%s</div></div>`, i+1, t)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}
