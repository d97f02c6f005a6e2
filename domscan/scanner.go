package domscan

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/htmltab/model"
)

// Scan parses r as HTML and extracts every outermost table in document
// order. The underlying parser tolerates malformed markup, so the only
// error source is the reader itself.
func Scan(r io.Reader) (*model.Dataset, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	ds := model.NewDataset()
	for _, tbl := range findTables(doc) {
		ds.Add(buildTable(tbl))
	}
	return ds, nil
}

// ScanString extracts tables from an in-memory HTML string.
func ScanString(s string) (*model.Dataset, error) {
	return Scan(strings.NewReader(s))
}

// findTables collects table elements in document order without descending
// into tables nested inside other tables.
func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return tables
}

// scannedCell is one resolved td/th cell.
type scannedCell struct {
	text     string
	isHeader bool
	colSpan  int
}

// scannedRow is one tr with its section context.
type scannedRow struct {
	cells  []scannedCell
	inHead bool
}

// buildTable converts one table element into a model.Table.
func buildTable(tableNode *html.Node) *model.Table {
	rows := collectRows(tableNode)

	var columns []model.Column
	headerUsed := -1
	for i, row := range rows {
		if !isHeaderRow(row) {
			continue
		}
		columns = expandColumns(row.cells)
		headerUsed = i
		break
	}
	if columns == nil {
		for _, row := range rows {
			if isHeaderRow(row) {
				continue
			}
			columns = model.NumberedColumns(rowWidth(row.cells))
			break
		}
	}

	table := model.NewTable(columns)
	for i, row := range rows {
		if i == headerUsed || isHeaderRow(row) {
			continue
		}
		table.AppendRow(expandCells(row.cells))
	}
	return table
}

// collectRows gathers tr elements from thead, tbody, tfoot, and direct
// children, in document order.
func collectRows(tableNode *html.Node) []scannedRow {
	var rows []scannedRow
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			inHead := c.Data == "thead"
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					rows = append(rows, scannedRow{cells: parseRow(tr), inHead: inHead})
				}
			}
		case "tr":
			rows = append(rows, scannedRow{cells: parseRow(c)})
		}
	}
	return rows
}

// maxColSpan caps how far a single cell may stretch. The HTML standard
// clamps colspan at 1000, and honoring larger values would let one
// attribute allocate an arbitrarily wide grid.
const maxColSpan = 1000

// parseRow resolves the td/th children of one tr.
func parseRow(tr *html.Node) []scannedCell {
	var cells []scannedCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cell := scannedCell{
			text:     textContent(c),
			isHeader: c.Data == "th",
			colSpan:  1,
		}
		for _, attr := range c.Attr {
			if attr.Key == "colspan" {
				if span, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && span > 1 {
					if span > maxColSpan {
						span = maxColSpan
					}
					cell.colSpan = span
				}
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// isHeaderRow reports whether a row should name columns instead of
// contributing data: every cell is a th, or the row sits in thead.
func isHeaderRow(row scannedRow) bool {
	if row.inHead {
		return true
	}
	if len(row.cells) == 0 {
		return false
	}
	for _, c := range row.cells {
		if !c.isHeader {
			return false
		}
	}
	return true
}

// expandColumns turns a header row into columns, repeating empty names for
// colspan positions so data rows line up.
func expandColumns(cells []scannedCell) []model.Column {
	columns := make([]model.Column, 0, len(cells))
	for _, c := range cells {
		columns = append(columns, model.Column{Name: c.text})
		for s := 1; s < c.colSpan; s++ {
			columns = append(columns, model.Column{})
		}
	}
	return columns
}

// expandCells flattens a data row, padding colspan positions with empty
// strings so each value lands in its grid column.
func expandCells(cells []scannedCell) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.text)
		for s := 1; s < c.colSpan; s++ {
			out = append(out, "")
		}
	}
	return out
}

// rowWidth is the colspan-expanded width of a row.
func rowWidth(cells []scannedCell) int {
	w := 0
	for _, c := range cells {
		w += c.colSpan
	}
	return w
}

// textContent extracts the flattened, whitespace-collapsed text of a node,
// skipping script and style subtrees.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			case "br":
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
