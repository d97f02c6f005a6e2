package scrape

import (
	"regexp"

	"github.com/tsawler/htmltab/model"
)

// All patterns are non-greedy, case-insensitive, and let . span newlines,
// so elements split across lines match and no pattern spans past the first
// closing tag.
var (
	commentRe = regexp.MustCompile(`(?is)<!--.*?-->`)
	tableRe   = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table>`)
	rowRe     = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	headerRe  = regexp.MustCompile(`(?is)<th[^>]*>(.*?)</th>`)
	cellRe    = regexp.MustCompile(`(?is)<td[^>]*>(.*?)</td>`)

	// headerMark detects the presence of a header cell. It intentionally
	// matches the bare "<th" prefix rather than a full tag, mirroring the
	// plain substring test downstream consumers have depended on.
	headerMark = regexp.MustCompile(`(?i)<th`)
)

// ExtractAll locates every <table> region in html and extracts each one
// into a table, in document order. Input with no table regions yields an
// empty dataset. ExtractAll never fails: unbalanced or malformed markup
// simply produces fewer matches.
func ExtractAll(html string) *model.Dataset {
	stripped := commentRe.ReplaceAllString(html, "")

	ds := model.NewDataset()
	for _, m := range tableRe.FindAllStringSubmatch(stripped, -1) {
		ds.Add(ExtractOne(m[1]))
	}
	return ds
}

// ExtractOne extracts a single table from the markup of one <table> region.
// The input may include or omit the surrounding <table> tags.
//
// Comments are stripped again here so ExtractOne is safe to call directly
// on markup that never went through ExtractAll.
//
// A region with no header cells and no rows produces an empty table with
// zero columns and zero rows.
func ExtractOne(tableHTML string) *model.Table {
	stripped := commentRe.ReplaceAllString(tableHTML, "")

	rows := rowRe.FindAllStringSubmatch(stripped, -1)

	var columns []model.Column
	if headerMark.MatchString(stripped) {
		// Header cells are collected across the whole table body, not
		// per-row: multiple header rows contribute columns in sequence.
		for _, th := range headerRe.FindAllStringSubmatch(stripped, -1) {
			columns = append(columns, model.Column{Name: th[1]})
		}
	} else if len(rows) > 0 {
		columns = model.NumberedColumns(len(cellRe.FindAllString(rows[0][1], -1)))
	}

	table := model.NewTable(columns)
	for _, row := range rows {
		// A row whose raw markup carries a header marker is a header
		// row, not data.
		if headerMark.MatchString(row[0]) {
			continue
		}
		matches := cellRe.FindAllStringSubmatch(row[1], -1)
		cells := make([]string, 0, len(matches))
		for _, td := range matches {
			cells = append(cells, td[1])
		}
		table.AppendRow(cells)
	}
	return table
}

// StripComments removes all HTML comment regions from s. Exposed for
// callers that pre-process markup before scoping it to a fragment.
func StripComments(s string) string {
	return commentRe.ReplaceAllString(s, "")
}
