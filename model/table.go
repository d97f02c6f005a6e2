package model

import (
	"fmt"
	"strings"
)

// Column describes a single table column. Its only attribute is the
// display name shown in exports and used as the key in Records.
type Column struct {
	Name string
}

// Table represents one extracted table: an ordered set of columns and an
// ordered set of rows, each row holding exactly one string cell per column.
//
// The column count is fixed at construction time. AppendRow enforces the
// invariant: extra cells are dropped, missing cells stay "".
type Table struct {
	Columns []Column
	Rows    [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		Columns: append([]Column(nil), columns...),
		Rows:    make([][]string, 0),
	}
}

// NumberedColumns returns n synthesized columns named "Column 0" through
// "Column n-1", used when a table carries no header cells.
func NumberedColumns(n int) []Column {
	cols := make([]Column, 0, n)
	for i := 0; i < n; i++ {
		cols = append(cols, Column{Name: fmt.Sprintf("Column %d", i)})
	}
	return cols
}

// AppendRow adds a row sized to the table's column count. Cells beyond the
// column count are ignored; unfilled trailing cells remain empty strings.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.Columns))
	for i, cell := range cells {
		if i >= len(row) {
			break
		}
		row[i] = cell
	}
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// ColumnNames returns the column display names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Cell returns the cell at the given row and column (0-indexed).
// Out-of-bounds positions return the empty string, matching the default
// value of an unset cell.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Records returns the rows as ordered maps from column name to cell value,
// suitable for JSON encoding as an array of objects.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for j, col := range t.Columns {
			if j < len(row) {
				rec[col.Name] = row[j]
			} else {
				rec[col.Name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// ToCSV converts the table to CSV format. The first line holds the column
// names; fields containing commas, quotes, or newlines are quoted.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	writeCSVLine(&sb, t.ColumnNames())
	for _, row := range t.Rows {
		writeCSVLine(&sb, row)
	}
	return sb.String()
}

func writeCSVLine(sb *strings.Builder, fields []string) {
	for j, field := range fields {
		if strings.ContainsAny(field, ",\"\n") {
			field = "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
		}
		sb.WriteString(field)
		if j < len(fields)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("\n")
}

// ToTSV converts the table to tab-separated values, column names first.
// Tabs and newlines inside cells are replaced with single spaces.
func (t *Table) ToTSV() string {
	var sb strings.Builder
	writeTSVLine(&sb, t.ColumnNames())
	for _, row := range t.Rows {
		writeTSVLine(&sb, row)
	}
	return sb.String()
}

func writeTSVLine(sb *strings.Builder, fields []string) {
	for j, field := range fields {
		field = strings.ReplaceAll(field, "\t", " ")
		field = strings.ReplaceAll(field, "\n", " ")
		sb.WriteString(field)
		if j < len(fields)-1 {
			sb.WriteString("\t")
		}
	}
	sb.WriteString("\n")
}

// ToMarkdown converts the table to a markdown pipe table. Column names form
// the header row; pipe characters inside cells are escaped.
func (t *Table) ToMarkdown() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	sb.WriteString("|")
	for _, name := range t.ColumnNames() {
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdownCell(name))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	// Separator
	sb.WriteString("|")
	for range t.Columns {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString("|")
		for j := range t.Columns {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			sb.WriteString(" ")
			sb.WriteString(escapeMarkdownCell(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// escapeMarkdownCell escapes characters that break markdown tables.
func escapeMarkdownCell(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", "\\|")
}
