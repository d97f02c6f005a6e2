package model

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]Column{{Name: "Name"}, {Name: "Age"}})
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
	if table.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", table.RowCount())
	}
}

func TestNumberedColumns(t *testing.T) {
	cols := NumberedColumns(3)
	want := []string{"Column 0", "Column 1", "Column 2"}
	if len(cols) != len(want) {
		t.Fatalf("NumberedColumns(3) returned %d columns, want %d", len(cols), len(want))
	}
	for i, w := range want {
		if cols[i].Name != w {
			t.Errorf("column %d name = %q, want %q", i, cols[i].Name, w)
		}
	}
}

func TestNumberedColumns_Zero(t *testing.T) {
	cols := NumberedColumns(0)
	if len(cols) != 0 {
		t.Errorf("NumberedColumns(0) returned %d columns, want 0", len(cols))
	}
}

func TestAppendRow_ExactWidth(t *testing.T) {
	table := NewTable(NumberedColumns(2))
	table.AppendRow([]string{"A", "B"})

	if table.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", table.RowCount())
	}
	if table.Cell(0, 0) != "A" || table.Cell(0, 1) != "B" {
		t.Errorf("row = [%q, %q], want [A, B]", table.Cell(0, 0), table.Cell(0, 1))
	}
}

func TestAppendRow_ShortRowLeavesTrailingEmpty(t *testing.T) {
	table := NewTable(NumberedColumns(2))
	table.AppendRow([]string{"OnlyOne"})

	if table.Cell(0, 0) != "OnlyOne" {
		t.Errorf("Cell(0,0) = %q, want OnlyOne", table.Cell(0, 0))
	}
	if table.Cell(0, 1) != "" {
		t.Errorf("Cell(0,1) = %q, want empty", table.Cell(0, 1))
	}
}

func TestAppendRow_ExtraCellsIgnored(t *testing.T) {
	table := NewTable(NumberedColumns(2))
	table.AppendRow([]string{"A", "B", "C", "D"})

	if len(table.Rows[0]) != 2 {
		t.Errorf("row width = %d, want 2", len(table.Rows[0]))
	}
	if table.Cell(0, 1) != "B" {
		t.Errorf("Cell(0,1) = %q, want B", table.Cell(0, 1))
	}
}

func TestCell_OutOfBounds(t *testing.T) {
	table := NewTable(NumberedColumns(1))
	table.AppendRow([]string{"X"})

	if got := table.Cell(-1, 0); got != "" {
		t.Errorf("Cell(-1,0) = %q, want empty", got)
	}
	if got := table.Cell(0, 5); got != "" {
		t.Errorf("Cell(0,5) = %q, want empty", got)
	}
	if got := table.Cell(9, 0); got != "" {
		t.Errorf("Cell(9,0) = %q, want empty", got)
	}
}

func TestRecords(t *testing.T) {
	table := NewTable([]Column{{Name: "Name"}, {Name: "Age"}})
	table.AppendRow([]string{"Alice", "30"})
	table.AppendRow([]string{"Bob"})

	recs := table.Records()
	if len(recs) != 2 {
		t.Fatalf("Records() returned %d records, want 2", len(recs))
	}
	if recs[0]["Name"] != "Alice" || recs[0]["Age"] != "30" {
		t.Errorf("record 0 = %v", recs[0])
	}
	if recs[1]["Name"] != "Bob" || recs[1]["Age"] != "" {
		t.Errorf("record 1 = %v, want Bob with empty Age", recs[1])
	}
}

func TestToCSV(t *testing.T) {
	table := NewTable([]Column{{Name: "Name"}, {Name: "Note"}})
	table.AppendRow([]string{"Alice", `said "hi", left`})

	got := table.ToCSV()
	want := "Name,Note\nAlice,\"said \"\"hi\"\", left\"\n"
	if got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestToTSV(t *testing.T) {
	table := NewTable(NumberedColumns(2))
	table.AppendRow([]string{"a\tb", "c\nd"})

	got := table.ToTSV()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("ToTSV() produced %d lines, want 2", len(lines))
	}
	if lines[1] != "a b\tc d" {
		t.Errorf("data line = %q, want 'a b\\tc d'", lines[1])
	}
}

func TestToMarkdown(t *testing.T) {
	table := NewTable([]Column{{Name: "Name"}, {Name: "Age"}})
	table.AppendRow([]string{"Alice", "30"})

	got := table.ToMarkdown()
	want := "| Name | Age |\n| --- | --- |\n| Alice | 30 |\n"
	if got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestToMarkdown_EscapesPipes(t *testing.T) {
	table := NewTable(NumberedColumns(1))
	table.AppendRow([]string{"a|b"})

	got := table.ToMarkdown()
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("ToMarkdown() = %q, want escaped pipe", got)
	}
}

func TestToMarkdown_NoColumns(t *testing.T) {
	table := NewTable(nil)
	if got := table.ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() on empty table = %q, want empty", got)
	}
}

func TestDataset(t *testing.T) {
	ds := NewDataset()
	if ds.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ds.Len())
	}

	first := NewTable(NumberedColumns(1))
	second := NewTable(NumberedColumns(2))
	ds.Add(first)
	ds.Add(second)

	if ds.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ds.Len())
	}
	if ds.Table(0) != first || ds.Table(1) != second {
		t.Error("tables not returned in insertion order")
	}
	if ds.Table(2) != nil {
		t.Error("Table(2) should be nil for out of bounds index")
	}
	if ds.Table(-1) != nil {
		t.Error("Table(-1) should be nil for out of bounds index")
	}
}
