package domscan

import (
	"reflect"
	"testing"
)

func TestScanString_NoTables(t *testing.T) {
	ds, err := ScanString("<html><body><p>nothing tabular</p></body></html>")
	if err != nil {
		t.Fatalf("ScanString failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("found %d tables, want 0", ds.Len())
	}
}

func TestScanString_HeaderRow(t *testing.T) {
	html := `<table>
		<tr><th>Name</th><th>Age</th></tr>
		<tr><td>Alice</td><td>30</td></tr>
	</table>`
	ds, err := ScanString(html)
	if err != nil {
		t.Fatalf("ScanString failed: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("found %d tables, want 1", ds.Len())
	}

	table := ds.Table(0)
	if !reflect.DeepEqual(table.ColumnNames(), []string{"Name", "Age"}) {
		t.Errorf("columns = %v, want [Name Age]", table.ColumnNames())
	}
	if table.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", table.RowCount())
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"Alice", "30"}) {
		t.Errorf("row = %v, want [Alice 30]", table.Rows[0])
	}
}

func TestScanString_TheadTbody(t *testing.T) {
	html := `<table>
		<thead><tr><td>A</td><td>B</td></tr></thead>
		<tbody><tr><td>1</td><td>2</td></tr></tbody>
	</table>`
	ds, _ := ScanString(html)
	table := ds.Table(0)

	// thead rows name columns even when the cells are td.
	if !reflect.DeepEqual(table.ColumnNames(), []string{"A", "B"}) {
		t.Errorf("columns = %v, want [A B]", table.ColumnNames())
	}
	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
}

func TestScanString_NoHeaderSynthesizesColumns(t *testing.T) {
	ds, _ := ScanString("<table><tr><td>x</td><td>y</td></tr></table>")
	table := ds.Table(0)

	if !reflect.DeepEqual(table.ColumnNames(), []string{"Column 0", "Column 1"}) {
		t.Errorf("columns = %v, want synthesized names", table.ColumnNames())
	}
	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
}

func TestScanString_ColspanExpansion(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th colspan="2">B</th></tr>
		<tr><td>1</td><td colspan="2">wide</td></tr>
		<tr><td>2</td><td>3</td><td>4</td></tr>
	</table>`
	ds, _ := ScanString(html)
	table := ds.Table(0)

	if table.ColCount() != 3 {
		t.Fatalf("ColCount() = %d, want 3", table.ColCount())
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"1", "wide", ""}) {
		t.Errorf("row 0 = %v, want [1 wide \"\"]", table.Rows[0])
	}
	if !reflect.DeepEqual(table.Rows[1], []string{"2", "3", "4"}) {
		t.Errorf("row 1 = %v, want [2 3 4]", table.Rows[1])
	}
}

func TestScanString_ColspanClamped(t *testing.T) {
	html := `<table>
		<tr><td>a</td><td colspan="2000000000">b</td></tr>
	</table>`
	ds, _ := ScanString(html)
	table := ds.Table(0)

	if table.ColCount() != 1+maxColSpan {
		t.Fatalf("ColCount() = %d, want %d", table.ColCount(), 1+maxColSpan)
	}
	if got := table.Cell(0, 0); got != "a" {
		t.Errorf("cell(0,0) = %q, want %q", got, "a")
	}
	if got := table.Cell(0, 1); got != "b" {
		t.Errorf("cell(0,1) = %q, want %q", got, "b")
	}
}

func TestScanString_EntityDecodingAndTagFlattening(t *testing.T) {
	ds, _ := ScanString("<table><tr><td> <b>bold</b> &amp; flat </td></tr></table>")
	table := ds.Table(0)

	if got := table.Cell(0, 0); got != "bold & flat" {
		t.Errorf("cell = %q, want decoded, flattened text", got)
	}
}

func TestScanString_SkipsScriptContent(t *testing.T) {
	ds, _ := ScanString(`<table><tr><td>ok<script>var x = "bad";</script></td></tr></table>`)
	if got := ds.Table(0).Cell(0, 0); got != "ok" {
		t.Errorf("cell = %q, want script content excluded", got)
	}
}

func TestScanString_NestedTableNotDescended(t *testing.T) {
	html := `<table><tr><td><table><tr><td>inner</td></tr></table></td></tr></table>`
	ds, _ := ScanString(html)
	if ds.Len() != 1 {
		t.Errorf("found %d tables, want 1 (outermost only)", ds.Len())
	}
}

func TestScanString_SecondHeaderRowIgnored(t *testing.T) {
	html := `<table>
		<tr><th>A</th></tr>
		<tr><th>B</th></tr>
		<tr><td>1</td></tr>
	</table>`
	ds, _ := ScanString(html)
	table := ds.Table(0)

	if !reflect.DeepEqual(table.ColumnNames(), []string{"A"}) {
		t.Errorf("columns = %v, want [A] (later header rows ignored)", table.ColumnNames())
	}
	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
}

func TestScanString_MalformedHTML(t *testing.T) {
	// Unclosed tags parse leniently; no error, best-effort table.
	ds, err := ScanString("<table><tr><td>dangling")
	if err != nil {
		t.Fatalf("ScanString failed on malformed input: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("found %d tables, want 1", ds.Len())
	}
	if got := ds.Table(0).Cell(0, 0); got != "dangling" {
		t.Errorf("cell = %q, want dangling", got)
	}
}

func TestScanString_EmptyTable(t *testing.T) {
	ds, _ := ScanString("<table></table>")
	if ds.Len() != 1 {
		t.Fatalf("found %d tables, want 1", ds.Len())
	}
	table := ds.Table(0)
	if table.ColCount() != 0 || table.RowCount() != 0 {
		t.Errorf("empty table = %d cols, %d rows, want 0/0", table.ColCount(), table.RowCount())
	}
}
