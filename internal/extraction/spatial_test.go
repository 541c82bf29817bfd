package extraction

import (
	"strings"
	"testing"
)

// word builds a WordElement with a 50x20 box at (x, y).
func word(text string, x, y int) WordElement {
	return WordElement{Text: text, Box: BoundingBox{X1: x, Y1: y, X2: x + 50, Y2: y + 20}}
}

func TestReconstructTableGrid(t *testing.T) {
	// clean 3x2 grid: three distinct row bands, two distinct column bands
	words := []WordElement{
		word("Dönem", 0, 0), word("Tüketim", 200, 0),
		word("Ocak", 0, 50), word("120", 200, 50),
		word("Şubat", 0, 100), word("135", 200, 100),
	}

	table, ok := ReconstructTable(words)
	if !ok {
		t.Fatal("expected a table")
	}
	if table.RowCount != 3 || table.ColCount != 2 {
		t.Fatalf("grid = %dx%d, want 3x2", table.RowCount, table.ColCount)
	}
	if len(table.Cells) != 6 {
		t.Fatalf("cells = %d, want 6", len(table.Cells))
	}
	for _, c := range table.Cells {
		if c.Content == "" {
			t.Errorf("empty cell emitted at (%d,%d)", c.Row, c.Col)
		}
	}
}

func TestReconstructTableCellContents(t *testing.T) {
	words := []WordElement{
		word("Dönem", 0, 0), word("Tüketim", 200, 0),
		word("Ocak", 0, 50), word("120", 200, 50),
	}
	table, ok := ReconstructTable(words)
	if !ok {
		t.Fatal("expected a table")
	}
	got := map[[2]int]string{}
	for _, c := range table.Cells {
		got[[2]int{c.Row, c.Col}] = c.Content
	}
	want := map[[2]int]string{
		{0, 0}: "Dönem", {0, 1}: "Tüketim",
		{1, 0}: "Ocak", {1, 1}: "120",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("cell %v = %q, want %q", k, got[k], v)
		}
	}
}

// Acceptance is decided by the cluster counts alone: three words in an L
// shape already span 2 row clusters and 2 column clusters.
func TestReconstructTableMinimalClusters(t *testing.T) {
	words := []WordElement{
		word("Dönem", 0, 0), word("Tüketim", 200, 0),
		word("Ocak", 0, 100),
	}
	table, ok := ReconstructTable(words)
	if !ok {
		t.Fatal("2 row clusters and 2 column clusters must form a table")
	}
	if table.RowCount != 2 || table.ColCount != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", table.RowCount, table.ColCount)
	}
	// the empty (1,1) cell is omitted
	if len(table.Cells) != 3 {
		t.Fatalf("cells = %d, want 3", len(table.Cells))
	}
	got := map[[2]int]string{}
	for _, c := range table.Cells {
		got[[2]int{c.Row, c.Col}] = c.Content
	}
	if got[[2]int{0, 0}] != "Dönem" || got[[2]int{0, 1}] != "Tüketim" || got[[2]int{1, 0}] != "Ocak" {
		t.Errorf("cell contents = %v", got)
	}
}

// A single text line has one row cluster and must not produce a table.
func TestReconstructTableSingleLine(t *testing.T) {
	words := []WordElement{
		word("Fatura", 0, 0), word("No", 60, 0), word("123456", 120, 0), word("TL", 200, 0),
	}
	if _, ok := ReconstructTable(words); ok {
		t.Fatal("single line must not form a table")
	}
}

func TestReconstructTableDegenerateInput(t *testing.T) {
	if _, ok := ReconstructTable(nil); ok {
		t.Fatal("no words must not form a table")
	}
	// zero-area boxes are unusable spatial data
	zero := []WordElement{
		{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"},
	}
	if _, ok := ReconstructTable(zero); ok {
		t.Fatal("zero boxes must not form a table")
	}
}

// Words split by one multi-word cell still land in the same cell, joined in
// reading order.
func TestReconstructTableMultiWordCell(t *testing.T) {
	words := []WordElement{
		word("Toplam", 0, 0), word("Tutar", 10, 0), word("420,75", 300, 0),
		word("Tüketim", 0, 80), word("300", 300, 80),
	}
	table, ok := ReconstructTable(words)
	if !ok {
		t.Fatal("expected a table")
	}
	found := false
	for _, c := range table.Cells {
		if c.Content == "Toplam Tutar" {
			found = true
		}
	}
	if !found {
		t.Errorf("multi-word cell not concatenated: %+v", table.Cells)
	}
}

func TestFallbackTableRows(t *testing.T) {
	// four equal-length rows with a shared space column
	text := strings.Join([]string{
		"Ocak      120 kWh",
		"Şubat     135 kWh",
		"Mart      128 kWh",
		"Nisan     131 kWh",
	}, "\n")

	rows := FallbackTableRows(text)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0][0] != "Ocak" {
		t.Errorf("first cell = %q, want Ocak", rows[0][0])
	}
	for i, row := range rows {
		if len(row) < 2 {
			t.Errorf("row %d not split into columns: %v", i, row)
		}
	}
}

func TestFallbackTableRowsNoStructure(t *testing.T) {
	if rows := FallbackTableRows("tek satır"); rows != nil {
		t.Errorf("single line produced rows: %v", rows)
	}
}
