package importer

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
)

func fragment(x float64, s string) pdf.Text {
	return pdf.Text{S: s, X: x, W: float64(len(s)) * 6, FontSize: 10}
}

func TestClusterCellsSplitsOnWideGaps(t *testing.T) {
	// "Product Name" then a column gap, then "Price".
	texts := []pdf.Text{
		fragment(10, "Product"),
		fragment(56, "Name"),
		fragment(200, "Price"),
	}

	cells := clusterCells(texts)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %v", cells)
	}
	if cells[0] != "Product Name" || cells[1] != "Price" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestClusterCellsOrdersFragmentsByPosition(t *testing.T) {
	texts := []pdf.Text{
		fragment(200, "Price"),
		fragment(10, "Name"),
	}
	cells := clusterCells(texts)
	if len(cells) != 2 || cells[0] != "Name" || cells[1] != "Price" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestClusterCellsJoinsAdjacentCharacters(t *testing.T) {
	// Character-level fragments with no meaningful gaps form one cell.
	texts := []pdf.Text{
		fragment(10, "W"),
		fragment(16, "i"),
		fragment(19, "d"),
		fragment(25, "get"),
	}
	cells := clusterCells(texts)
	if len(cells) != 1 || cells[0] != "Widget" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestClusterCellsDropsBlankFragments(t *testing.T) {
	texts := []pdf.Text{
		fragment(10, "  "),
		fragment(200, "Price"),
	}
	cells := clusterCells(texts)
	if len(cells) != 1 || cells[0] != "Price" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestClusterCellsEmptyInput(t *testing.T) {
	if cells := clusterCells(nil); cells != nil {
		t.Fatalf("expected nil for empty input, got %v", cells)
	}
}

func TestExtractTablesRejectsGarbage(t *testing.T) {
	junk := []byte("this is not a pdf document")
	if _, err := ExtractTables(bytes.NewReader(junk), int64(len(junk))); err == nil {
		t.Fatal("expected error for a non-PDF payload")
	}
}
