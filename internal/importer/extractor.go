package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Table is one contiguous run of multi-cell rows recovered from a page.
type Table struct {
	Rows [][]string
}

const (
	// Fragments further apart than this multiple of the font size start a
	// new cell.
	cellGapFactor = 1.8
	// Floor for the cell gap, in points. Small fonts otherwise split on
	// ordinary word spacing.
	minCellGap = 10.0
)

// ExtractTables reads every page of a PDF document and reconstructs tabular
// rows from positioned text fragments. Fragments on the same line are
// clustered into cells wherever a horizontal gap larger than the expected
// letter spacing appears. Rows with fewer than two cells are treated as prose
// and skipped. The underlying parser panics on some malformed documents, so
// failures of either kind surface as an error.
func ExtractTables(doc io.ReaderAt, size int64) (tables []Table, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("document parsing failed: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(doc, size)
	if err != nil {
		return nil, err
	}

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, err
		}

		var cellRows [][]string
		for _, row := range rows {
			cells := clusterCells(row.Content)
			if len(cells) >= 2 {
				cellRows = append(cellRows, cells)
			}
		}
		if len(cellRows) > 0 {
			tables = append(tables, Table{Rows: cellRows})
		}
	}
	return tables, nil
}

// clusterCells joins a line's text fragments left to right, splitting into a
// new cell at each horizontal gap wider than the font allows for within-cell
// spacing. Smaller gaps become single spaces.
func clusterCells(texts []pdf.Text) []string {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := sorted[0].X

	flush := func() {
		if trimmed := strings.TrimSpace(cell.String()); trimmed != "" {
			cells = append(cells, trimmed)
		}
		cell.Reset()
	}

	for i, t := range sorted {
		if i > 0 {
			gap := t.X - prevEnd
			if gap > cellGap(t.FontSize) {
				flush()
			} else if gap > t.FontSize*0.3 {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(t.S)
		if end := t.X + t.W; end > prevEnd {
			prevEnd = end
		}
	}
	flush()

	return cells
}

func cellGap(fontSize float64) float64 {
	if g := fontSize * cellGapFactor; g > minCellGap {
		return g
	}
	return minCellGap
}
