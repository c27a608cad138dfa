package importer

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/inovaantary/inventory-api/internal/items"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/logger"
)

// minHeaderLabels is how many recognized column labels a row needs before it
// is treated as a table header.
const minHeaderLabels = 2

// Report summarizes one document import.
type Report struct {
	ItemsParsed   int
	ItemsInserted int
	Errors        []string
}

// Message renders the human-readable outcome of the import.
func (r *Report) Message() string {
	if r.ItemsParsed == 0 {
		return "no table rows found in document"
	}
	if len(r.Errors) == 0 {
		return fmt.Sprintf("successfully imported all %d items", r.ItemsInserted)
	}
	return fmt.Sprintf("imported %d of %d rows; %d rejected", r.ItemsInserted, r.ItemsParsed, len(r.Errors))
}

// Service turns uploaded tabular documents into inventory records.
type Service interface {
	ImportPDF(ctx context.Context, doc io.ReaderAt, size int64) (*Report, error)
}

// ServiceParams wires the importer dependencies.
type ServiceParams struct {
	Items  items.Service
	Logger *logger.Logger
}

type service struct {
	items   items.Service
	logg    *logger.Logger
	extract func(io.ReaderAt, int64) ([]Table, error)
}

// NewService builds the import service.
func NewService(params ServiceParams) (Service, error) {
	if params.Items == nil {
		return nil, fmt.Errorf("item service is required")
	}
	return &service{
		items:   params.Items,
		logg:    params.Logger,
		extract: ExtractTables,
	}, nil
}

type rowError struct {
	row    int
	reason string
}

// ImportPDF extracts tabular rows from the document, maps them through the
// known header labels and batch-inserts every parseable candidate. Per-row
// parse failures and per-item insert rejections are itemized in the report;
// only an unreadable document is fatal.
func (s *service) ImportPDF(ctx context.Context, doc io.ReaderAt, size int64) (*Report, error) {
	tables, err := s.extract(doc, size)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeBadInput, err, "unable to read PDF document")
	}

	report := &Report{}
	var errs []rowError
	var candidates []items.CreateItemInput
	var candidateRow []int

	for _, table := range tables {
		fields, start := findHeader(table)
		if fields == nil {
			continue
		}
		for i, row := range table.Rows[start+1:] {
			rowNum := i + 2 // 1-indexed, header is row 1
			report.ItemsParsed++

			input, problems := rowCandidate(fields, row)
			if len(problems) > 0 {
				for _, p := range problems {
					errs = append(errs, rowError{row: rowNum, reason: p})
				}
				continue
			}
			candidates = append(candidates, input)
			candidateRow = append(candidateRow, rowNum)
		}
	}

	if len(candidates) > 0 {
		result, err := s.items.BulkCreate(ctx, candidates)
		if err != nil {
			return nil, err
		}
		report.ItemsInserted = result.Inserted
		for _, itemErr := range result.Errors {
			rowNum := itemErr.Index
			if rowNum >= 0 && rowNum < len(candidateRow) {
				rowNum = candidateRow[rowNum]
			}
			errs = append(errs, rowError{row: rowNum, reason: itemErr.Reason})
		}
	}

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].row < errs[j].row })
	for _, e := range errs {
		report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", e.row, e.reason))
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"parsed":   report.ItemsParsed,
			"inserted": report.ItemsInserted,
			"rejected": len(report.Errors),
		})
		s.logg.Info(ctx, "document import complete")
	}

	return report, nil
}

// findHeader returns the resolved field mapping and index of the first row
// carrying enough known labels, or nil when the table has no header.
func findHeader(table Table) ([]string, int) {
	for i, row := range table.Rows {
		if fields, known := mapHeader(row); known >= minHeaderLabels {
			return fields, i
		}
	}
	return nil, 0
}
