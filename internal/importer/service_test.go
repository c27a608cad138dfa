package importer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/inovaantary/inventory-api/internal/items"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
)

type fakeItems struct {
	items.Service

	bulkFn func(context.Context, []items.CreateItemInput) (*items.BulkResult, error)
}

func (f *fakeItems) BulkCreate(ctx context.Context, inputs []items.CreateItemInput) (*items.BulkResult, error) {
	return f.bulkFn(ctx, inputs)
}

func newTestImporter(t *testing.T, bulk func(context.Context, []items.CreateItemInput) (*items.BulkResult, error), tables []Table, extractErr error) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{Items: &fakeItems{bulkFn: bulk}})
	if err != nil {
		t.Fatalf("failed to build importer: %v", err)
	}
	svc.(*service).extract = func(io.ReaderAt, int64) ([]Table, error) {
		return tables, extractErr
	}
	return svc
}

func importDoc(t *testing.T, svc Service) (*Report, error) {
	t.Helper()
	doc := bytes.NewReader([]byte("doc"))
	return svc.ImportPDF(context.Background(), doc, int64(doc.Len()))
}

func TestImportPDFUnreadableDocument(t *testing.T) {
	svc := newTestImporter(t, nil, nil, errors.New("document parsing failed: bad xref"))

	_, err := importDoc(t, svc)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeBadInput {
		t.Fatalf("expected bad input error, got %v", err)
	}
}

func TestImportPDFNoTables(t *testing.T) {
	svc := newTestImporter(t, func(context.Context, []items.CreateItemInput) (*items.BulkResult, error) {
		t.Fatal("bulk insert must not run without candidates")
		return nil, nil
	}, nil, nil)

	report, err := importDoc(t, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ItemsParsed != 0 || report.ItemsInserted != 0 || len(report.Errors) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if report.Message() != "no table rows found in document" {
		t.Fatalf("unexpected message %q", report.Message())
	}
}

func TestImportPDFSkipsTablesWithoutHeader(t *testing.T) {
	tables := []Table{{Rows: [][]string{
		{"Some", "Prose"},
		{"More", "Prose"},
	}}}
	svc := newTestImporter(t, func(context.Context, []items.CreateItemInput) (*items.BulkResult, error) {
		t.Fatal("bulk insert must not run without candidates")
		return nil, nil
	}, tables, nil)

	report, err := importDoc(t, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ItemsParsed != 0 {
		t.Fatalf("expected no parsed rows, got %d", report.ItemsParsed)
	}
}

func TestImportPDFParsesRowsAndMapsRejections(t *testing.T) {
	tables := []Table{{Rows: [][]string{
		{"Inventory Report", "2026"},
		{"Product Name", "Category", "Quantity in Stock", "Price (USD)"},
		{"Laptop", "Electronics", "4", "$1,299.99"},
		{"Mouse", "Electronics", "many", "9.99"},
		{"Keyboard", "Electronics", "7", "49.99"},
	}}}

	var gotInputs []items.CreateItemInput
	svc := newTestImporter(t, func(_ context.Context, inputs []items.CreateItemInput) (*items.BulkResult, error) {
		gotInputs = inputs
		return &items.BulkResult{
			Requested: len(inputs),
			Inserted:  len(inputs) - 1,
			Errors:    []items.BulkItemError{{Index: 1, Reason: "duplicate UNIQID 'SKU-K'"}},
		}, nil
	}, tables, nil)

	report, err := importDoc(t, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ItemsParsed != 3 {
		t.Fatalf("expected 3 data rows parsed, got %d", report.ItemsParsed)
	}
	if len(gotInputs) != 2 {
		t.Fatalf("expected 2 candidates handed to bulk insert, got %d", len(gotInputs))
	}
	if gotInputs[0].ProductName != "Laptop" || gotInputs[0].Price != 1299.99 {
		t.Fatalf("unexpected first candidate: %+v", gotInputs[0])
	}
	if report.ItemsInserted != 1 {
		t.Fatalf("expected 1 inserted, got %d", report.ItemsInserted)
	}

	// Row numbers are 1-indexed from the header row; the parse failure on
	// "Mouse" is row 3 and the insert rejection on "Keyboard" is row 4.
	if len(report.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", report.Errors)
	}
	if report.Errors[0] != `row 3: quantity "many" is not a whole number` {
		t.Fatalf("unexpected first error %q", report.Errors[0])
	}
	if report.Errors[1] != "row 4: duplicate UNIQID 'SKU-K'" {
		t.Fatalf("unexpected second error %q", report.Errors[1])
	}
}

func TestImportPDFAllRowsInserted(t *testing.T) {
	tables := []Table{{Rows: [][]string{
		{"Product Name", "Category", "Quantity", "Price"},
		{"Laptop", "Electronics", "4", "10"},
		{"Mouse", "Electronics", "2", "5"},
	}}}
	svc := newTestImporter(t, func(_ context.Context, inputs []items.CreateItemInput) (*items.BulkResult, error) {
		return &items.BulkResult{Requested: len(inputs), Inserted: len(inputs)}, nil
	}, tables, nil)

	report, err := importDoc(t, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ItemsParsed != 2 || report.ItemsInserted != 2 || len(report.Errors) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Message() != "successfully imported all 2 items" {
		t.Fatalf("unexpected message %q", report.Message())
	}
}

func TestImportPDFBulkFailurePropagates(t *testing.T) {
	tables := []Table{{Rows: [][]string{
		{"Product Name", "Price"},
		{"Laptop", "10"},
	}}}
	svc := newTestImporter(t, func(context.Context, []items.CreateItemInput) (*items.BulkResult, error) {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "database unavailable")
	}, tables, nil)

	_, err := importDoc(t, svc)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
