package items

import (
	"testing"

	"github.com/inovaantary/inventory-api/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFiltersQueryCombinesWithAnd(t *testing.T) {
	min := 10.0
	max := 20.0
	filters := ListFilters{
		Category: "Tools",
		Search:   "wid",
		MinPrice: &min,
		MaxPrice: &max,
	}

	query := filters.query()
	if query["category"] != "Tools" {
		t.Fatalf("expected exact category match, got %v", query["category"])
	}

	search, ok := query["productName"].(bson.M)
	if !ok {
		t.Fatalf("expected regex search clause, got %v", query["productName"])
	}
	if search["$options"] != "i" {
		t.Fatalf("expected case-insensitive search, got %v", search)
	}

	price, ok := query["price"].(bson.M)
	if !ok {
		t.Fatalf("expected price range clause, got %v", query["price"])
	}
	if price["$gte"] != 10.0 || price["$lte"] != 20.0 {
		t.Fatalf("expected inclusive bounds, got %v", price)
	}
}

func TestListFiltersQueryEscapesRegexMeta(t *testing.T) {
	filters := ListFilters{Search: "100% (new)"}
	query := filters.query()

	search := query["productName"].(bson.M)
	if search["$regex"] != `100% \(new\)` {
		t.Fatalf("expected escaped regex, got %v", search["$regex"])
	}
}

func TestListFiltersQueryEmpty(t *testing.T) {
	if query := (ListFilters{}).query(); len(query) != 0 {
		t.Fatalf("expected empty filter, got %v", query)
	}
}

func TestListInputSort(t *testing.T) {
	input := ListInput{SortField: "price", SortDesc: true}
	sort := input.sort()
	if len(sort) != 1 || sort[0].Key != "price" || sort[0].Value != -1 {
		t.Fatalf("expected descending price sort, got %v", sort)
	}

	input = ListInput{SortField: "price"}
	sort = input.sort()
	if sort[0].Value != 1 {
		t.Fatalf("expected ascending sort, got %v", sort)
	}

	if (ListInput{}).sort() != nil {
		t.Fatal("expected natural order when no sort field given")
	}
}

func TestListInputPaginationOffset(t *testing.T) {
	input := ListInput{Pagination: pagination.Params{Page: 3, PageSize: 10}}
	if got := input.Pagination.Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
}
