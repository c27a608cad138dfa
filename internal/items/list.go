package items

import (
	"regexp"

	"github.com/inovaantary/inventory-api/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson"
)

// ListFilters describe the supported filter knobs for the list endpoint.
// All supplied filters combine with logical AND.
type ListFilters struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

// ListInput captures the inputs needed to filter, sort and paginate items.
type ListInput struct {
	Filters    ListFilters
	SortField  string
	SortDesc   bool
	Pagination pagination.Params
}

// query translates the filters into a Mongo filter document.
func (f ListFilters) query() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		filter["productName"] = bson.M{
			"$regex":   regexp.QuoteMeta(f.Search),
			"$options": "i",
		}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// sort translates the sort knobs into a Mongo sort document, or nil for the
// store's natural order.
func (in ListInput) sort() bson.D {
	if in.SortField == "" {
		return nil
	}
	dir := 1
	if in.SortDesc {
		dir = -1
	}
	return bson.D{{Key: in.SortField, Value: dir}}
}
