package items

import (
	"go.mongodb.org/mongo-driver/bson"
)

// reservedFields are server-owned and never taken from caller payloads.
var reservedFields = []string{"id", "_id", "dateAdded"}

// CreateItemInput captures a candidate record for creation. Extra holds any
// caller-supplied fields outside the declared schema.
type CreateItemInput struct {
	UniqueID    *string
	ProductName string
	Description *string
	PhoneNumber *string
	Category    string
	Quantity    int
	Price       float64
	Extra       map[string]any
}

func (in CreateItemInput) toItem() *Item {
	item := &Item{
		UniqueID:    in.UniqueID,
		ProductName: in.ProductName,
		Description: in.Description,
		PhoneNumber: in.PhoneNumber,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Price:       in.Price,
	}
	if len(in.Extra) > 0 {
		item.Extra = bson.M{}
		for k, v := range in.Extra {
			item.Extra[k] = v
		}
		for _, k := range reservedFields {
			delete(item.Extra, k)
		}
	}
	return item
}

// UpdateItemInput carries a partial field set. A nil pointer means the field
// was not supplied and must be left untouched; this is distinct from a
// pointer to a zero value.
type UpdateItemInput struct {
	UniqueID    *string
	ProductName *string
	Description *string
	PhoneNumber *string
	Category    *string
	Quantity    *int
	Price       *float64
	Extra       map[string]any
}

// IsEmpty reports whether no field at all was supplied.
func (in UpdateItemInput) IsEmpty() bool {
	return in.UniqueID == nil &&
		in.ProductName == nil &&
		in.Description == nil &&
		in.PhoneNumber == nil &&
		in.Category == nil &&
		in.Quantity == nil &&
		in.Price == nil &&
		len(in.Extra) == 0
}

// setFields builds the $set document from only the supplied fields.
func (in UpdateItemInput) setFields() bson.M {
	set := bson.M{}
	if in.UniqueID != nil {
		set["UNIQID"] = *in.UniqueID
	}
	if in.ProductName != nil {
		set["productName"] = *in.ProductName
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.PhoneNumber != nil {
		set["phoneNumber"] = *in.PhoneNumber
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Quantity != nil {
		set["quantity"] = *in.Quantity
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	for k, v := range in.Extra {
		reserved := false
		for _, r := range reservedFields {
			if k == r {
				reserved = true
				break
			}
		}
		if !reserved {
			set[k] = v
		}
	}
	return set
}
