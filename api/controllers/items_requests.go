package controllers

import (
	"encoding/json"

	itemsvc "github.com/inovaantary/inventory-api/internal/items"
)

// declaredItemFields are the JSON keys bound to typed struct fields; anything
// else in an item payload is an open extension field. Server-owned keys are
// stripped alongside them.
var declaredItemFields = []string{
	"UNIQID", "productName", "description", "phoneNumber",
	"category", "quantity", "price",
	"id", "_id", "dateAdded",
}

type createItemRequest struct {
	UniqueID    *string `json:"UNIQID,omitempty"`
	ProductName string  `json:"productName" validate:"required"`
	Description *string `json:"description,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Category    string  `json:"category" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`

	Extra map[string]any `json:"-"`
}

// UnmarshalJSON decodes the declared fields and collects every remaining key
// as an open extension field.
func (r *createItemRequest) UnmarshalJSON(data []byte) error {
	type plain createItemRequest
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	extra, err := extensionFields(data)
	if err != nil {
		return err
	}

	*r = createItemRequest(known)
	r.Extra = extra
	return nil
}

func (r createItemRequest) toInput() itemsvc.CreateItemInput {
	return itemsvc.CreateItemInput{
		UniqueID:    r.UniqueID,
		ProductName: r.ProductName,
		Description: r.Description,
		PhoneNumber: r.PhoneNumber,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Extra:       r.Extra,
	}
}

type updateItemRequest struct {
	UniqueID    *string  `json:"UNIQID,omitempty"`
	ProductName *string  `json:"productName,omitempty"`
	Description *string  `json:"description,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`

	Extra map[string]any `json:"-"`
}

func (r *updateItemRequest) UnmarshalJSON(data []byte) error {
	type plain updateItemRequest
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	extra, err := extensionFields(data)
	if err != nil {
		return err
	}

	*r = updateItemRequest(known)
	r.Extra = extra
	return nil
}

func (r updateItemRequest) toInput() itemsvc.UpdateItemInput {
	return itemsvc.UpdateItemInput{
		UniqueID:    r.UniqueID,
		ProductName: r.ProductName,
		Description: r.Description,
		PhoneNumber: r.PhoneNumber,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Extra:       r.Extra,
	}
}

type adjustQuantityRequest struct {
	Change int `json:"change"`
}

// extensionFields returns the payload keys outside the declared schema,
// decoded as plain values.
func extensionFields(data []byte) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range declaredItemFields {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	extra := make(map[string]any, len(raw))
	for k, v := range raw {
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return nil, err
		}
		extra[k] = value
	}
	return extra, nil
}
