package items

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the Mongo collection holding item documents.
const CollectionName = "items"

// Item is a stored inventory record. Callers may attach fields beyond the
// declared ones; those ride along in Extra and round-trip through both bson
// and JSON untouched.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UniqueID    *string            `bson:"UNIQID,omitempty" json:"UNIQID,omitempty"`
	ProductName string             `bson:"productName" json:"productName"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	PhoneNumber *string            `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	DateAdded   time.Time          `bson:"dateAdded" json:"dateAdded"`

	Extra bson.M `bson:",inline" json:"-"`
}

// MarshalJSON merges the open-extension fields back into the top-level
// object. Declared fields win on name collisions.
func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	base, err := json.Marshal(alias(i))
	if err != nil {
		return nil, err
	}
	if len(i.Extra) == 0 {
		return base, nil
	}

	merged := map[string]json.RawMessage{}
	for k, v := range i.Extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}

	var declared map[string]json.RawMessage
	if err := json.Unmarshal(base, &declared); err != nil {
		return nil, err
	}
	for k, v := range declared {
		merged[k] = v
	}
	return json.Marshal(merged)
}
