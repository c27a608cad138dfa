package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKey reports whether the provided error references a Mongo
// duplicate key violation, either from a single write or a bulk write.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err)
}

// IsNoDocuments reports whether the error means no document matched.
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
