package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inovaantary/inventory-api/pkg/db"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ItemRepository defines persistence operations for item documents.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Item, error)
	List(ctx context.Context, input ListInput) ([]Item, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*Item, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*Item, error)
	InsertMany(ctx context.Context, items []*Item) (int, []BulkItemError, error)
}

// duplicateKeyCode is Mongo's E11000 duplicate key error code.
const duplicateKeyCode = 11000

// UniqueIDIndex declares the sparse unique constraint on the business
// identifier. Sparse means documents without a UNIQID are exempt.
var UniqueIDIndex = mongo.IndexModel{
	Keys: bson.D{{Key: "UNIQID", Value: 1}},
	Options: options.Index().
		SetUnique(true).
		SetSparse(true).
		SetName("uniq_uniqid"),
}

// Repository persists items in a Mongo collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository builds a repository tied to the provided collection.
func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// EnsureIndexes creates the uniqueness constraint. CreateOne is idempotent:
// an identical existing index is a no-op.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.coll.Indexes().CreateOne(ctx, UniqueIDIndex); err != nil {
		return fmt.Errorf("ensuring UNIQID index: %w", err)
	}
	return nil
}

// Create assigns the server-side fields and inserts the document.
func (r *Repository) Create(ctx context.Context, item *Item) (*Item, error) {
	item.DateAdded = time.Now().UTC()

	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		if db.IsDuplicateKey(err) {
			return nil, conflictError(item.UniqueID, err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "inserting item")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return item, nil
}

// GetByID fetches a single document.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Item, error) {
	var item Item
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, notFoundError(id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching item")
	}
	return &item, nil
}

// List runs the filter, sort and pagination against the collection.
func (r *Repository) List(ctx context.Context, input ListInput) ([]Item, error) {
	norm := pagination.Normalize(input.Pagination)
	opts := options.Find().
		SetSkip(int64(norm.Offset())).
		SetLimit(int64(norm.PageSize))
	if sort := input.sort(); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, input.Filters.query(), opts)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	defer cursor.Close(ctx)

	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding items")
	}
	return items, nil
}

// Update applies the supplied $set fields and returns the document state
// after the update.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item Item
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, notFoundError(id)
		}
		if db.IsDuplicateKey(err) {
			uniqid, _ := set["UNIQID"].(string)
			return nil, conflictError(&uniqid, err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating item")
	}
	return &item, nil
}

// Delete removes the document permanently.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting item")
	}
	if result.DeletedCount == 0 {
		return notFoundError(id)
	}
	return nil
}

// IncrementQuantity adjusts quantity atomically with a single $inc, so
// concurrent adjustments never lose updates. No lower bound is applied.
func (r *Repository) IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item Item
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"quantity": delta}}, opts).Decode(&item)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, notFoundError(id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjusting quantity")
	}
	return &item, nil
}

// InsertMany performs one unordered batch insert. Duplicate-key rejections
// are reported per document and do not block the rest of the batch.
func (r *Repository) InsertMany(ctx context.Context, items []*Item) (int, []BulkItemError, error) {
	if len(items) == 0 {
		return 0, nil, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		item.DateAdded = now
		docs = append(docs, item)
	}

	opts := options.InsertMany().SetOrdered(false)
	result, err := r.coll.InsertMany(ctx, docs, opts)

	inserted := 0
	if result != nil {
		inserted = len(result.InsertedIDs)
	}

	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) {
			var rejected []BulkItemError
			for _, writeErr := range bulkErr.WriteErrors {
				reason := writeErr.Message
				if writeErr.Code == duplicateKeyCode && writeErr.Index >= 0 && writeErr.Index < len(items) {
					reason = duplicateReason(items[writeErr.Index].UniqueID)
				}
				rejected = append(rejected, BulkItemError{
					Index:  writeErr.Index,
					Reason: reason,
				})
			}
			// Unordered writes report per-document errors only; the batch
			// itself succeeded for everything else.
			inserted = len(items) - len(rejected)
			return inserted, rejected, nil
		}
		return inserted, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bulk inserting items")
	}

	return inserted, nil, nil
}

func duplicateReason(uniqueID *string) string {
	if uniqueID != nil && *uniqueID != "" {
		return fmt.Sprintf("duplicate UNIQID '%s'", *uniqueID)
	}
	return "duplicate unique identifier"
}

func conflictError(uniqueID *string, cause error) *pkgerrors.Error {
	msg := "item with this UNIQID already exists"
	if uniqueID != nil && *uniqueID != "" {
		msg = fmt.Sprintf("item with UNIQID '%s' already exists", *uniqueID)
	}
	return pkgerrors.Wrap(pkgerrors.CodeConflict, cause, msg)
}

func notFoundError(id primitive.ObjectID) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item with ID %s not found", id.Hex()))
}
