package items

import (
	"context"
	"fmt"
	"sort"

	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service exposes the item record lifecycle and bulk ingestion pipeline.
type Service interface {
	Create(ctx context.Context, input CreateItemInput) (*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, input ListInput) ([]Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	Delete(ctx context.Context, id string) error
	AdjustQuantity(ctx context.Context, id string, change int) (*Item, error)
	BulkCreate(ctx context.Context, inputs []CreateItemInput) (*BulkResult, error)
}

// BulkItemError ties a rejection reason to the index of the offending input.
type BulkItemError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkResult reports the outcome of a partial-failure batch insert.
type BulkResult struct {
	Requested int
	Inserted  int
	Errors    []BulkItemError
}

// Message renders the human-readable outcome, distinguishing complete from
// partial success.
func (r *BulkResult) Message() string {
	if len(r.Errors) == 0 {
		return fmt.Sprintf("successfully inserted all %d items", r.Inserted)
	}
	return fmt.Sprintf("inserted %d of %d items; %d rejected", r.Inserted, r.Requested, len(r.Errors))
}

// ServiceParams wires the service dependencies.
type ServiceParams struct {
	Repo   ItemRepository
	Logger *logger.Logger
}

type service struct {
	repo ItemRepository
	logg *logger.Logger
}

// NewService builds the item service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	return &service{
		repo: params.Repo,
		logg: params.Logger,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*Item, error) {
	if violations := validateCandidate(input); len(violations) > 0 {
		return nil, violationsError(violations)
	}
	return s.repo.Create(ctx, input.toItem())
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *service) List(ctx context.Context, input ListInput) ([]Item, error) {
	return s.repo.List(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidArgument, "no update data provided")
	}
	if violations := validateUpdate(input); len(violations) > 0 {
		return nil, violationsError(violations)
	}
	return s.repo.Update(ctx, oid, input.setFields())
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}

func (s *service) AdjustQuantity(ctx context.Context, id string, change int) (*Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	// The adjustment path intentionally enforces no lower bound: unlike
	// create/update it may drive quantity to zero or negative.
	return s.repo.IncrementQuantity(ctx, oid, change)
}

// BulkCreate validates each candidate and inserts the survivors in a single
// unordered batch. Per-candidate validation failures and duplicate UNIQID
// rejections are itemized, never fatal. An empty input is rejected.
func (s *service) BulkCreate(ctx context.Context, inputs []CreateItemInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidArgument, "no items provided")
	}

	result := &BulkResult{Requested: len(inputs)}

	var docs []*Item
	var docIndex []int
	for i, input := range inputs {
		if violations := validateCandidate(input); len(violations) > 0 {
			result.Errors = append(result.Errors, BulkItemError{
				Index:  i,
				Reason: violationsReason(violations),
			})
			continue
		}
		docs = append(docs, input.toItem())
		docIndex = append(docIndex, i)
	}

	inserted, rejected, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	result.Inserted = inserted

	for _, rej := range rejected {
		idx := rej.Index
		if idx >= 0 && idx < len(docIndex) {
			idx = docIndex[idx]
		}
		result.Errors = append(result.Errors, BulkItemError{Index: idx, Reason: rej.Reason})
	}

	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Index < result.Errors[j].Index
	})

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"requested": result.Requested,
			"inserted":  result.Inserted,
			"rejected":  len(result.Errors),
		})
		s.logg.Info(ctx, "bulk insert complete")
	}

	return result, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(pkgerrors.CodeInvalidArgument, err, "invalid item ID format")
	}
	return oid, nil
}
