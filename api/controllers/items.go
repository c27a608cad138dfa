package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inovaantary/inventory-api/api/responses"
	"github.com/inovaantary/inventory-api/api/validators"
	itemsvc "github.com/inovaantary/inventory-api/internal/items"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/logger"
	"github.com/inovaantary/inventory-api/pkg/pagination"
)

// CreateItem handles creation of a single inventory item.
func CreateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// GetItem returns a single item by its identifier.
func GetItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		item, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ListItems returns items matching the filter, sort and pagination parameters.
func ListItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		input, err := parseListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if items == nil {
			items = []itemsvc.Item{}
		}

		responses.WriteSuccess(w, items)
	}
}

// UpdateItem applies a partial update; absent fields are left untouched.
func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), chi.URLParam(r, "id"), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// DeleteItem removes an item permanently.
func DeleteItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// AdjustQuantity applies a signed stock delta atomically and returns the
// post-adjustment item.
func AdjustQuantity(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload adjustQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AdjustQuantity(r.Context(), chi.URLParam(r, "id"), payload.Change)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// BulkCreateItems inserts a batch of items, itemizing per-item failures
// instead of aborting the batch.
func BulkCreateItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload []createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]any{"error": err.Error()}))
			return
		}

		inputs := make([]itemsvc.CreateItemInput, 0, len(payload))
		for _, req := range payload {
			inputs = append(inputs, req.toInput())
		}

		result, err := svc.BulkCreate(r.Context(), inputs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bulkCreateResponse{
			Message:       result.Message(),
			InsertedCount: result.Inserted,
			Errors:        bulkErrors(result.Errors),
		})
	}
}

type bulkCreateResponse struct {
	Message       string                  `json:"message"`
	InsertedCount int                     `json:"insertedCount"`
	Errors        []itemsvc.BulkItemError `json:"errors"`
}

func bulkErrors(errs []itemsvc.BulkItemError) []itemsvc.BulkItemError {
	if errs == nil {
		return []itemsvc.BulkItemError{}
	}
	return errs
}

func parseListInput(r *http.Request) (itemsvc.ListInput, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
	if err != nil {
		return itemsvc.ListInput{}, err
	}
	pageSize, err := validators.ParseQueryInt(r, "pageSize", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
	if err != nil {
		return itemsvc.ListInput{}, err
	}
	minPrice, err := validators.ParseQueryFloat(r, "minPrice")
	if err != nil {
		return itemsvc.ListInput{}, err
	}
	maxPrice, err := validators.ParseQueryFloat(r, "maxPrice")
	if err != nil {
		return itemsvc.ListInput{}, err
	}
	sortDesc, err := validators.ParseQuerySortDirection(r, "sortDirection")
	if err != nil {
		return itemsvc.ListInput{}, err
	}

	query := r.URL.Query()
	return itemsvc.ListInput{
		Filters: itemsvc.ListFilters{
			Category: validators.SanitizeString(query.Get("category"), 128),
			Search:   validators.SanitizeString(query.Get("search"), 256),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
		},
		SortField:  validators.SanitizeString(query.Get("sortField"), 64),
		SortDesc:   sortDesc,
		Pagination: pagination.Params{Page: page, PageSize: pageSize},
	}, nil
}
