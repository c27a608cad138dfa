package items

import (
	"fmt"
	"strings"

	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
)

// FieldViolation names one field-level constraint failure.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v FieldViolation) String() string {
	return fmt.Sprintf("%s %s", v.Field, v.Reason)
}

// validateCandidate enforces the record constraints on a candidate field set.
// It is pure: no storage is consulted, uniqueness is the store's job.
func validateCandidate(in CreateItemInput) []FieldViolation {
	var violations []FieldViolation
	if strings.TrimSpace(in.ProductName) == "" {
		violations = append(violations, FieldViolation{Field: "productName", Reason: "is required"})
	}
	if strings.TrimSpace(in.Category) == "" {
		violations = append(violations, FieldViolation{Field: "category", Reason: "is required"})
	}
	if in.Quantity <= 0 {
		violations = append(violations, FieldViolation{Field: "quantity", Reason: "must be greater than 0"})
	}
	if in.Price <= 0 {
		violations = append(violations, FieldViolation{Field: "price", Reason: "must be greater than 0"})
	}
	return violations
}

// validateUpdate applies the same numeric constraints to supplied update
// fields. Required fields may be omitted, but cannot be blanked out.
func validateUpdate(in UpdateItemInput) []FieldViolation {
	var violations []FieldViolation
	if in.ProductName != nil && strings.TrimSpace(*in.ProductName) == "" {
		violations = append(violations, FieldViolation{Field: "productName", Reason: "cannot be empty"})
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		violations = append(violations, FieldViolation{Field: "category", Reason: "cannot be empty"})
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		violations = append(violations, FieldViolation{Field: "quantity", Reason: "must be greater than 0"})
	}
	if in.Price != nil && *in.Price <= 0 {
		violations = append(violations, FieldViolation{Field: "price", Reason: "must be greater than 0"})
	}
	return violations
}

func violationsError(violations []FieldViolation) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(violations)
}

func violationsReason(violations []FieldViolation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}
