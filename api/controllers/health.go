package controllers

import (
	"net/http"

	"github.com/inovaantary/inventory-api/api/responses"
	"github.com/inovaantary/inventory-api/pkg/db"
	pkgerrors "github.com/inovaantary/inventory-api/pkg/errors"
	"github.com/inovaantary/inventory-api/pkg/logger"
)

// Welcome greets callers on the API root.
func Welcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"message": "Welcome to the Inovaantary Inventory API",
		})
	}
}

// Liveness reports process health.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readiness reports whether the datastore is reachable.
func Readiness(pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "datastore not configured"))
			return
		}
		if err := pinger.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "datastore unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
