package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inovaantary/inventory-api/api/controllers"
	"github.com/inovaantary/inventory-api/api/middleware"
	importsvc "github.com/inovaantary/inventory-api/internal/importer"
	itemsvc "github.com/inovaantary/inventory-api/internal/items"
	"github.com/inovaantary/inventory-api/pkg/config"
	"github.com/inovaantary/inventory-api/pkg/db"
	"github.com/inovaantary/inventory-api/pkg/logger"
	"github.com/inovaantary/inventory-api/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	itemService itemsvc.Service,
	importService importsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/", controllers.Welcome())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Liveness())
		r.Get("/ready", controllers.Readiness(dbP, logg))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", controllers.ListItems(itemService, logg))
		r.Post("/create", controllers.CreateItem(itemService, logg))
		r.Post("/bulk", controllers.BulkCreateItems(itemService, logg))
		r.Post("/upload-pdf", controllers.ImportItemsPDF(importService, logg, cfg.Import.MaxUploadBytes()))
		r.Get("/{id}", controllers.GetItem(itemService, logg))
		r.Put("/update/{id}", controllers.UpdateItem(itemService, logg))
		r.Delete("/delete/{id}", controllers.DeleteItem(itemService, logg))
		r.Patch("/{id}/adjust_quantity", controllers.AdjustQuantity(itemService, logg))
	})

	return r
}
