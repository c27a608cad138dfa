package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/inovaantary/inventory-api/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:4200",                    // local Angular dev server
	"https://inovaantary-frotend.onrender.com", // deployed frontend
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
