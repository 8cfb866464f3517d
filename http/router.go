package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the analysis API. Every route except /health goes
// through the rate limiter.
func NewRouter(
	analysisHandler *AnalysisHandler,
	financingHandler *FinancingHandler,
	limiter *RateLimiter,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/analysis", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))

		r.Get("/defaults", analysisHandler.Defaults)
		r.Post("/calculate", analysisHandler.Calculate)
		r.Post("/compare-financing", financingHandler.Compare)
		r.Post("/export.csv", analysisHandler.ExportCSV)
		r.Get("/{id}", analysisHandler.Get)
	})

	return r
}
