package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rental-agent/domain"
	"rental-agent/export"
)

type AnalysisService interface {
	Analyze(ctx context.Context, in domain.PropertyInputs) (domain.AnalysisResult, error)
	Get(ctx context.Context, id string) (domain.AnalysisResult, error)
}

type AnalysisHandler struct {
	service AnalysisService
}

func NewAnalysisHandler(service AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Calculate runs a full analysis for the posted PropertyInputs.
func (h *AnalysisHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.PropertyInputs
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get returns a previously computed analysis by ID.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Defaults returns the seed scenario a new form starts from.
func (h *AnalysisHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DefaultInputs())
}

// ExportCSV runs the analysis and returns the full projection table as CSV.
func (h *AnalysisHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var input domain.PropertyInputs
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="projections.csv"`)
	if err := export.WriteCSV(w, result.Analysis.YearlyProjections); err != nil {
		zap.L().Error("writing csv export failed", zap.Error(err))
	}
}
