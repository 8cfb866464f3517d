package http

import (
	"context"
	"net/http"

	"rental-agent/domain"
)

type FinancingService interface {
	Compare(ctx context.Context, input domain.FinancingComparisonInput) (domain.FinancingComparison, error)
}

type FinancingHandler struct {
	service FinancingService
}

func NewFinancingHandler(service FinancingService) *FinancingHandler {
	return &FinancingHandler{service: service}
}

func (h *FinancingHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.FinancingComparisonInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
