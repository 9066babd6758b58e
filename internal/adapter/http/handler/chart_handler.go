package handler

import (
	"net/http"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
)

// ChartHandler exposes the chart of accounts.
type ChartHandler struct {
	registry *domain.Registry
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(registry *domain.Registry) *ChartHandler {
	return &ChartHandler{registry: registry}
}

// List returns every account in the chart, ordered by code.
func (h *ChartHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(h.registry.All()))
}
