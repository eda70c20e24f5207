package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/stockeye/internal/service"
)

// SaleHandler handles the sale log and its aggregated statistics.
type SaleHandler struct {
	sales *service.SalesService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(sales *service.SalesService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// HandleList returns the sale log in insertion order.
// GET /api/sales
// Response: {"sales": [...]}
func (h *SaleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.List(r.Context())
	if err != nil {
		slog.Error("list sales", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sales": toSaleDTOs(sales),
	})
}

// HandleStats returns total/today/week volume and the top-selling product.
// GET /api/sales/stats
// Response: {"stats": {...}}
func (h *SaleHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sales.Stats(r.Context(), time.Now())
	if err != nil {
		slog.Error("sales stats", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stats": toSalesStatsDTO(stats),
	})
}
