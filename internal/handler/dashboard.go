package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/stockeye/internal/service"
)

// DashboardHandler serves the combined inventory overview.
type DashboardHandler struct {
	inventory *service.InventoryService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(inventory *service.InventoryService) *DashboardHandler {
	return &DashboardHandler{inventory: inventory}
}

// HandleOverview returns the urgency-sorted products and the warning summary
// tallies. The tallies count low stock independently of expiration, so a
// product can contribute to two tallies while carrying a single badge.
// GET /api/dashboard
// Response: {"products": [...], "warnings": {...}}
func (h *DashboardHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	overview, err := h.inventory.Overview(r.Context(), now)
	if err != nil {
		slog.Error("dashboard overview", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": toProductDTOs(overview.Products, now),
		"warnings": toWarningSummaryDTO(overview.Summary),
	})
}
