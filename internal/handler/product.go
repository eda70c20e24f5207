package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
	"github.com/msomdec/stockeye/internal/service"
)

// ProductHandler handles product CRUD and the stock adjustment flows.
type ProductHandler struct {
	inventory *service.InventoryService
	sales     *service.SalesService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(inventory *service.InventoryService, sales *service.SalesService) *ProductHandler {
	return &ProductHandler{inventory: inventory, sales: sales}
}

// HandleList returns all products ordered by urgency, each with its warning
// badge.
// GET /api/products
// Response: {"products": [...]}
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	overview, err := h.inventory.Overview(r.Context(), now)
	if err != nil {
		slog.Error("list products", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": toProductDTOs(overview.Products, now),
	})
}

// HandleCreate adds a new product owned by the signed-in user.
// POST /api/products
// Request:  {"name":"...","quantity":N,"expirationDate":"YYYY-MM-DD"}
// Response: {"product": {...}}
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Quantity       int    `json:"quantity"`
		ExpirationDate string `json:"expirationDate"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	draft := domain.ProductDraft{Name: req.Name, Quantity: req.Quantity}
	if req.ExpirationDate != "" {
		date, err := domain.ParseDate(req.ExpirationDate)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		draft.ExpirationDate = date
	}

	userID := ""
	if user := UserFromContext(r.Context()); user != nil {
		userID = user.ID
	}

	product, err := h.inventory.Add(r.Context(), userID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create product", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"product": toProductDTO(*product, time.Now()),
	})
}

// HandleUpdate merges the supplied fields into a product. Omitted fields are
// left unchanged.
// PATCH /api/products/{id}
// Request:  {"name":"...","quantity":N,"expirationDate":"YYYY-MM-DD"} (all optional)
// Response: {"product": {...}}
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           *string `json:"name"`
		Quantity       *int    `json:"quantity"`
		ExpirationDate *string `json:"expirationDate"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	upd := domain.ProductUpdate{Name: req.Name, Quantity: req.Quantity}
	if req.ExpirationDate != nil {
		date, err := domain.ParseDate(*req.ExpirationDate)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		upd.ExpirationDate = &date
	}

	product, err := h.inventory.Update(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		h.writeUpdateError(w, err, "update product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"product": toProductDTO(*product, time.Now()),
	})
}

// HandleDelete removes a product. Deleting an unknown ID succeeds; historical
// sales keep their snapshot of the product name.
// DELETE /api/products/{id}
// Response: 204 No Content
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.Delete(r.Context(), r.PathValue("id")); err != nil {
		slog.Error("delete product", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAdjustQuantity sets a product's stock level without recording a sale.
// POST /api/products/{id}/quantity
// Request:  {"quantity":N}
// Response: {"product": {...}}
func (h *ProductHandler) HandleAdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	product, err := h.sales.AdjustQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		h.writeUpdateError(w, err, "adjust quantity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"product": toProductDTO(*product, time.Now()),
	})
}

// HandleSell sells units of a product: decrements stock and appends a sale.
// The sold quantity is clamped to the available stock.
// POST /api/products/{id}/sell
// Request:  {"quantity":N}
// Response: {"sale": {...}, "product": {...}}
func (h *ProductHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	userID := ""
	if user := UserFromContext(r.Context()); user != nil {
		userID = user.ID
	}

	result, err := h.sales.RecordSale(r.Context(), userID, r.PathValue("id"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Product not found.")
		case errors.Is(err, domain.ErrOutOfStock):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("record sale", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sale":    toSaleDTO(*result.Sale),
		"product": toProductDTO(*result.Product, time.Now()),
	})
}

func (h *ProductHandler) writeUpdateError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Product not found.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
