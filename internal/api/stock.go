package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateStockItem godoc
// @Summary      Add stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request body entity.CreateStockItemInput true "Stock item"
// @Success      201 {object} Response{payload=entity.StockItem}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /stock [post]
func (h *Handler) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateStockItemInput

	err := decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	item, err := h.s.CreateStockItem(ctx, in)
	if err != nil {
		h.fail(ctx, w, err, "create stock item")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, item)
}

// GetStockItem godoc
// @Summary      Stock item
// @Tags         stock
// @Produce      json
// @Param        id path string true "Stock item ID"
// @Success      200 {object} Response{payload=entity.StockItem}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /stock/{id} [get]
func (h *Handler) GetStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	item, err := h.s.GetStockItem(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get stock item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// ListStockItems godoc
// @Summary      Stock
// @Tags         stock
// @Produce      json
// @Param        search query string false "Part number, serial number, description, location"
// @Param        condition query string false "NEW, SERVICEABLE, UNSERVICEABLE, OVERHAULED"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.StockItem]}
// @Security     BearerAuth
// @Router       /stock [get]
func (h *Handler) ListStockItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListStockItems(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list stock items")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateStockItem godoc
// @Summary      Update stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id path string true "Stock item ID"
// @Param        request body entity.UpdateStockItemInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.StockItem}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /stock/{id} [put]
func (h *Handler) UpdateStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateStockItemInput

	err = decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	item, err := h.s.UpdateStockItem(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, err, "update stock item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// DeleteStockItem godoc
// @Summary      Delete stock item
// @Tags         stock
// @Produce      json
// @Param        id path string true "Stock item ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /stock/{id} [delete]
func (h *Handler) DeleteStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteStockItem(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete stock item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
