package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateFlightRecord godoc
// @Summary      Create flight record
// @Description  JSON body, or multipart with the record in "data" and up to 25MB per file in "files"
// @Tags         flight-records
// @Accept       json,mpfd
// @Produce      json
// @Param        request body entity.CreateFlightRecordInput true "Flight record"
// @Success      201 {object} Response{payload=entity.FlightRecord}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /flight-records [post]
func (h *Handler) CreateFlightRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateFlightRecordInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rec, err := h.s.CreateFlightRecord(ctx, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "create flight record")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, rec)
}

// GetFlightRecord godoc
// @Summary      Flight record
// @Tags         flight-records
// @Produce      json
// @Param        id path string true "Flight record ID"
// @Success      200 {object} Response{payload=entity.FlightRecord}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /flight-records/{id} [get]
func (h *Handler) GetFlightRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rec, err := h.s.GetFlightRecord(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get flight record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, rec)
}

// ListFlightRecords godoc
// @Summary      Flight records
// @Tags         flight-records
// @Produce      json
// @Param        search query string false "Registration, type, airports, pilot, remarks"
// @Param        status query string false "DRAFT, SUBMITTED, APPROVED; comma separated"
// @Param        from query string false "Flight date from, YYYY-MM-DD"
// @Param        to query string false "Flight date to, YYYY-MM-DD"
// @Param        page query int false "Page, from 1"
// @Param        limit query int false "Page size, up to 100"
// @Success      200 {object} Response{payload=entity.Page[entity.FlightRecord]}
// @Security     BearerAuth
// @Router       /flight-records [get]
func (h *Handler) ListFlightRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListFlightRecords(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list flight records")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateFlightRecord godoc
// @Summary      Update flight record
// @Description  Partial update; sent files are added to the existing ones
// @Tags         flight-records
// @Accept       json,mpfd
// @Produce      json
// @Param        id path string true "Flight record ID"
// @Param        request body entity.UpdateFlightRecordInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.FlightRecord}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /flight-records/{id} [put]
func (h *Handler) UpdateFlightRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateFlightRecordInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rec, err := h.s.UpdateFlightRecord(ctx, id, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "update flight record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, rec)
}

// DeleteFlightRecord godoc
// @Summary      Delete flight record
// @Description  Removes the record with its files and reports the outcome per file
// @Tags         flight-records
// @Produce      json
// @Param        id path string true "Flight record ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /flight-records/{id} [delete]
func (h *Handler) DeleteFlightRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteFlightRecord(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete flight record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
