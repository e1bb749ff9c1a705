package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateCorrectiveAction godoc
// @Summary      Raise corrective action
// @Tags         corrective-actions
// @Accept       json,mpfd
// @Produce      json
// @Param        request body entity.CreateCorrectiveActionInput true "Corrective action"
// @Success      201 {object} Response{payload=entity.CorrectiveAction}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /corrective-actions [post]
func (h *Handler) CreateCorrectiveAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateCorrectiveActionInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	ca, err := h.s.CreateCorrectiveAction(ctx, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "create corrective action")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ca)
}

// GetCorrectiveAction godoc
// @Summary      Corrective action
// @Tags         corrective-actions
// @Produce      json
// @Param        id path string true "Corrective action ID"
// @Success      200 {object} Response{payload=entity.CorrectiveAction}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /corrective-actions/{id} [get]
func (h *Handler) GetCorrectiveAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	ca, err := h.s.GetCorrectiveAction(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get corrective action")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ca)
}

// ListCorrectiveActions godoc
// @Summary      Corrective actions
// @Tags         corrective-actions
// @Produce      json
// @Param        findingId query string false "Finding ID"
// @Param        search query string false "Title, description, assignee"
// @Param        status query string false "OPEN, IN_PROGRESS, COMPLETED, CANCELLED"
// @Param        priority query string false "LOW, MEDIUM, HIGH, CRITICAL"
// @Param        from query string false "Due from"
// @Param        to query string false "Due to"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.CorrectiveAction]}
// @Security     BearerAuth
// @Router       /corrective-actions [get]
func (h *Handler) ListCorrectiveActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	f, err := parseListFilter(q)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	err = parentFilter(q, "findingId", &f)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListCorrectiveActions(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list corrective actions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateCorrectiveAction godoc
// @Summary      Update corrective action
// @Description  Completing an action stamps its completion date
// @Tags         corrective-actions
// @Accept       json,mpfd
// @Produce      json
// @Param        id path string true "Corrective action ID"
// @Param        request body entity.UpdateCorrectiveActionInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.CorrectiveAction}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /corrective-actions/{id} [put]
func (h *Handler) UpdateCorrectiveAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateCorrectiveActionInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	ca, err := h.s.UpdateCorrectiveAction(ctx, id, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "update corrective action")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ca)
}

// DeleteCorrectiveAction godoc
// @Summary      Delete corrective action
// @Tags         corrective-actions
// @Produce      json
// @Param        id path string true "Corrective action ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /corrective-actions/{id} [delete]
func (h *Handler) DeleteCorrectiveAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteCorrectiveAction(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete corrective action")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
