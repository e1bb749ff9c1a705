package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateAudit godoc
// @Summary      Plan audit
// @Tags         audits
// @Accept       json
// @Produce      json
// @Param        request body entity.CreateAuditInput true "Audit"
// @Success      201 {object} Response{payload=entity.Audit}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /audits [post]
func (h *Handler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateAuditInput

	err := decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	a, err := h.s.CreateAudit(ctx, in)
	if err != nil {
		h.fail(ctx, w, err, "create audit")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, a)
}

// GetAudit godoc
// @Summary      Audit
// @Tags         audits
// @Produce      json
// @Param        id path string true "Audit ID"
// @Success      200 {object} Response{payload=entity.Audit}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /audits/{id} [get]
func (h *Handler) GetAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	a, err := h.s.GetAudit(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get audit")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}

// ListAudits godoc
// @Summary      Audits
// @Tags         audits
// @Produce      json
// @Param        search query string false "Title, auditor, department"
// @Param        status query string false "PLANNED, IN_PROGRESS, COMPLETED, CANCELLED"
// @Param        auditType query string false "INTERNAL, EXTERNAL, REGULATORY"
// @Param        from query string false "Scheduled from"
// @Param        to query string false "Scheduled to"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.Audit]}
// @Security     BearerAuth
// @Router       /audits [get]
func (h *Handler) ListAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListAudits(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list audits")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateAudit godoc
// @Summary      Update audit
// @Description  Completing an audit stamps its completion date when none is given
// @Tags         audits
// @Accept       json
// @Produce      json
// @Param        id path string true "Audit ID"
// @Param        request body entity.UpdateAuditInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.Audit}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /audits/{id} [put]
func (h *Handler) UpdateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateAuditInput

	err = decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	a, err := h.s.UpdateAudit(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, err, "update audit")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}

// DeleteAudit godoc
// @Summary      Delete audit
// @Tags         audits
// @Produce      json
// @Param        id path string true "Audit ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /audits/{id} [delete]
func (h *Handler) DeleteAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteAudit(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete audit")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// CreateFinding godoc
// @Summary      Record finding
// @Tags         findings
// @Accept       json
// @Produce      json
// @Param        request body entity.CreateFindingInput true "Finding"
// @Success      201 {object} Response{payload=entity.Finding}
// @Failure      400 {object} Response
// @Security     BearerAuth
// @Router       /findings [post]
func (h *Handler) CreateFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateFindingInput

	err := decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	f, err := h.s.CreateFinding(ctx, in)
	if err != nil {
		h.fail(ctx, w, err, "create finding")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, f)
}

// GetFinding godoc
// @Summary      Finding
// @Tags         findings
// @Produce      json
// @Param        id path string true "Finding ID"
// @Success      200 {object} Response{payload=entity.Finding}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /findings/{id} [get]
func (h *Handler) GetFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	f, err := h.s.GetFinding(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get finding")
		return
	}

	SendJSON(ctx, w, http.StatusOK, f)
}

// ListFindings godoc
// @Summary      Findings
// @Tags         findings
// @Produce      json
// @Param        auditId query string false "Audit ID"
// @Param        search query string false "Title, description"
// @Param        status query string false "OPEN, CLOSED"
// @Param        severity query string false "LOW, MEDIUM, HIGH, CRITICAL"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.Finding]}
// @Security     BearerAuth
// @Router       /findings [get]
func (h *Handler) ListFindings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	f, err := parseListFilter(q)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	err = parentFilter(q, "auditId", &f)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListFindings(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list findings")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateFinding godoc
// @Summary      Update finding
// @Tags         findings
// @Accept       json
// @Produce      json
// @Param        id path string true "Finding ID"
// @Param        request body entity.UpdateFindingInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.Finding}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /findings/{id} [put]
func (h *Handler) UpdateFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateFindingInput

	err = decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	f, err := h.s.UpdateFinding(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, err, "update finding")
		return
	}

	SendJSON(ctx, w, http.StatusOK, f)
}

// DeleteFinding godoc
// @Summary      Delete finding
// @Tags         findings
// @Produce      json
// @Param        id path string true "Finding ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /findings/{id} [delete]
func (h *Handler) DeleteFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteFinding(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete finding")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
