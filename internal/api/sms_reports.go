package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateSMSReport godoc
// @Summary      File safety report
// @Description  Files of one report may total 250MB. Company admins are notified by email.
// @Tags         sms-reports
// @Accept       json,mpfd
// @Produce      json
// @Param        request body entity.CreateSMSReportInput true "Report"
// @Success      201 {object} Response{payload=entity.SMSReport}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /sms-reports [post]
func (h *Handler) CreateSMSReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateSMSReportInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rep, err := h.s.CreateSMSReport(ctx, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "create sms report")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, rep)
}

// GetSMSReport godoc
// @Summary      Safety report
// @Tags         sms-reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200 {object} Response{payload=entity.SMSReport}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /sms-reports/{id} [get]
func (h *Handler) GetSMSReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rep, err := h.s.GetSMSReport(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get sms report")
		return
	}

	SendJSON(ctx, w, http.StatusOK, rep)
}

// ListSMSReports godoc
// @Summary      Safety reports
// @Description  Non admins see their own reports only
// @Tags         sms-reports
// @Produce      json
// @Param        search query string false "Title, description, hazard category, location"
// @Param        status query string false "Status; comma separated"
// @Param        severity query string false "LOW, MEDIUM, HIGH, CRITICAL; comma separated"
// @Param        from query string false "Occurred from"
// @Param        to query string false "Occurred to"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.SMSReport]}
// @Security     BearerAuth
// @Router       /sms-reports [get]
func (h *Handler) ListSMSReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListSMSReports(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list sms reports")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateSMSReport godoc
// @Summary      Update safety report
// @Tags         sms-reports
// @Accept       json,mpfd
// @Produce      json
// @Param        id path string true "Report ID"
// @Param        request body entity.UpdateSMSReportInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.SMSReport}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /sms-reports/{id} [put]
func (h *Handler) UpdateSMSReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateSMSReportInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	rep, err := h.s.UpdateSMSReport(ctx, id, in, u.Files)
	if err != nil {
		h.fail(ctx, w, err, "update sms report")
		return
	}

	SendJSON(ctx, w, http.StatusOK, rep)
}

// DeleteSMSReport godoc
// @Summary      Delete safety report
// @Tags         sms-reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /sms-reports/{id} [delete]
func (h *Handler) DeleteSMSReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteSMSReport(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete sms report")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
