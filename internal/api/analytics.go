package api

import (
	"net/http"
)

// Dashboard godoc
// @Summary      Company dashboard
// @Description  Counts and rates across audits, findings, corrective actions, safety reports, flight records and stock
// @Tags         analytics
// @Produce      json
// @Success      200 {object} Response{payload=entity.Dashboard}
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /analytics/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := h.s.Dashboard(ctx)
	if err != nil {
		h.fail(ctx, w, err, "build dashboard")
		return
	}

	SendJSON(ctx, w, http.StatusOK, d)
}

// CorrectiveActionAnalytics godoc
// @Summary      Corrective action breakdown
// @Tags         analytics
// @Produce      json
// @Param        from query string false "Created from"
// @Param        to query string false "Created to"
// @Success      200 {object} Response{payload=entity.CorrectiveActionAnalytics}
// @Failure      400 {object} Response
// @Security     BearerAuth
// @Router       /analytics/corrective-actions [get]
func (h *Handler) CorrectiveActionAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parseRange(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	a, err := h.s.CorrectiveActionAnalytics(ctx, from, to)
	if err != nil {
		h.fail(ctx, w, err, "corrective action analytics")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}
