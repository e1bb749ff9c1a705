package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// ExportReport godoc
// @Summary      Export report
// @Tags         reports
// @Produce      octet-stream
// @Param        kind path string true "audits, corrective-actions, stock, sms, flight-records"
// @Param        format query string false "xlsx (default), html, text"
// @Param        from query string false "From"
// @Param        to query string false "To"
// @Success      200 {file} file
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /reports/{kind} [get]
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	from, to, err := parseRange(q)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	format := entity.ReportFormat(q.Get("format"))
	if format == "" {
		format = entity.ReportFormatXLSX
	}

	a, err := h.s.ExportReport(ctx, entity.ReportKind(chi.URLParam(r, "kind")), format, from, to)
	if err != nil {
		h.fail(ctx, w, err, "export report")
		return
	}

	sendFile(w, r, a.Filename, a.MimeType, a.Body)
}
