package api

import (
	"net/http"
)

// ListActivity godoc
// @Summary      Activity log
// @Description  Admins see the whole company, everyone else their own entries
// @Tags         activity
// @Produce      json
// @Param        action query string false "CREATE, UPDATE, DELETE, EXPORT, LOGIN, DOWNLOAD, PERMISSION_UPDATE"
// @Param        resourceType query string false "Resource type"
// @Param        search query string false "Resource title"
// @Param        from query string false "From"
// @Param        to query string false "To"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.ActivityLogEntry]}
// @Security     BearerAuth
// @Router       /activity [get]
func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListActivity(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list activity")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}
