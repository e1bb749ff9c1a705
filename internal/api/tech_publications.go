package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CreateTechPublication godoc
// @Summary      Create technical publication
// @Description  Admin only. Multipart with the publication in "data" and one file up to 50MB in "file".
// @Tags         technical-publications
// @Accept       json,mpfd
// @Produce      json
// @Param        request body entity.CreateTechPublicationInput true "Publication"
// @Success      201 {object} Response{payload=entity.TechPublication}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /technical-publications [post]
func (h *Handler) CreateTechPublication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CreateTechPublicationInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	file, err := u.single()
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	pub, err := h.s.CreateTechPublication(ctx, in, file)
	if err != nil {
		h.fail(ctx, w, err, "create technical publication")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, pub)
}

// GetTechPublication godoc
// @Summary      Technical publication
// @Tags         technical-publications
// @Produce      json
// @Param        id path string true "Publication ID"
// @Success      200 {object} Response{payload=entity.TechPublication}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /technical-publications/{id} [get]
func (h *Handler) GetTechPublication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	pub, err := h.s.GetTechPublication(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get technical publication")
		return
	}

	SendJSON(ctx, w, http.StatusOK, pub)
}

// ListTechPublications godoc
// @Summary      Technical publications
// @Tags         technical-publications
// @Produce      json
// @Param        search query string false "Title, revision number, owner, description"
// @Param        category query string false "AMM, IPC, SB, AD, SRM, CMM, OTHER; comma separated"
// @Param        from query string false "Revision date from"
// @Param        to query string false "Revision date to"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.TechPublication]}
// @Security     BearerAuth
// @Router       /technical-publications [get]
func (h *Handler) ListTechPublications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListTechPublications(ctx, f)
	if err != nil {
		h.fail(ctx, w, err, "list technical publications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// UpdateTechPublication godoc
// @Summary      Update technical publication
// @Description  Admin only. A sent file replaces the current one. Every effective change writes a revision.
// @Tags         technical-publications
// @Accept       json,mpfd
// @Produce      json
// @Param        id path string true "Publication ID"
// @Param        request body entity.UpdateTechPublicationInput true "Changed fields"
// @Success      200 {object} Response{payload=entity.TechPublication}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /technical-publications/{id} [put]
func (h *Handler) UpdateTechPublication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateTechPublicationInput

	u, err := decodeUpload(w, r, &in)
	defer u.Close()

	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	file, err := u.single()
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	pub, err := h.s.UpdateTechPublication(ctx, id, in, file)
	if err != nil {
		h.fail(ctx, w, err, "update technical publication")
		return
	}

	SendJSON(ctx, w, http.StatusOK, pub)
}

// DeleteTechPublication godoc
// @Summary      Delete technical publication
// @Description  Admin only
// @Tags         technical-publications
// @Produce      json
// @Param        id path string true "Publication ID"
// @Success      200 {object} Response{payload=entity.DeleteResult}
// @Failure      403 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /technical-publications/{id} [delete]
func (h *Handler) DeleteTechPublication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	res, err := h.s.DeleteTechPublication(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "delete technical publication")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// ListRevisions godoc
// @Summary      Revision history
// @Tags         technical-publications
// @Produce      json
// @Param        id path string true "Publication ID"
// @Param        changeType query string false "CREATED, UPDATED, ATTACHMENT_REPLACED"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} Response{payload=entity.Page[entity.Revision]}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /technical-publications/{id}/revisions [get]
func (h *Handler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	page, err := h.s.ListRevisions(ctx, id, f)
	if err != nil {
		h.fail(ctx, w, err, "list revisions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}
