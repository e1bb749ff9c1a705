package api

import (
	"net/http"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// Login godoc
// @Summary      Login
// @Description  Checks the credentials and issues an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body entity.LoginInput true "Credentials"
// @Success      200 {object} Response{payload=entity.AccessToken}
// @Failure      400 {object} Response
// @Failure      401 {object} Response
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.LoginInput

	err := decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	token, err := h.s.Login(ctx, in)
	if err != nil {
		h.fail(ctx, w, err, "login failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, token)
}

// Me godoc
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Success      200 {object} Response{payload=entity.Principal}
// @Failure      401 {object} Response
// @Security     BearerAuth
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.s.Me(ctx)
	if err != nil {
		h.fail(ctx, w, err, "get principal")
		return
	}

	SendJSON(ctx, w, http.StatusOK, p)
}

// CompanyUsers godoc
// @Summary      Company users
// @Description  Admins and managers only
// @Tags         users
// @Produce      json
// @Success      200 {object} Response{payload=[]entity.User}
// @Failure      403 {object} Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *Handler) CompanyUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.CompanyUsers(ctx)
	if err != nil {
		h.fail(ctx, w, err, "list users")
		return
	}

	if users == nil {
		users = []entity.User{}
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// MyPermissions godoc
// @Summary      Own permissions
// @Tags         permissions
// @Produce      json
// @Success      200 {object} Response{payload=entity.UserPermission}
// @Security     BearerAuth
// @Router       /permissions/me [get]
func (h *Handler) MyPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	perm, err := h.s.MyPermissions(ctx)
	if err != nil {
		h.fail(ctx, w, err, "get permissions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, perm)
}

// UserPermissions godoc
// @Summary      User permissions
// @Description  Own permissions for everyone, others for admins
// @Tags         permissions
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} Response{payload=entity.UserPermission}
// @Failure      403 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /users/{id}/permissions [get]
func (h *Handler) UserPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	perm, err := h.s.UserPermissions(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "get permissions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, perm)
}

// UpdateUserPermissions godoc
// @Summary      Update user permissions
// @Description  Admin only, same company, never for self. Replaces every flag.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body entity.UpdateUserPermissionInput true "Flags"
// @Success      200 {object} Response{payload=entity.UserPermission}
// @Failure      400 {object} Response
// @Failure      403 {object} Response
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /users/{id}/permissions [put]
func (h *Handler) UpdateUserPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	var in entity.UpdateUserPermissionInput

	err = decodeJSON(r, &in)
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	perm, err := h.s.UpdateUserPermissions(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, err, "update permissions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, perm)
}
