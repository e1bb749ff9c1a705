package api

import (
	"bytes"
	"mime"
	"net/http"
	"time"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// ListAttachments godoc
// @Summary      Attachments of a record
// @Description  Each attachment carries a short lived download URL
// @Tags         attachments
// @Produce      json
// @Param        resource path string true "flight-records, technical-publications, sms-reports, corrective-actions"
// @Param        id path string true "Record ID"
// @Success      200 {object} Response{payload=[]entity.Attachment}
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /{resource}/{id}/attachments [get]
func (h *Handler) ListAttachments(kind entity.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := pathID(r, "id")
		if err != nil {
			h.fail(ctx, w, err, "")
			return
		}

		list, err := h.s.ListAttachments(ctx, kind, id)
		if err != nil {
			h.fail(ctx, w, err, "list attachments")
			return
		}

		if list == nil {
			list = []entity.Attachment{}
		}

		SendJSON(ctx, w, http.StatusOK, list)
	}
}

// DownloadAttachment godoc
// @Summary      Download attachment
// @Tags         attachments
// @Produce      octet-stream
// @Param        id path string true "Attachment ID"
// @Success      200 {file} file
// @Failure      404 {object} Response
// @Security     BearerAuth
// @Router       /attachments/{id}/download [get]
func (h *Handler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, err, "")
		return
	}

	d, err := h.s.DownloadAttachment(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "download attachment")
		return
	}

	sendFile(w, r, d.FileName, d.ContentType, d.Body)
}

func sendFile(w http.ResponseWriter, r *http.Request, name, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(body))
}
