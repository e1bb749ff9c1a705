package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

const (
	multipartMemory = 32 << 20
	maxRequestSize  = 300 * entity.MB

	msgInternal = "internal error"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// responder writes error envelopes. Internal error text is only exposed outside production.
type responder struct {
	production bool
}

func (rs responder) SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	resp := Response{Success: false, Message: msg}
	if !rs.production && err != nil {
		resp.Error = err.Error()
	}

	writeJSON(ctx, w, code, resp)
}

// fail maps err to its status code. msg is only used for unexpected errors; the rest carry their own text.
func (rs responder) fail(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	code := errorCode(err)

	switch {
	case code == http.StatusInternalServerError:
		rs.SendErr(ctx, w, code, err, msg)
	case errors.Is(err, entity.ErrValidation):
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			rs.SendErr(ctx, w, code, err, vErr.Error())
			return
		}

		rs.SendErr(ctx, w, code, err, err.Error())
	default:
		rs.SendErr(ctx, w, code, err, http.StatusText(code))
	}
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrIncorrectRequestBody),
		errors.Is(err, entity.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, payload any) {
	writeJSON(ctx, w, code, Response{Success: true, Payload: payload})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil || id.IsNil() {
		return uuid.Nil, entity.NewValidationError(name, "must be a uuid")
	}

	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	err := decodeStrict(r.Body, dst)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err)
	}

	return nil
}

// decodeStrict rejects fields the target type does not declare.
func decodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	return dec.Decode(dst)
}

// upload is a decoded multipart request. Close releases the opened files and temp storage.
type upload struct {
	Files []entity.FileUpload
	form  *multipart.Form
	open  []io.Closer
}

func (u *upload) Close() {
	for _, c := range u.open {
		_ = c.Close()
	}

	if u.form != nil {
		_ = u.form.RemoveAll()
	}
}

// decodeUpload reads the JSON part of a request into dst. Multipart requests carry it in the "data" field and
// their files in "files" (or "file"); plain JSON requests have no files.
func decodeUpload(w http.ResponseWriter, r *http.Request, dst any) (*upload, error) {
	u := &upload{}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return u, decodeJSON(r, dst)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		return u, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err)
	}

	u.form = r.MultipartForm

	data := r.FormValue("data")
	if data != "" {
		err = decodeStrict(strings.NewReader(data), dst)
		if err != nil {
			return u, fmt.Errorf("%w: data: %w", entity.ErrIncorrectRequestBody, err)
		}
	}

	headers := append(u.form.File["files"], u.form.File["file"]...)

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			u.Close()
			return u, fmt.Errorf("open %s: %w", fh.Filename, err)
		}

		u.open = append(u.open, f)
		u.Files = append(u.Files, entity.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return u, nil
}

// single returns the only file of a single attachment resource, nil without one.
func (u *upload) single() (*entity.FileUpload, error) {
	switch len(u.Files) {
	case 0:
		return nil, nil
	case 1:
		return &u.Files[0], nil
	default:
		return nil, entity.NewValidationError("file", "only one file is allowed")
	}
}

var listParams = map[string]struct{}{
	"search":    {},
	"page":      {},
	"limit":     {},
	"from":      {},
	"to":        {},
	"auditId":   {},
	"findingId": {},
}

// parseListFilter reads search, pagination, date range and enum filters. Every other parameter is an enum
// filter; repeated or comma separated values are OR-ed.
func parseListFilter(q url.Values) (entity.ListFilter, error) {
	f := entity.ListFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Enums:  map[string][]string{},
	}

	var err error

	f.Page, err = parseUint(q, "page")
	if err != nil {
		return entity.ListFilter{}, err
	}

	f.Limit, err = parseUint(q, "limit")
	if err != nil {
		return entity.ListFilter{}, err
	}

	f.From, f.To, err = parseRange(q)
	if err != nil {
		return entity.ListFilter{}, err
	}

	for k, values := range q {
		if _, ok := listParams[k]; ok {
			continue
		}

		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					f.Enums[k] = append(f.Enums[k], part)
				}
			}
		}
	}

	return f, nil
}

func parseUint(q url.Values, key string) (uint64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return 0, entity.NewValidationError(key, "must be a positive integer")
	}

	return n, nil
}

// parseRange reads from and to. A date-only "to" covers the whole day.
func parseRange(q url.Values) (from, to *time.Time, err error) {
	if v := q.Get("from"); v != "" {
		t, err := entity.ParseDate(v)
		if err != nil {
			return nil, nil, entity.NewValidationError("from", err.Error())
		}

		from = &t
	}

	if v := q.Get("to"); v != "" {
		t, err := entity.ParseDate(v)
		if err != nil {
			return nil, nil, entity.NewValidationError("to", err.Error())
		}

		if len(v) == len(time.DateOnly) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}

		to = &t
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, entity.NewValidationError("to", "must not be before from")
	}

	return from, to, nil
}

func parentFilter(q url.Values, key string, f *entity.ListFilter) error {
	v := q.Get(key)
	if v == "" {
		return nil
	}

	id, err := uuid.FromString(v)
	if err != nil {
		return entity.NewValidationError(key, "must be a uuid")
	}

	f.ParentID = uuid.NullUUID{UUID: id, Valid: true}

	return nil
}
