package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/api"
	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/mocks"
)

const testToken = "test-token"

type testAPI struct {
	router   http.Handler
	svc      *mocks.MockService
	authMock *mocks.MockAuthService
}

func newTestAPI(t *testing.T, production bool) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	svc := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	return testAPI{
		router:   api.NewRouter(api.NewHandler(svc, production), api.NewMiddleware(authMock, production)),
		svc:      svc,
		authMock: authMock,
	}
}

func (a testAPI) authorized(t *testing.T) entity.Principal {
	t.Helper()

	p := entity.Principal{
		UserID:    uuid.Must(uuid.NewV4()),
		CompanyID: uuid.Must(uuid.NewV4()),
		Privilege: entity.PrivilegeAdmin,
		Email:     "admin@example.com",
	}

	a.authMock.EXPECT().Authenticate(gomock.Any(), testToken).Return(p, nil)

	return p
}

func (a testAPI) do(r *http.Request) *httptest.ResponseRecorder {
	if r.Header.Get("Authorization") == "" {
		r.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, r)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) api.Response {
	t.Helper()

	var resp api.Response

	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err, rec.Body.String())

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok\n", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMiddleware_Auth(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)

		rec := httptest.NewRecorder()
		a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audits", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, decodeResponse(t, rec).Success)
	})

	t.Run("rejected token", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		a.authMock.EXPECT().Authenticate(gomock.Any(), testToken).Return(entity.Principal{}, entity.ErrUnauthenticated)

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/audits", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("principal reaches service", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		p := a.authorized(t)

		a.svc.EXPECT().Me(gomock.Any()).DoAndReturn(func(ctx context.Context) (entity.Principal, error) {
			return entity.PrincipalFromContext(ctx)
		})

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/me", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Payload entity.Principal `json:"payload"`
		}

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, p.UserID, resp.Payload.UserID)
		require.Equal(t, p.CompanyID, resp.Payload.CompanyID)
	})
}

func TestHandler_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		production bool
		err        error
		wantCode   int
		wantMsg    string
		wantDetail bool
	}{
		{
			name:       "internal error hidden in production",
			production: true,
			err:        errors.New("connection refused"),
			wantCode:   http.StatusInternalServerError,
			wantMsg:    "get audit",
		},
		{
			name:       "internal error shown outside production",
			err:        errors.New("connection refused"),
			wantCode:   http.StatusInternalServerError,
			wantMsg:    "get audit",
			wantDetail: true,
		},
		{
			name:       "not found",
			production: true,
			err:        entity.ErrNotFound,
			wantCode:   http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name:       "forbidden",
			production: true,
			err:        entity.ErrForbidden,
			wantCode:   http.StatusForbidden,
			wantMsg:    "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t, tt.production)
			a.authorized(t)

			id := uuid.Must(uuid.NewV4())
			a.svc.EXPECT().GetAudit(gomock.Any(), id).Return(entity.Audit{}, tt.err)

			rec := a.do(httptest.NewRequest(http.MethodGet, "/api/audits/"+id.String(), nil))
			require.Equal(t, tt.wantCode, rec.Code)

			resp := decodeResponse(t, rec)
			require.False(t, resp.Success)
			require.Equal(t, tt.wantMsg, resp.Message)

			if tt.wantDetail {
				require.Contains(t, resp.Error, "connection refused")
			} else {
				require.Empty(t, resp.Error)
			}
		})
	}
}

func TestHandler_BadPathID(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/stock/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, `field "id": must be a uuid`, decodeResponse(t, rec).Message)
}

func TestHandler_ListFilter(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	auditID := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().ListFindings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.ListFilter) (entity.Page[entity.Finding], error) {
			require.Equal(t, "corrosion", f.Search)
			require.Equal(t, uint64(2), f.Page)
			require.Equal(t, uint64(10), f.Limit)
			require.Equal(t, []string{"OPEN", "CLOSED"}, f.Enums["status"])
			require.Equal(t, []string{"HIGH"}, f.Enums["severity"])
			require.NotContains(t, f.Enums, "auditId")
			require.Equal(t, uuid.NullUUID{UUID: auditID, Valid: true}, f.ParentID)

			require.NotNil(t, f.From)
			require.NotNil(t, f.To)
			require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
			require.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), *f.To)

			return entity.Page[entity.Finding]{}, nil
		})

	rec := a.do(httptest.NewRequest(http.MethodGet,
		"/api/findings?search=corrosion&page=2&limit=10&status=OPEN,CLOSED&severity=HIGH&from=2024-01-01&to=2024-01-31&auditId="+
			auditID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandler_ListFilter_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "page zero", query: "page=0", field: "page"},
		{name: "limit not a number", query: "limit=ten", field: "limit"},
		{name: "bad date", query: "from=yesterday", field: "from"},
		{name: "reversed range", query: "from=2024-02-01&to=2024-01-01", field: "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t, true)
			a.authorized(t)

			rec := a.do(httptest.NewRequest(http.MethodGet, "/api/audits?"+tt.query, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, decodeResponse(t, rec).Message, `"`+tt.field+`"`)
		})
	}
}

func TestHandler_CreateFlightRecord_Multipart(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("data", `{"flightDate":"2024-03-05","aircraftRegistration":"EI-ABC",`+
		`"departureAirport":"DUB","arrivalAirport":"LHR","flightHours":"1.5"}`))

	for name, content := range map[string]string{"techlog.pdf": "pdf bytes", "photo.jpg": "jpg bytes"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)

		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	created := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), AircraftRegistration: "EI-ABC"}

	a.svc.EXPECT().CreateFlightRecord(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.CreateFlightRecordInput, files []entity.FileUpload) (entity.FlightRecord, error) {
			require.Equal(t, "EI-ABC", in.AircraftRegistration)
			require.Equal(t, "DUB", in.DepartureAirport)
			require.Equal(t, "1.5", in.FlightHours.String())
			require.NotNil(t, in.FlightDate)
			require.Equal(t, "2024-03-05", in.FlightDate.Format(time.DateOnly))

			require.Len(t, files, 2)

			got := map[string]string{}

			for _, f := range files {
				b, err := io.ReadAll(f.Body)
				require.NoError(t, err)

				got[f.Name] = string(b)
			}

			require.Equal(t, map[string]string{"techlog.pdf": "pdf bytes", "photo.jpg": "jpg bytes"}, got)

			return created, nil
		})

	r := httptest.NewRequest(http.MethodPost, "/api/flight-records", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	rec := a.do(r)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.True(t, decodeResponse(t, rec).Success)
}

func TestHandler_CreateTechPublication_TooManyFiles(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("data", `{"title":"AMM","category":"AMM","revisionNumber":"12"}`))

	for _, name := range []string{"a.pdf", "b.pdf"} {
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)

		_, err = fw.Write([]byte("x"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/technical-publications", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	rec := a.do(r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, `field "file": only one file is allowed`, decodeResponse(t, rec).Message)
}

func TestHandler_MalformedJSON(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	r := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewBufferString("{"))
	r.Header.Set("Content-Type", "application/json")

	rec := a.do(r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UnknownFieldsRejected(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	t.Run("json body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/stock",
			bytes.NewBufferString(`{"partNumber":"PN-1","condition":"NEW","colour":"red"}`))
		r.Header.Set("Content-Type", "application/json")

		rec := a.do(r)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("multipart data", func(t *testing.T) {
		var body bytes.Buffer

		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("data", `{"title":"AMM","category":"AMM","revisionNumber":"12","pages":40}`))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/api/technical-publications", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		rec := a.do(r)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ListAttachments_Empty(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	id := uuid.Must(uuid.NewV4())
	a.svc.EXPECT().ListAttachments(gomock.Any(), entity.ResourceSMSReport, id).Return(nil, nil)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/sms-reports/"+id.String()+"/attachments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"payload":[]}`, rec.Body.String())
}

func TestHandler_DownloadAttachment(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, true)
	a.authorized(t)

	id := uuid.Must(uuid.NewV4())
	a.svc.EXPECT().DownloadAttachment(gomock.Any(), id).Return(entity.Download{
		FileName:    "manual.pdf",
		ContentType: "application/pdf",
		Body:        []byte("%PDF-1.7"),
	}, nil)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/attachments/"+id.String()+"/download", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=manual.pdf", rec.Header().Get("Content-Disposition"))
	require.Equal(t, "%PDF-1.7", rec.Body.String())
}

func TestHandler_ExportReport(t *testing.T) {
	t.Parallel()

	t.Run("defaults to xlsx", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		a.authorized(t)

		a.svc.EXPECT().ExportReport(gomock.Any(), entity.ReportAudits, entity.ReportFormatXLSX, nil, nil).
			Return(entity.Artifact{Body: []byte("xlsx"), MimeType: "application/octet-stream", Filename: "audits.xlsx"}, nil)

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/reports/audits", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "attachment; filename=audits.xlsx", rec.Header().Get("Content-Disposition"))
		require.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		a.authorized(t)

		a.svc.EXPECT().ExportReport(gomock.Any(), entity.ReportStock, entity.ReportFormat("pdf"), nil, nil).
			Return(entity.Artifact{}, entity.ErrUnsupportedFormat)

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/reports/stock?format=pdf", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_CurrentWeather(t *testing.T) {
	t.Parallel()

	t.Run("bad latitude", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		a.authorized(t)

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/weather?lat=north&lon=10", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, `field "lat": must be a number`, decodeResponse(t, rec).Message)
	})

	t.Run("cacheable", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, true)
		a.authorized(t)

		a.svc.EXPECT().CurrentWeather(gomock.Any(), entity.WeatherQuery{Latitude: 53.42, Longitude: -6.27}).
			Return(entity.Weather{Latitude: 53.42, Longitude: -6.27, Temperature: 11.5}, nil)

		rec := a.do(httptest.NewRequest(http.MethodGet, "/api/weather?lat=53.42&lon=-6.27", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	})
}
