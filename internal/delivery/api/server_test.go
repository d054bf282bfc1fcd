package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freedge/config"
	"freedge/internal/delivery/api"
	"freedge/internal/delivery/api/router"
	"freedge/internal/delivery/api/router/handler"
	deliverycontext "freedge/internal/delivery/context"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/infra/metrics"
	mockusecase "freedge/internal/mocks/usecase"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

const testMaxUploadBytes = 4096

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

type testServer struct {
	echo       *echo.Echo
	importUC   *mockusecase.MockImportUsecase
	registryUC *mockusecase.MockRegistryUsecase
	checkInUC  *mockusecase.MockCheckInUsecase
}

func newTestServer(t *testing.T, pinger handler.Pinger) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}
	cfg.Importer = &config.ImporterConfig{MaxUploadBytes: testMaxUploadBytes}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()

	ts := &testServer{
		importUC:   mockusecase.NewMockImportUsecase(t),
		registryUC: mockusecase.NewMockRegistryUsecase(t),
		checkInUC:  mockusecase.NewMockCheckInUsecase(t),
	}
	ts.echo = api.NewEcho(cfg, logger, metrics.NewRecorder(registry))

	r := router.NewRouter(router.RouterParams{
		ImportHandler:   handler.NewImportHandler(handler.ImportHandlerParams{ImportUC: ts.importUC, Config: cfg, Logger: logger}),
		RegistryHandler: handler.NewRegistryHandler(handler.RegistryHandlerParams{RegistryUC: ts.registryUC, Logger: logger}),
		CheckInHandler:  handler.NewCheckInHandler(handler.CheckInHandlerParams{CheckInUC: ts.checkInUC, Logger: logger}),
		HealthHandler:   handler.NewHealthHandler(pinger, logger),
		Config:          cfg,
		Registry:        registry,
	})
	r.RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var body envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

func csvBody(rows ...map[string]string) string {
	columns := registry.RequiredColumns()

	var b strings.Builder
	b.WriteString(strings.Join(columns, ",") + "\n")
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, column := range columns {
			values[i] = row[column]
		}
		b.WriteString(strings.Join(values, ",") + "\n")
	}

	return b.String()
}

func sampleEntry(id int64, project string) *entity.Freedge {
	return &entity.Freedge{
		ID:                 id,
		ProjectName:        project,
		NetworkName:        "Freedge Network",
		CaretakerName:      "Jane",
		Address:            entity.Address{Street: "1 Main St", City: "Springfield", Country: "USA"},
		PermissionToNotify: true,
		ContactMethod:      entity.ContactEmail,
		EmailAddress:       "jane@example.com",
		Status:             entity.StatusActive,
		LastStatusUpdate:   civil.Date{Year: 2024, Month: time.January, Day: 15},
	}
}

func TestPreviewImport_RawCSV(t *testing.T) {
	ts := newTestServer(t, nil)
	previewID := uuid.New()

	ts.importUC.EXPECT().
		Preview(mock.Anything, mock.MatchedBy(func(rows []registry.Row) bool {
			return len(rows) == 1 && rows[0][registry.ColumnProject] == "Alpha"
		}), mock.Anything).
		Return(&usecase.ImportPreview{
			ID:      previewID,
			Delta:   &registry.Delta{ToAdd: []*entity.Freedge{sampleEntry(0, "Alpha")}},
			Summary: []string{"(1) entries will be ADDED."},
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(csvBody(map[string]string{
		registry.ColumnProject: "Alpha",
		registry.ColumnActive:  "Yes",
	})))
	req.Header.Set(echo.HeaderContentType, "text/csv")
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")

	rec, body := ts.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "req-123", body.Meta.RequestID)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var preview handler.ImportPreviewResponse
	require.NoError(t, json.Unmarshal(body.Data, &preview))
	assert.Equal(t, previewID, preview.ID)
	assert.Len(t, preview.Checksum, 64)
	require.Len(t, preview.Added, 1)
	assert.Equal(t, "Alpha", preview.Added[0].ProjectName)
	assert.Empty(t, preview.Removed)
	assert.Equal(t, []string{"(1) entries will be ADDED."}, preview.Summary)
}

func TestPreviewImport_Multipart(t *testing.T) {
	ts := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "freedges.csv")
	require.NoError(t, err)
	_, err = io.WriteString(part, csvBody(
		map[string]string{registry.ColumnProject: "Alpha"},
		map[string]string{registry.ColumnProject: "Beta"},
	))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	ts.importUC.EXPECT().
		Preview(mock.Anything, mock.MatchedBy(func(rows []registry.Row) bool { return len(rows) == 2 }), mock.Anything).
		Return(&usecase.ImportPreview{ID: uuid.New(), Delta: &registry.Delta{}}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec, _ := ts.do(t, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPreviewImport_MultipartWithoutFile(t *testing.T) {
	ts := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec, body := ts.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestPreviewImport_UploadTooLarge(t *testing.T) {
	oversized := csvBody(map[string]string{registry.ColumnProject: strings.Repeat("x", testMaxUploadBytes)})

	t.Run("raw body", func(t *testing.T) {
		ts := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(oversized))
		req.Header.Set(echo.HeaderContentType, "text/csv")

		rec, body := ts.do(t, req)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "DATASET_TOO_LARGE", body.Error.Code)
	})

	t.Run("multipart file", func(t *testing.T) {
		ts := newTestServer(t, nil)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "freedges.csv")
		require.NoError(t, err)
		_, err = io.WriteString(part, oversized)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

		rec, body := ts.do(t, req)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "DATASET_TOO_LARGE", body.Error.Code)
	})
}

func TestPreviewImport_DatasetErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{
			name:        "missing columns",
			body:        "Project,Network\nAlpha,Net\n",
			wantDetails: "missing_columns",
		},
		{
			name: "empty body",
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, "text/csv")

			rec, body := ts.do(t, req)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, "INVALID_DATASET", body.Error.Code)
			if tt.wantDetails != "" {
				assert.Contains(t, string(body.Error.Details), tt.wantDetails)
			}
		})
	}
}

func TestPreviewImport_MalformedRow(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.importUC.EXPECT().
		Preview(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pkgerrors.WithStack(&registry.MalformedRowError{Index: 3, Line: 6, Column: registry.ColumnCity})).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(csvBody(map[string]string{registry.ColumnProject: "Alpha"})))
	req.Header.Set(echo.HeaderContentType, "text/csv")

	rec, body := ts.do(t, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"row":3,"line":6,"column":"City"}`, string(body.Error.Details))
}

func TestApplyImport(t *testing.T) {
	previewID := uuid.New()

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "applied with remove-all allowed",
			target: "/api/v1/imports/" + previewID.String() + "/apply",
			body:   `{"allow_remove_all":true}`,
			setup: func(ts *testServer) {
				ts.importUC.EXPECT().Apply(mock.Anything, previewID, true).
					Return(&usecase.ImportResult{Added: 1, Removed: 2, Modified: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "applied without body",
			target: "/api/v1/imports/" + previewID.String() + "/apply",
			setup: func(ts *testServer) {
				ts.importUC.EXPECT().Apply(mock.Anything, previewID, false).
					Return(&usecase.ImportResult{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "stale preview",
			target: "/api/v1/imports/" + previewID.String() + "/apply",
			setup: func(ts *testServer) {
				ts.importUC.EXPECT().Apply(mock.Anything, previewID, false).
					Return(nil, pkgerrors.WithStack(domainerrors.ErrPreviewStale)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "PREVIEW_STALE",
		},
		{
			name:   "remove-all not confirmed",
			target: "/api/v1/imports/" + previewID.String() + "/apply",
			setup: func(ts *testServer) {
				ts.importUC.EXPECT().Apply(mock.Anything, previewID, false).
					Return(nil, domainerrors.ErrRemoveAllNotConfirmed).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "REMOVE_ALL_NOT_CONFIRMED",
		},
		{
			name:       "invalid id",
			target:     "/api/v1/imports/not-a-uuid/apply",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec, body := ts.do(t, jsonRequest(http.MethodPost, tt.target, tt.body))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestApplyImport_ResultBody(t *testing.T) {
	ts := newTestServer(t, nil)
	previewID := uuid.New()

	ts.importUC.EXPECT().Apply(mock.Anything, previewID, false).
		Return(&usecase.ImportResult{Added: 1, Removed: 2, Modified: 3}, nil).Once()

	rec, body := ts.do(t, jsonRequest(http.MethodPost, "/api/v1/imports/"+previewID.String()+"/apply", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"added":1,"removed":2,"modified":3}`, string(body.Data))
}

func TestDiscardImport(t *testing.T) {
	ts := newTestServer(t, nil)
	previewID := uuid.New()

	ts.importUC.EXPECT().Discard(mock.Anything, previewID).Return(nil).Once()

	rec, _ := ts.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+previewID.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetFreedge(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.registryUC.EXPECT().Get(mock.Anything, int64(7)).Return(sampleEntry(7, "Alpha"), nil).Once()

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/7", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var entry handler.FreedgeResponse
		require.NoError(t, json.Unmarshal(body.Data, &entry))
		assert.Equal(t, int64(7), entry.ID)
		assert.Equal(t, entity.StatusActive, entry.Status)
		assert.Equal(t, entity.ContactEmail, entry.ContactMethod)
		assert.Nil(t, entry.DateInstalled)
		require.NotNil(t, entry.LastStatusUpdate)
		assert.Equal(t, "2024-01-15", entry.LastStatusUpdate.String())
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.registryUC.EXPECT().Get(mock.Anything, int64(8)).
			Return(nil, pkgerrors.WithStack(domainerrors.ErrEntryNotFound)).Once()

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/8", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ENTRY_NOT_FOUND", body.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/abc", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("unexpected failure hides details", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.registryUC.EXPECT().Get(mock.Anything, int64(9)).Return(nil, errors.New("connection reset")).Once()

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/9", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "connection reset")
	})
}

func TestListFreedges(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.registryUC.EXPECT().List(mock.Anything).
		Return([]*entity.Freedge{sampleEntry(1, "Alpha"), sampleEntry(2, "Beta")}, nil).Once()

	rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []handler.FreedgeResponse
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Beta", entries[1].ProjectName)
}

func TestListOverdue(t *testing.T) {
	t.Run("explicit threshold", func(t *testing.T) {
		ts := newTestServer(t, nil)

		never := sampleEntry(2, "Beta")
		never.Status = entity.StatusUnknown
		never.LastStatusUpdate = civil.Date{}

		ts.registryUC.EXPECT().Overdue(mock.Anything, mock.Anything, 30).
			Return([]*usecase.OverdueEntry{
				{Freedge: sampleEntry(1, "Alpha"), DaysSinceUpdate: 138, Notifiable: true},
				{Freedge: never},
			}, nil).Once()

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/overdue?threshold=30", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []handler.OverdueEntryResponse
		require.NoError(t, json.Unmarshal(body.Data, &entries))
		require.Len(t, entries, 2)
		require.NotNil(t, entries[0].DaysSinceUpdate)
		assert.Equal(t, 138, *entries[0].DaysSinceUpdate)
		assert.True(t, entries[0].Notifiable)
		assert.Nil(t, entries[1].DaysSinceUpdate)
	})

	t.Run("default threshold", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.registryUC.EXPECT().Overdue(mock.Anything, mock.Anything, 0).Return(nil, nil).Once()

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/overdue", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("negative threshold", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges/overdue?threshold=-1", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"threshold":"gte"}`, string(body.Error.Details))
	})
}

func TestSuspectStale(t *testing.T) {
	ts := newTestServer(t, nil)

	suspected := sampleEntry(3, "Gamma")
	suspected.Status = entity.StatusSuspectedInactive
	ts.registryUC.EXPECT().SuspectStale(mock.Anything, mock.Anything).Return([]*entity.Freedge{suspected}, nil).Once()

	rec, body := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/lifecycle/suspect-stale", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"SUSPECTED INACTIVE"`)
}

func TestDispatchCheckIns(t *testing.T) {
	ts := newTestServer(t, nil)
	attempt := &entity.CheckInAttempt{
		ID:          uuid.New(),
		FreedgeID:   1,
		Sequence:    2,
		Method:      entity.ContactEmail,
		Destination: "jane@example.com",
		State:       entity.AttemptPending,
		CreatedAt:   time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
	ts.checkInUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
		Return(&usecase.DispatchResult{Attempts: []*entity.CheckInAttempt{attempt}, Overdue: 3}, nil).Once()

	rec, body := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/checkins/dispatch", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var dispatched handler.DispatchResponse
	require.NoError(t, json.Unmarshal(body.Data, &dispatched))
	assert.Equal(t, 3, dispatched.Overdue)
	require.Len(t, dispatched.Attempts, 1)
	assert.Equal(t, attempt.ID, dispatched.Attempts[0].ID)
	assert.Equal(t, entity.AttemptPending, dispatched.Attempts[0].State)
	assert.Nil(t, dispatched.Attempts[0].ResolvedAt)
}

func TestRecordResponse(t *testing.T) {
	attemptID := uuid.New()

	t.Run("confirmed active", func(t *testing.T) {
		ts := newTestServer(t, nil)
		resolvedAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		ts.checkInUC.EXPECT().Resolve(mock.Anything, attemptID, entity.ResponseConfirmedActive, mock.Anything).
			Return(&entity.CheckInAttempt{
				ID:         attemptID,
				FreedgeID:  1,
				Sequence:   1,
				State:      entity.AttemptAnswered,
				Response:   entity.ResponseConfirmedActive,
				ResolvedAt: &resolvedAt,
			}, nil).Once()

		rec, body := ts.do(t, jsonRequest(http.MethodPost, "/api/v1/checkins/"+attemptID.String()+"/response", `{"response":"confirmed_active"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		var attempt handler.AttemptResponse
		require.NoError(t, json.Unmarshal(body.Data, &attempt))
		assert.Equal(t, entity.AttemptAnswered, attempt.State)
		assert.Equal(t, entity.ResponseConfirmedActive, attempt.Response)
	})

	t.Run("already closed", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.checkInUC.EXPECT().Resolve(mock.Anything, attemptID, entity.ResponseNone, mock.Anything).
			Return(nil, pkgerrors.WithStack(domainerrors.ErrAttemptClosed)).Once()

		rec, body := ts.do(t, jsonRequest(http.MethodPost, "/api/v1/checkins/"+attemptID.String()+"/response", `{"response":"no_response"}`))
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ATTEMPT_CLOSED", body.Error.Code)
	})

	t.Run("unrecognized answer", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, body := ts.do(t, jsonRequest(http.MethodPost, "/api/v1/checkins/"+attemptID.String()+"/response", `{"response":"maybe"}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"response":"checkin_response"}`, string(body.Error.Details))
	})

	t.Run("missing answer", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, body := ts.do(t, jsonRequest(http.MethodPost, "/api/v1/checkins/"+attemptID.String()+"/response", `{}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"response":"required"}`, string(body.Error.Details))
	})
}

func TestHealthz(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		ts := newTestServer(t, stubPinger{})

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok"}`, string(body.Data))
	})

	t.Run("database unreachable", func(t *testing.T) {
		ts := newTestServer(t, stubPinger{err: errors.New("dial tcp: refused")})

		rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","database":"unreachable"}`, string(body.Data))
	})
}

func TestRequestID_RejectsUnsafeHeader(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 200))

	rec, body := ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := uuid.Parse(body.Meta.RequestID)
	require.NoError(t, err)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.registryUC.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	rec, _ := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/freedges", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/api/v1/freedges"`)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, body := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
