package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"credkeeper/config"
	"credkeeper/internal/delivery/api/response"
	"credkeeper/internal/delivery/api/router"
	"credkeeper/internal/delivery/api/router/handler"
	deliverycontext "credkeeper/internal/delivery/context"
	"credkeeper/internal/domain/entity"
	domainerrors "credkeeper/internal/domain/errors"
	"credkeeper/internal/infra/auth"
	"credkeeper/internal/infra/metrics"
	mockRepo "credkeeper/internal/mocks/repository"
	mockUsecase "credkeeper/internal/mocks/usecase"
	"credkeeper/internal/usecase"
	"credkeeper/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secretSHA256 = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{HashAlgorithm: "sha256"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newTestEcho(t *testing.T, uc usecase.CredentialUsecase, recorder *metrics.Recorder) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			CredentialHandler: handler.NewCredentialHandler(uc, logger),
			Metrics:           recorder,
			Config:            cfg,
		},
	})
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_RegisterStoresSHA256Digest(t *testing.T) {
	store := mockRepo.NewMockUserRecordStore(t)
	recorder := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc, err := impl.NewCredentialService(store, auth.NewDigestHasher(), recorder, newTestConfig(), logger)
	require.NoError(t, err)

	store.EXPECT().
		Save(mock.Anything, "u@test.com", secretSHA256).
		Return(&entity.UserIdentity{ID: uuid.New(), Email: "u@test.com", PasswordHash: secretSHA256, CreatedAt: time.Now()}, nil)

	e := newTestEcho(t, uc, recorder)
	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"u@test.com","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "user registered", body.Message)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	metricsRec := doJSON(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `credkeeper_credential_operations_total{operation="register",outcome="success"} 1`)
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(uc *mockUsecase.MockCredentialUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "duplicate registration",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"u@test.com","password":"secret"}`,
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, errors.WithStack(domainerrors.NewConstraintViolationError("users.save", errors.New("duplicate key"), "")))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:   "store unavailable",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"u@test.com","password":"secret"}`,
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domainerrors.NewDatabaseExecuteError("users.save", errors.New("connection refused"), ""))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:   "unsupported algorithm",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"u@test.com","password":"secret"}`,
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrUnsupportedAlgorithm.WrapMessage("whirlpool"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "UNSUPPORTED_ALGORITHM",
		},
		{
			name:   "delete missing user",
			method: http.MethodDelete,
			path:   "/auth/delete",
			body:   `{"email":"ghost@test.com","password":"secret"}`,
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Delete(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrUserNotFound.WrapMessage("users.delete_by_email"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:   "delete with wrong password",
			method: http.MethodDelete,
			path:   "/auth/delete",
			body:   `{"email":"u@test.com","password":"wrong"}`,
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Delete(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("delete user"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			path:       "/auth/register",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "invalid email",
			method:     http.MethodPost,
			path:       "/auth/register",
			body:       `{"email":"nope","password":"secret"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "unexpected error",
			method:     http.MethodDelete,
			path:       "/auth/delete",
			body:       `{"email":"u@test.com","password":"secret"}`,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			setup: func(uc *mockUsecase.MockCredentialUsecase) {
				uc.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/auth/unknown",
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockCredentialUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := doJSON(newTestEcho(t, uc, metrics.New()), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Empty(t, body.Error.Details)
				assert.NotContains(t, rec.Body.String(), "connection refused")
				assert.NotContains(t, rec.Body.String(), "boom")
			}
		})
	}
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e := newTestEcho(t, mockUsecase.NewMockCredentialUsecase(t), metrics.New())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-req-1", decode(t, rec).RequestID)
}

func TestServer_MetricsDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	cfg.Metrics.Enabled = false

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			CredentialHandler: handler.NewCredentialHandler(mockUsecase.NewMockCredentialUsecase(t), logger),
			Metrics:           metrics.New(),
			Config:            cfg,
		},
	})

	rec := doJSON(e, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
