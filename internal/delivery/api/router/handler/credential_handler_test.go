package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"credkeeper/internal/delivery/api/response"
	"credkeeper/internal/delivery/api/validator"
	"credkeeper/internal/domain/entity"
	domainerrors "credkeeper/internal/domain/errors"
	mockUsecase "credkeeper/internal/mocks/usecase"
	"credkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*CredentialHandler, *mockUsecase.MockCredentialUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockCredentialUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	return NewCredentialHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil))), uc, e
}

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func testOutput(email string) *usecase.CredentialOutput {
	return &usecase.CredentialOutput{User: &entity.UserIdentity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		CreatedAt:    time.Now(),
	}}
}

func TestCredentialHandler_RegisterUser_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"u@test.com","password":"secret"}`)

	uc.EXPECT().
		Register(mock.Anything, &usecase.CredentialInput{Email: "u@test.com", Password: "secret"}).
		Return(testOutput("u@test.com"), nil)

	require.NoError(t, h.RegisterUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "user registered", body.Message)
	assert.Nil(t, body.Data)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "2bb80d53")
}

func TestCredentialHandler_RegisterUser_ServiceError(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"u@test.com","password":"secret"}`)
	conflict := domainerrors.NewConstraintViolationError("users.save", errors.New("duplicate key"), "")

	uc.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.CredentialInput")).Return(nil, conflict)

	err := h.RegisterUser(c)

	require.Error(t, err)
	storeErr, ok := domainerrors.AsStoreError(err)
	require.True(t, ok)
	assert.True(t, storeErr.IsConstraintViolation())
	assert.Zero(t, rec.Body.Len())
}

func TestCredentialHandler_RegisterUser_InvalidBody(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":`)

	err := h.RegisterUser(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestCredentialHandler_RegisterUser_ValidationFailed(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"not-an-email"}`)

	err := h.RegisterUser(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestCredentialHandler_DeleteUser_Success(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodDelete, "/auth/delete", `{"email":"u@test.com","password":"secret"}`)

	uc.EXPECT().
		Delete(mock.Anything, &usecase.CredentialInput{Email: "u@test.com", Password: "secret"}).
		Return(testOutput("u@test.com"), nil)

	require.NoError(t, h.DeleteUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "user deleted", body.Message)
}

func TestCredentialHandler_DeleteUser_NotFound(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, _ := newJSONContext(e, http.MethodDelete, "/auth/delete", `{"email":"ghost@test.com","password":"secret"}`)

	uc.EXPECT().
		Delete(mock.Anything, mock.AnythingOfType("*usecase.CredentialInput")).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("users.delete_by_email"))

	err := h.DeleteUser(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
