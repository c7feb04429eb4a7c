// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"credkeeper/internal/delivery/api/response"
	deliverycontext "credkeeper/internal/delivery/context"
	domainerrors "credkeeper/internal/domain/errors"
	"credkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	messageUserRegistered = "user registered"
	messageUserDeleted    = "user deleted"
)

// CredentialHandler serves the credential lifecycle endpoints.
// Each request builds its own CredentialInput; the handler keeps no per-request state.
type CredentialHandler struct {
	uc     usecase.CredentialUsecase
	logger *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(uc usecase.CredentialUsecase, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterUser handles POST /auth/register.
func (h *CredentialHandler) RegisterUser(c echo.Context) error {
	input, err := bindCredentials(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, messageUserRegistered)
}

// DeleteUser handles DELETE /auth/delete.
func (h *CredentialHandler) DeleteUser(c echo.Context) error {
	input, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Delete(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("User deleted", slog.String("userID", output.User.ID.String()))

	return response.Success(c, http.StatusOK, nil, messageUserDeleted)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func bindCredentials(c echo.Context) (*usecase.CredentialInput, error) {
	input := new(usecase.CredentialInput)
	if err := c.Bind(input); err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	return input, nil
}
