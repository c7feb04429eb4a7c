// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"credkeeper/config"
	deliverycontext "credkeeper/internal/delivery/context"
	"credkeeper/internal/domain/entity"
	domainerrors "credkeeper/internal/domain/errors"
	"credkeeper/internal/domain/repository"
	"credkeeper/internal/domain/service"
	"credkeeper/internal/errors"
	"credkeeper/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
// It holds only injected collaborators; every request's identity arrives as input.
type credentialService struct {
	store                  repository.UserRecordStore
	hasher                 service.CredentialHasher
	metrics                service.CredentialMetrics
	algorithm              string
	verifyPasswordOnDelete bool
	logger                 *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
// It fails when the configured hash algorithm is not supported by the hasher.
func NewCredentialService(
	store repository.UserRecordStore,
	hasher service.CredentialHasher,
	metrics service.CredentialMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.CredentialUsecase, error) {
	algorithm := ""
	verify := false
	if cfg.Auth != nil {
		algorithm = cfg.Auth.HashAlgorithm
		verify = cfg.Auth.VerifyPasswordOnDelete
	}
	if algorithm == "" {
		algorithm = entity.DefaultHashAlgorithm
	}

	if !hasher.Supports(algorithm) {
		return nil, domainerrors.ErrUnsupportedAlgorithm.WrapMessage("configured hash algorithm " + algorithm)
	}

	return &credentialService{
		store:                  store,
		hasher:                 hasher,
		metrics:                metrics,
		algorithm:              algorithm,
		verifyPasswordOnDelete: verify,
		logger:                 logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and inserts a new record.
// Duplicate emails are left to the store's uniqueness constraint.
func (srv *credentialService) Register(ctx context.Context, input *usecase.CredentialInput) (*usecase.CredentialOutput, error) {
	if err := validateInput(input); err != nil {
		srv.observe(service.OperationRegister, err)

		return nil, err
	}

	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password, srv.algorithm)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))
		srv.observe(service.OperationRegister, err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user, err := srv.store.Save(ctx, input.Email, passwordHash)
	if err != nil {
		srv.log(ctx).Warn("Failed to store registered user", slog.String("email", input.Email), slog.Any("error", err))
		srv.observe(service.OperationRegister, err)

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("User registered successfully", slog.String("userID", user.ID.String()))
	srv.observe(service.OperationRegister, nil)

	return &usecase.CredentialOutput{User: user}, nil
}

// Delete removes the record for input.Email.
// Unless verifyPasswordOnDelete is set, the password is neither hashed nor checked.
func (srv *credentialService) Delete(ctx context.Context, input *usecase.CredentialInput) (*usecase.CredentialOutput, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" {
		err := domainerrors.ErrValidationFailed.WrapMessage("email is required")
		srv.observe(service.OperationDelete, err)

		return nil, err
	}

	srv.log(ctx).Info("Starting user deletion", slog.String("email", input.Email))

	if srv.verifyPasswordOnDelete {
		if err := srv.verifyPassword(ctx, input); err != nil {
			srv.observe(service.OperationDelete, err)

			return nil, err
		}
	}

	user, err := srv.store.DeleteByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.String("email", input.Email), slog.Any("error", err))
		srv.observe(service.OperationDelete, err)

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("User deleted successfully", slog.String("userID", user.ID.String()))
	srv.observe(service.OperationDelete, nil)

	return &usecase.CredentialOutput{User: user}, nil
}

// Lookup returns the stored record for email.
func (srv *credentialService) Lookup(ctx context.Context, email string) (*usecase.CredentialOutput, error) {
	if strings.TrimSpace(email) == "" {
		err := domainerrors.ErrValidationFailed.WrapMessage("email is required")
		srv.observe(service.OperationLookup, err)

		return nil, err
	}

	user, err := srv.store.FindByEmail(ctx, email)
	if err != nil {
		srv.observe(service.OperationLookup, err)

		return nil, errors.WithStack(err)
	}
	srv.observe(service.OperationLookup, nil)

	return &usecase.CredentialOutput{User: user}, nil
}

// verifyPassword checks the supplied password against the stored digest.
// A missing record is reported as not found so the delete outcome stays the same.
func (srv *credentialService) verifyPassword(ctx context.Context, input *usecase.CredentialInput) error {
	if input.Password == "" {
		return domainerrors.ErrInvalidCredentials.WrapMessage("password is required to delete")
	}

	user, err := srv.store.FindByEmail(ctx, input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	passwordHash, err := srv.hasher.Hash(input.Password, srv.algorithm)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during deletion")
	}

	if subtle.ConstantTimeCompare([]byte(passwordHash), []byte(user.PasswordHash)) != 1 {
		srv.log(ctx).Warn("Rejected user deletion with wrong password", slog.String("email", input.Email))

		return domainerrors.ErrInvalidCredentials.WrapMessage("delete user")
	}

	return nil
}

func (srv *credentialService) observe(operation string, err error) {
	if srv.metrics == nil {
		return
	}

	srv.metrics.ObserveOperation(operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return service.OutcomeNotFound
	case errors.Is(err, domainerrors.ErrValidationFailed), errors.Is(err, domainerrors.ErrInvalidCredentials):
		return service.OutcomeRejected
	}

	if storeErr, ok := domainerrors.AsStoreError(err); ok && storeErr.IsConstraintViolation() {
		return service.OutcomeConflict
	}

	return service.OutcomeError
}

func validateInput(input *usecase.CredentialInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("input is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	return nil
}
