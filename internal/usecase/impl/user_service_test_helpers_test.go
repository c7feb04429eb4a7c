package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"credkeeper/config"
	"credkeeper/internal/domain/entity"
	domainerrors "credkeeper/internal/domain/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(algorithm string, verifyPasswordOnDelete bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			HashAlgorithm:          algorithm,
			VerifyPasswordOnDelete: verifyPasswordOnDelete,
		},
	}
}

// memoryStore is a map-backed UserRecordStore with the same uniqueness rule as the users table.
type memoryStore struct {
	mu    sync.Mutex
	users map[string]*entity.UserIdentity
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]*entity.UserIdentity)}
}

func (s *memoryStore) Save(_ context.Context, email, passwordHash string) (*entity.UserIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return nil, domainerrors.NewConstraintViolationError("users.save", nil, "duplicate email")
	}
	user := &entity.UserIdentity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[email] = user

	return user, nil
}

func (s *memoryStore) DeleteByEmail(_ context.Context, email string) (*entity.UserIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("users.delete_by_email")
	}
	delete(s.users, email)

	return user, nil
}

func (s *memoryStore) FindByEmail(_ context.Context, email string) (*entity.UserIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("users.find_by_email")
	}

	return user, nil
}
