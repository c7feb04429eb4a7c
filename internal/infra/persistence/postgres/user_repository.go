// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"credkeeper/internal/domain/entity"
	domainerrors "credkeeper/internal/domain/errors"
	"credkeeper/internal/domain/repository"
	"credkeeper/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	opSave          = "users.save"
	opDeleteByEmail = "users.delete_by_email"
	opFindByEmail   = "users.find_by_email"
)

// userRecordStore implements the repository.UserRecordStore interface using GORM.
// Every statement binds email and hash as parameters.
type userRecordStore struct {
	db *gorm.DB
}

// NewUserRecordStore is the constructor for userRecordStore.
// It returns the store as a repository.UserRecordStore interface, adhering to dependency inversion.
func NewUserRecordStore(db *gorm.DB) repository.UserRecordStore {
	return &userRecordStore{
		db: db,
	}
}

// Save inserts a new record and returns the row as stored, including generated columns.
func (repo *userRecordStore) Save(ctx context.Context, email, passwordHash string) (*entity.UserIdentity, error) {
	userM := &model.UserModel{
		Email:        email,
		PasswordHash: passwordHash,
	}

	// INSERT ... RETURNING *
	if err := repo.db.WithContext(ctx).Clauses(clause.Returning{}).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewConstraintViolationError(opSave, err, "email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(opSave, err, "missing required user information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(opSave, err, "failed to insert user")
	}

	return toUserDomain(userM), nil
}

// DeleteByEmail removes the record matching email and returns the deleted row.
func (repo *userRecordStore) DeleteByEmail(ctx context.Context, email string) (*entity.UserIdentity, error) {
	userM := &model.UserModel{}

	// DELETE FROM users WHERE email = $1 RETURNING *
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("email = ?", email).
		Delete(userM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(opDeleteByEmail, result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("delete user by email")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single record by email.
func (repo *userRecordStore) FindByEmail(ctx context.Context, email string) (*entity.UserIdentity, error) {
	userM := &model.UserModel{}

	// Email is unique, so Find never yields more than one row.
	result := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Find(userM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(opFindByEmail, result.Error, "failed to find user by email")
	}

	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("find user by email")
	}

	return toUserDomain(userM), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain UserIdentity entity.
func toUserDomain(data *model.UserModel) *entity.UserIdentity {
	if data == nil {
		return nil
	}

	return &entity.UserIdentity{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
