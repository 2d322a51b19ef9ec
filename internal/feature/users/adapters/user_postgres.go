// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"plantcare_backend/internal/feature/users/domain/entity"
	"plantcare_backend/internal/feature/users/usecase"
)

// userPostgres is the gorm-backed implementation of the UserRepository
// interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements usecase.UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts a user row. A unique-index violation on the email column is
// translated to usecase.ErrDuplicateUser.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound if no row matches.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByCredentials retrieves a user by the (email, password) pair in a
// single compound-equality query.
// It returns usecase.ErrUserNotFound if no row matches.
func (r *userPostgres) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ? AND password = ?", email, password).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByKey retrieves a user by access key.
// It returns usecase.ErrUserNotFound if no row matches.
func (r *userPostgres) FindByKey(ctx context.Context, key string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update writes back every column of an already-loaded user row.
// A unique-index violation on the email column is translated to
// usecase.ErrDuplicateUser.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Delete removes an already-loaded user row.
func (r *userPostgres) Delete(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}
