package adapters

import (
	"context"

	"gorm.io/gorm"

	"plantcare_backend/internal/feature/plants/usecase"
	usersentity "plantcare_backend/internal/feature/users/domain/entity"
)

// ownerPostgres answers owner-existence checks against the user table.
// The plants feature only needs to know whether a key is registered, so it
// queries the user entity directly instead of going through the users
// business logic.
type ownerPostgres struct {
	db *gorm.DB
}

// Compile-time check that ownerPostgres implements usecase.OwnerDirectory.
var _ usecase.OwnerDirectory = (*ownerPostgres)(nil)

// NewOwnerPostgres creates a new ownerPostgres instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewOwnerPostgres(db *gorm.DB) *ownerPostgres {
	return &ownerPostgres{db: db}
}

// Exists reports whether a user row with the given access key is present.
func (r *ownerPostgres) Exists(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&usersentity.User{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
