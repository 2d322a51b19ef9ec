// Package adapters provides the repository implementations for the plants feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"plantcare_backend/internal/feature/plants/domain/entity"
	"plantcare_backend/internal/feature/plants/usecase"
)

// plantPostgres is the gorm-backed implementation of the PlantRepository
// interface.
type plantPostgres struct {
	db *gorm.DB
}

// Compile-time check that plantPostgres implements usecase.PlantRepository.
var _ usecase.PlantRepository = (*plantPostgres)(nil)

// NewPlantPostgres creates a new plantPostgres instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewPlantPostgres(db *gorm.DB) *plantPostgres {
	return &plantPostgres{db: db}
}

// Create inserts a plant row.
func (r *plantPostgres) Create(ctx context.Context, p *entity.Plant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByOwner retrieves every plant row whose owner key matches, in storage
// order. A user with no plants yields an empty slice, not an error.
func (r *plantPostgres) FindByOwner(ctx context.Context, ownerKey string) ([]entity.Plant, error) {
	plants := []entity.Plant{}
	if err := r.db.WithContext(ctx).Where("owner_key = ?", ownerKey).Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

// FindByIDAndOwner retrieves the plant row matching both id and owner key as
// a strict compound condition.
// It returns usecase.ErrPlantNotFound if no row matches.
func (r *plantPostgres) FindByIDAndOwner(ctx context.Context, id uint, ownerKey string) (*entity.Plant, error) {
	var p entity.Plant
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_key = ?", id, ownerKey).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlantNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update writes back every column of an already-loaded plant row.
func (r *plantPostgres) Update(ctx context.Context, p *entity.Plant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes an already-loaded plant row.
func (r *plantPostgres) Delete(ctx context.Context, p *entity.Plant) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
