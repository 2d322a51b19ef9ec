package usecase

import (
	"context"

	"plantcare_backend/internal/feature/plants/domain/entity"
)

// PlantRepository abstracts the persistence layer for plant entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type PlantRepository interface {
	// Create persists a new plant to storage.
	Create(ctx context.Context, plant *entity.Plant) error

	// FindByOwner retrieves every plant whose owner key matches, in
	// storage order.
	FindByOwner(ctx context.Context, ownerKey string) ([]entity.Plant, error)

	// FindByIDAndOwner retrieves the plant matching both id and owner key
	// as a strict compound condition.
	// It returns ErrPlantNotFound if no such plant exists.
	FindByIDAndOwner(ctx context.Context, id uint, ownerKey string) (*entity.Plant, error)

	// Update persists the current state of an already-loaded plant.
	Update(ctx context.Context, plant *entity.Plant) error

	// Delete removes an already-loaded plant from storage.
	Delete(ctx context.Context, plant *entity.Plant) error
}

// OwnerDirectory reports whether an access key belongs to a registered user.
// Backed by the user table; defined here so the plants feature does not
// depend on the users business logic.
type OwnerDirectory interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// plantUsecase implements the plant-tracking business logic.
type plantUsecase struct {
	plants PlantRepository
	owners OwnerDirectory
}

// NewPlantUsecase creates a new instance of plantUsecase.
func NewPlantUsecase(plants PlantRepository, owners OwnerDirectory) *plantUsecase {
	return &plantUsecase{plants: plants, owners: owners}
}

// requireOwner fails with ErrUserNotFound unless key references a
// registered user.
func (u *plantUsecase) requireOwner(ctx context.Context, key string) error {
	ok, err := u.owners.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// validateHealthHistory checks that every recorded ranking is within 1-10.
func validateHealthHistory(history []int) error {
	for _, h := range history {
		if h < 1 || h > 10 {
			return ErrInvalidHealthHistory
		}
	}
	return nil
}

// ListForOwner returns every plant belonging to the user with the given
// access key. A key with no registered user fails with ErrUserNotFound; a
// registered user with no plants yields an empty slice.
func (u *plantUsecase) ListForOwner(ctx context.Context, key string) ([]entity.Plant, error) {
	if err := u.requireOwner(ctx, key); err != nil {
		return nil, err
	}
	return u.plants.FindByOwner(ctx, key)
}

// Create persists a new plant after verifying that its owner key references
// a registered user. Returns the stored plant with its assigned id.
func (u *plantUsecase) Create(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if err := validateHealthHistory(plant.HealthHistory); err != nil {
		return nil, err
	}
	if err := u.requireOwner(ctx, plant.OwnerKey); err != nil {
		return nil, err
	}
	if err := u.plants.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// Remove deletes the plant matching the given plant's id and owner key and
// returns the record as it existed before deletion.
func (u *plantUsecase) Remove(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if err := u.requireOwner(ctx, plant.OwnerKey); err != nil {
		return nil, err
	}
	stored, err := u.plants.FindByIDAndOwner(ctx, plant.ID, plant.OwnerKey)
	if err != nil {
		return nil, err
	}
	if err := u.plants.Delete(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update overwrites every mutable field of the stored plant matching the
// given plant's id and owner key. ID and owner key are never modified.
func (u *plantUsecase) Update(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if err := validateHealthHistory(plant.HealthHistory); err != nil {
		return nil, err
	}
	if err := u.requireOwner(ctx, plant.OwnerKey); err != nil {
		return nil, err
	}
	stored, err := u.plants.FindByIDAndOwner(ctx, plant.ID, plant.OwnerKey)
	if err != nil {
		return nil, err
	}

	stored.CommonName = plant.CommonName
	stored.ScientificName = plant.ScientificName
	stored.Type = plant.Type
	stored.Cycle = plant.Cycle
	stored.Watering = plant.Watering
	stored.WateringPeriod = plant.WateringPeriod
	stored.WateringBenchmarkValue = plant.WateringBenchmarkValue
	stored.WateringBenchmarkUnit = plant.WateringBenchmarkUnit
	stored.Sunlight = plant.Sunlight
	stored.PetPoison = plant.PetPoison
	stored.HumanPoison = plant.HumanPoison
	stored.Description = plant.Description
	stored.ImageURL = plant.ImageURL
	stored.LastWatering = plant.LastWatering
	stored.HealthHistory = plant.HealthHistory

	if err := u.plants.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}
