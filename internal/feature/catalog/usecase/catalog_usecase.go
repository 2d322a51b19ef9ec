package usecase

import (
	"context"
	"strings"

	"plantcare_backend/internal/feature/catalog/domain/entity"
)

// SpeciesRepository abstracts the plant catalog lookup.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters). The caching decorator in
// platform/cache wraps implementations of this interface.
type SpeciesRepository interface {
	// Search returns the species matching the given query term.
	Search(ctx context.Context, query string) ([]entity.Species, error)
}

// catalogUsecase implements the species search business logic.
type catalogUsecase struct {
	species SpeciesRepository
}

// NewCatalogUsecase creates a new instance of catalogUsecase.
func NewCatalogUsecase(species SpeciesRepository) *catalogUsecase {
	return &catalogUsecase{species: species}
}

// Search looks up catalog species by name.
// A blank query fails with ErrEmptyQuery before any upstream call is made.
func (u *catalogUsecase) Search(ctx context.Context, query string) ([]entity.Species, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.species.Search(ctx, query)
}
