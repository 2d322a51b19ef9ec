// Package handler provides the HTTP handlers for the catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcare_backend/internal/api"
	"plantcare_backend/internal/feature/catalog/domain/entity"
	"plantcare_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase defines the catalog operations consumed by this handler.
type CatalogUsecase interface {
	// Search looks up catalog species by name.
	Search(ctx context.Context, query string) ([]entity.Species, error)
}

// CatalogHandler handles HTTP requests for species search.
type CatalogHandler struct {
	catalog CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler instance.
// Constructor for dependency injection.
func NewCatalogHandler(catalog CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Search handles GET /catalog/search.
// - 400 when the q query parameter is blank
// - 502 when the upstream catalog cannot be reached
// - 200 with the matching species otherwise
func (h *CatalogHandler) Search(c *gin.Context) {
	species, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("catalog search failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, species)
}
