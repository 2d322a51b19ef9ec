// Package handler provides the HTTP handlers for the plants feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcare_backend/internal/api"
	"plantcare_backend/internal/feature/plants/domain/entity"
	"plantcare_backend/internal/feature/plants/transport/http/dto"
	"plantcare_backend/internal/feature/plants/usecase"
)

// PlantUsecase defines the plant operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type PlantUsecase interface {
	// ListForOwner returns every plant belonging to the given access key.
	ListForOwner(ctx context.Context, key string) ([]entity.Plant, error)
	// Create persists a new plant after checking the owner exists.
	Create(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	// Remove deletes the plant matching id and owner key.
	Remove(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	// Update overwrites the mutable fields of the matching plant.
	Update(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
}

// PlantHandler handles HTTP requests for plant operations.
type PlantHandler struct {
	plants PlantUsecase
}

// NewPlantHandler creates a new PlantHandler instance.
// Constructor for dependency injection.
func NewPlantHandler(plants PlantUsecase) *PlantHandler {
	return &PlantHandler{plants: plants}
}

// respondError translates usecase failures to status codes shared by every
// plant endpoint: unknown user or plant maps to 404, a bad health history to
// 422, anything else to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrPlantNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidHealthHistory):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("plant operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// ListForOwner handles GET /plant/get_user_plants.
// - 422 when the key query parameter is blank
// - 404 when the key does not belong to a registered user
// - 200 with the (possibly empty) list of plants otherwise
func (h *PlantHandler) ListForOwner(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "key must not be blank"})
		return
	}

	plants, err := h.plants.ListForOwner(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PlantListResponseFromEntities(plants))
}

// Create handles POST /plant/create_plant.
// - 400 on a malformed body
// - 422 when the owner key is blank
// - 404 when the owner key does not belong to a registered user
// - 200 with the stored plant (including its assigned id) otherwise
func (h *PlantHandler) Create(c *gin.Context) {
	var req dto.PlantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("plant create bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.OwnerKey == "" {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "owner key must not be blank"})
		return
	}

	plant, err := h.plants.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("plant created", "plant_id", plant.ID, "owner_key", plant.OwnerKey)
	c.JSON(http.StatusOK, dto.PlantResponseFromEntity(plant))
}

// Update handles PUT /plant/update_plant.
// - 400 on a malformed body
// - 422 when the owner key is blank or the id is zero
// - 404 when the owner or the (id, owner key) pair is unknown
// - 200 with the updated plant otherwise
func (h *PlantHandler) Update(c *gin.Context) {
	var req dto.PlantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("plant update bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.OwnerKey == "" {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "owner key must not be blank"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "plant id must not be blank"})
		return
	}

	plant, err := h.plants.Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("plant updated", "plant_id", plant.ID, "owner_key", plant.OwnerKey)
	c.JSON(http.StatusOK, dto.PlantResponseFromEntity(plant))
}

// Delete handles DELETE /plant/delete_plant.
// Same checks as update; returns the plant as it existed before deletion.
func (h *PlantHandler) Delete(c *gin.Context) {
	var req dto.PlantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("plant delete bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.OwnerKey == "" {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "owner key must not be blank"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "plant id must not be blank"})
		return
	}

	plant, err := h.plants.Remove(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("plant deleted", "plant_id", plant.ID, "owner_key", plant.OwnerKey)
	c.JSON(http.StatusOK, dto.PlantResponseFromEntity(plant))
}
