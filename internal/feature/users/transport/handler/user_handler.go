// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcare_backend/internal/api"
	"plantcare_backend/internal/feature/users/domain/entity"
	"plantcare_backend/internal/feature/users/transport/http/dto"
	"plantcare_backend/internal/feature/users/usecase"
)

// UserUsecase defines the account operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type UserUsecase interface {
	// Create registers a new account and returns the stored user.
	Create(ctx context.Context, firstName, lastName, email, password string) (*entity.User, error)
	// SignIn looks up the user matching both email and password.
	SignIn(ctx context.Context, email, password string) (*entity.User, error)
	// Get retrieves the user identified by the given access key.
	Get(ctx context.Context, key string) (*entity.User, error)
	// Update overwrites the mutable fields of the user identified by key.
	Update(ctx context.Context, key string, updated *entity.User) (*entity.User, error)
	// Delete removes the user identified by key and returns the prior record.
	Delete(ctx context.Context, key string) (*entity.User, error)
}

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
// Constructor for dependency injection.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /user/create.
// - binds the request JSON to CreateUserReq
// - 400 on malformed body or invalid credentials
// - 409 when the email is already taken
// - 200 with the stored user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("user create rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrDuplicateUser):
			slog.Warn("user create conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("user create failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("user created", "email", user.Email)
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Login handles POST /user/login.
// Email and password are taken from query parameters and matched as an exact
// pair; any mismatch surfaces as 404.
func (h *UserHandler) Login(c *gin.Context) {
	email := c.Query("email")
	password := c.Query("password")

	user, err := h.users.SignIn(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("login failed", "email", email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user login successful", "email", email)
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Get handles GET /user/get/:key.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("user get failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Update handles PUT /user/update.
// The access key comes from the query string, the replacement fields from the
// request body. An unknown (or blank) key surfaces as 404.
func (h *UserHandler) Update(c *gin.Context) {
	key := c.Query("key")

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), key, req.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrDuplicateUser):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("user update failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("user updated", "email", user.Email)
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Delete handles DELETE /user/delete.
// Returns the record as it existed before deletion.
func (h *UserHandler) Delete(c *gin.Context) {
	user, err := h.users.Delete(c.Request.Context(), c.Query("key"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("user delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user deleted", "email", user.Email)
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}
