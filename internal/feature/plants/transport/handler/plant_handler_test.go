package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"plantcare_backend/internal/feature/plants/domain/entity"
	"plantcare_backend/internal/feature/plants/usecase"
)

// mockPlantUsecase is a mock implementation of the PlantUsecase interface.
type mockPlantUsecase struct {
	ListForOwnerFunc func(ctx context.Context, key string) ([]entity.Plant, error)
	CreateFunc       func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	RemoveFunc       func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	UpdateFunc       func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
}

func (m *mockPlantUsecase) ListForOwner(ctx context.Context, key string) ([]entity.Plant, error) {
	if m.ListForOwnerFunc != nil {
		return m.ListForOwnerFunc(ctx, key)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockPlantUsecase) Create(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plant)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockPlantUsecase) Remove(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, plant)
	}
	return nil, usecase.ErrPlantNotFound
}

func (m *mockPlantUsecase) Update(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, plant)
	}
	return nil, usecase.ErrPlantNotFound
}

// newTestRouter registers the plant routes against a mock usecase.
func newTestRouter(uc PlantUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPlantHandler(uc)

	r := gin.New()
	r.GET("/plant/get_user_plants", handler.ListForOwner)
	r.POST("/plant/create_plant", handler.Create)
	r.PUT("/plant/update_plant", handler.Update)
	r.DELETE("/plant/delete_plant", handler.Delete)
	return r
}

func TestPlantHandler_ListForOwner(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockListFunc   func(ctx context.Context, key string) ([]entity.Plant, error)
		expectedStatus int
	}{
		{
			name: "success: plants for a known owner",
			url:  "/plant/get_user_plants?key=key-a",
			mockListFunc: func(ctx context.Context, key string) ([]entity.Plant, error) {
				return []entity.Plant{{ID: 1, OwnerKey: key}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: blank key",
			url:            "/plant/get_user_plants?key=",
			mockListFunc:   nil, // usecase is not called
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "failure: unknown owner",
			url:            "/plant/get_user_plants?key=missing",
			mockListFunc:   nil, // default mock reports user not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "failure: storage error",
			url:  "/plant/get_user_plants?key=key-a",
			mockListFunc: func(ctx context.Context, key string) ([]entity.Plant, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockPlantUsecase{ListForOwnerFunc: tt.mockListFunc})

			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPlantHandler_ListForOwner_EmptyListIsJSONArray(t *testing.T) {
	router := newTestRouter(&mockPlantUsecase{
		ListForOwnerFunc: func(ctx context.Context, key string) ([]entity.Plant, error) {
			return []entity.Plant{}, nil
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/plant/get_user_plants?key=key-a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String(), "empty ownership must serialize as an empty array")
}

func TestPlantHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockCreateFunc func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
		expectedStatus int
	}{
		{
			name:        "success: plant created",
			requestBody: gin.H{"common_name": "monstera", "owner_key": "key-a", "health_history": []int{8}},
			mockCreateFunc: func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
				plant.ID = 1
				return plant, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: blank owner key",
			requestBody:    gin.H{"common_name": "monstera", "owner_key": ""},
			mockCreateFunc: nil, // usecase is not called
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "failure: unknown owner",
			requestBody:    gin.H{"common_name": "monstera", "owner_key": "missing"},
			mockCreateFunc: nil, // default mock reports user not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: malformed body",
			requestBody:    "not json",
			mockCreateFunc: nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: health ranking out of range",
			requestBody: gin.H{"common_name": "monstera", "owner_key": "key-a", "health_history": []int{11}},
			mockCreateFunc: func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
				return nil, usecase.ErrInvalidHealthHistory
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockPlantUsecase{CreateFunc: tt.mockCreateFunc})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/plant/create_plant", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPlantHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockUpdateFunc func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
		expectedStatus int
	}{
		{
			name:        "success: plant updated",
			requestBody: gin.H{"id": 1, "owner_key": "key-a", "last_watering": "2026-09-01"},
			mockUpdateFunc: func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
				return plant, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: blank owner key",
			requestBody:    gin.H{"id": 1, "owner_key": ""},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "failure: zero plant id",
			requestBody:    gin.H{"id": 0, "owner_key": "key-a"},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "failure: unknown plant",
			requestBody:    gin.H{"id": 999, "owner_key": "key-a"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockPlantUsecase{UpdateFunc: tt.mockUpdateFunc})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPut, "/plant/update_plant", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPlantHandler_Delete(t *testing.T) {
	t.Run("success: returns the deleted plant", func(t *testing.T) {
		router := newTestRouter(&mockPlantUsecase{
			RemoveFunc: func(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
				assert.Equal(t, uint(1), plant.ID)
				assert.Equal(t, "key-a", plant.OwnerKey)
				return &entity.Plant{ID: 1, CommonName: "monstera", OwnerKey: "key-a"}, nil
			},
		})

		body, _ := json.Marshal(gin.H{"id": 1, "owner_key": "key-a"})
		req, _ := http.NewRequest(http.MethodDelete, "/plant/delete_plant", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "monstera", got["common_name"])
	})

	t.Run("failure: unknown plant", func(t *testing.T) {
		router := newTestRouter(&mockPlantUsecase{})

		body, _ := json.Marshal(gin.H{"id": 999, "owner_key": "key-a"})
		req, _ := http.NewRequest(http.MethodDelete, "/plant/delete_plant", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: blank owner key", func(t *testing.T) {
		router := newTestRouter(&mockPlantUsecase{})

		body, _ := json.Marshal(gin.H{"id": 1, "owner_key": ""})
		req, _ := http.NewRequest(http.MethodDelete, "/plant/delete_plant", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
