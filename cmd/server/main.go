package main

import (
	"fmt"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"plantcare_backend/internal/app/di"
	"plantcare_backend/internal/app/router"
	catalogperenual "plantcare_backend/internal/feature/catalog/adapters/perenual"
	cataloghandler "plantcare_backend/internal/feature/catalog/transport/handler"
	catalogusecase "plantcare_backend/internal/feature/catalog/usecase"
	plantadapters "plantcare_backend/internal/feature/plants/adapters"
	planthandler "plantcare_backend/internal/feature/plants/transport/handler"
	plantusecase "plantcare_backend/internal/feature/plants/usecase"
	useradapters "plantcare_backend/internal/feature/users/adapters"
	userhandler "plantcare_backend/internal/feature/users/transport/handler"
	userusecase "plantcare_backend/internal/feature/users/usecase"
	"plantcare_backend/internal/platform/config"
	infradb "plantcare_backend/internal/platform/db"
	infrahttp "plantcare_backend/internal/platform/http"
	infraredis "plantcare_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.Open(cfg)

	// Redis (optional; catalog searches run uncached without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := useradapters.NewUserPostgres(db)
	plantRepo := plantadapters.NewPlantPostgres(db)
	ownerRepo := plantadapters.NewOwnerPostgres(db)
	perenualClient := catalogperenual.NewClient(catalogperenual.Config{
		APIKey:  cfg.PerenualAPIKey,
		BaseURL: cfg.PerenualBaseURL,
		Timeout: cfg.PerenualTimeout,
	}, infrahttp.NewHTTPClient(cfg.PerenualTimeout))
	speciesRepo := di.NewSpeciesRepository(rdb, cfg, perenualClient)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	plantUC := plantusecase.NewPlantUsecase(plantRepo, ownerRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(speciesRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	plantH := planthandler.NewPlantHandler(plantUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	// Router
	r := router.NewRouter(userH, plantH, catalogH)

	if cfg.PerenualAPIKey == "" {
		log.Println("[WARN] PERENUAL_API_KEY is not set. Catalog searches will fail upstream.")
	}

	if err := r.Run(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		log.Fatal(err)
	}
}
