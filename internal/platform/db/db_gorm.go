// Package db opens the application database connection.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	plantsentity "plantcare_backend/internal/feature/plants/domain/entity"
	usersentity "plantcare_backend/internal/feature/users/domain/entity"
	"plantcare_backend/internal/platform/config"
)

// Open connects to PostgreSQL, retrying for up to a minute so the server
// survives the database starting after it. TranslateError lets adapters
// match gorm.ErrDuplicatedKey instead of driver-specific error codes.
func Open(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&usersentity.User{},
			&plantsentity.Plant{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
