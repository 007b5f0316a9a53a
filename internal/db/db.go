package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/config"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// ConnectWithRetry opens the configured database, retrying until the server
// is reachable. Postgres is the production driver; sqlite exists for local
// single-file setups.
func ConnectWithRetry(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var database *gorm.DB
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		database, err = open(cfg)
		if err == nil {
			sqlDB, err2 := database.DB()
			if err2 == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					return database, nil
				} else {
					err = pingErr
				}
			} else {
				err = err2
			}
		}

		log.Warn("db not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultMaxAttempts),
			zap.Error(err),
		)
		time.Sleep(defaultDelayBetweenTry)
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}

func open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver: %q", cfg.DBDriver)
	}
}
