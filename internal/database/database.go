package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/pkg/config"
)

// DB wraps the gorm handle shared by every repository.
type DB struct {
	*gorm.DB
}

// Initialize opens the sqlite store described by cfg and applies its
// connection pool settings. The parent directory is created on demand.
func Initialize(cfg config.DatabaseConfig) (*DB, error) {
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	logLevel := logger.Error
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(poolSetting(cfg.MaxConnections, 10))
	sqlDB.SetMaxIdleConns(poolSetting(cfg.MaxIdleConnections, 5))
	lifetime := cfg.ConnectionMaxLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	return &DB{DB: db}, nil
}

func poolSetting(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// Close closes the underlying connection pool
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("unwrapping sql database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("unwrapping sql database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}

// Migrate creates or updates the schema for every registered entity.
func (db *DB) Migrate() error {
	entities := models.All()
	if err := db.DB.AutoMigrate(entities...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	log.Printf("Schema covers %d entities", len(entities))
	return nil
}
