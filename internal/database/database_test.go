package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/pkg/config"
)

func TestInitializeAppliesPoolSettings(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{
		Path:                  ":memory:",
		MaxConnections:        4,
		MaxIdleConnections:    2,
		ConnectionMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, db.HealthCheck())
}

func TestMigrateCoversAllEntities(t *testing.T) {
	// A single connection keeps every statement on the same in-memory store.
	db, err := Initialize(config.DatabaseConfig{
		Path:               ":memory:",
		MaxConnections:     1,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.Migrate())
	for _, entity := range models.All() {
		assert.True(t, db.Migrator().HasTable(entity))
	}
}
