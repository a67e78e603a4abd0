package services

import (
	"path/filepath"
	"testing"

	"github.com/RidgwayA/cal-tracker/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB gives each test its own sqlite database and points the
// package-level connection at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	return db
}
