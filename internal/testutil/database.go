// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"treasury/internal/kvstore"
	"treasury/internal/models"
)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// SetupTestDB creates an isolated in-memory SQLite database with the
// key-value table migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// NewGormStore returns a store over a fresh SQLite database that is closed
// when the test ends.
func NewGormStore(t *testing.T) (*kvstore.Store, *gorm.DB) {
	t.Helper()

	db := SetupTestDB(t)
	t.Cleanup(func() { TeardownTestDB(t, db) })
	return kvstore.New(kvstore.NewGormMedium(db)), db
}

// NewMemoryStore returns a store over a fresh in-memory medium. The medium is
// returned so tests can inject failures.
func NewMemoryStore(t *testing.T) (*kvstore.Store, *kvstore.MemoryMedium) {
	t.Helper()

	medium := kvstore.NewMemoryMedium()
	return kvstore.New(medium), medium
}
