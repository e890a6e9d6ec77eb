package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"treasury/internal/models"
)

// GormMedium keeps entries in the kv_entries table of a SQL database.
type GormMedium struct {
	db *gorm.DB
}

// NewGormMedium creates a medium on an already migrated database.
func NewGormMedium(db *gorm.DB) *GormMedium {
	return &GormMedium{db: db}
}

// Read returns the value for key or ErrNotFound.
func (m *GormMedium) Read(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	if err := m.db.WithContext(ctx).Where("entry_key = ?", key).Take(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

// Write upserts the value for key.
func (m *GormMedium) Write(ctx context.Context, key, value string) error {
	entry := &models.KVEntry{Key: key, Value: value}
	return m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}

// Delete removes key. Deleting an absent key succeeds.
func (m *GormMedium) Delete(ctx context.Context, key string) error {
	return m.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&models.KVEntry{}).Error
}
