package models

import "time"

// KVEntry is one row of the key-value table backing the persistent store.
// Each ledger collection is a single JSON blob stored under its key.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:191"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the table name shared with the SQL migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}
