package models

import "time"

// KVEntry is one stored key when the blob store runs on SQL.
type KVEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     string `gorm:"column:entry_value"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
