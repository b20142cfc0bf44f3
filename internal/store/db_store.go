package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the single table the database backend uses. The store contract
// is flat key -> blob, so the schema is deliberately nothing more than that.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value string `gorm:"type:longtext"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// DBStore keeps each blob in one row, replaced wholesale on Set.
type DBStore struct {
	DB *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

func (s *DBStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	err := s.DB.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *DBStore) Set(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: key, Value: value}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}

func (s *DBStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Delete(&KVEntry{}, "`key` = ?", key).Error
}
