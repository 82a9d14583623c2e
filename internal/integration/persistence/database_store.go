package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/integration/persistence/model"
)

// databaseStore implements the adapter.KeyValueStore interface on the key_values table.
type databaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed key-value store.
func NewDatabaseStore(db *gorm.DB) adapter.KeyValueStore {
	return &databaseStore{
		db: db,
	}
}

// Get returns the value stored under key.
func (s *databaseStore) Get(ctx context.Context, key string) (string, bool, error) {
	var kv model.KeyValueModel
	result := s.db.WithContext(ctx).Where("storage_key = ?", key).First(&kv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return kv.Payload, true, nil
}

// Set upserts value under key.
func (s *databaseStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	kv := model.KeyValueModel{
		StorageKey: key,
		Payload:    value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&kv)
	return result.Error
}

// Remove deletes key.
func (s *databaseStore) Remove(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&model.KeyValueModel{})
	return result.Error
}
