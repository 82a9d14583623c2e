// Package model defines database models and persisted document shapes for the persistence layer.
package model

import "time"

// KeyValueModel represents the key_values table backing the database store.
type KeyValueModel struct {
	StorageKey string    `gorm:"column:storage_key;type:varchar(255);primaryKey"`
	Payload    string    `gorm:"column:payload;type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the KeyValueModel.
func (KeyValueModel) TableName() string {
	return "key_values"
}
