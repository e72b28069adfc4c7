// Package sqlite provides a Storage implementation on an embedded SQLite
// database, for installs that want the client state in one inspectable
// place instead of a loose JSON file.
package sqlite

import (
	"time"

	"storefront/internal/domain/service"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// storageItem is the single kv table backing the store.
type storageItem struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string
	UpdatedAt time.Time
}

func (storageItem) TableName() string {
	return "storage_items"
}

// Store persists keys in an SQLite database via gorm.
type Store struct {
	db *gorm.DB
}

// NewStore opens (and migrates) the database at path.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Single-writer client state; gorm's implicit per-statement
		// transaction only adds overhead here.
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite storage")
	}

	if err := db.AutoMigrate(&storageItem{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate sqlite storage")
	}

	return &Store{db: db}, nil
}

var _ service.Storage = (*Store)(nil)

func (s *Store) Load(key string) (string, bool, error) {
	var item storageItem
	err := s.db.First(&item, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to load storage key")
	}

	return item.Value, true, nil
}

func (s *Store) Save(key, value string) error {
	item := storageItem{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error

	return errors.Wrap(err, "failed to save storage key")
}

func (s *Store) Remove(key string) error {
	err := s.db.Delete(&storageItem{}, "key = ?", key).Error

	return errors.Wrap(err, "failed to remove storage key")
}
