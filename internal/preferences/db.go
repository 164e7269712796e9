package preferences

import (
	"context"
	"errors"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBStore persists preferences in the preferences table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore returns a Store backed by db.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Get(ctx context.Context, key Key) (string, bool, error) {
	var preference models.Preference

	err := s.db.WithContext(ctx).First(&preference, "name = ?", string(key)).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}

	return preference.Value, true, nil
}

// Set writes the value synchronously, replacing any previous value.
func (s *DBStore) Set(ctx context.Context, key Key, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Preference{
		Key:       string(key),
		Value:     value,
		UpdatedAt: time.Now().In(time.UTC),
	}).Error
}
