package repository

import (
	"context"
	"errors"
	"time"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository is a key-value table. It satisfies pdfsettings.Store.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored value and whether the key exists
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry domain.SettingsEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts the value for key
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	entry := domain.SettingsEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.SettingsEntry{}).Error
}

func (r *SettingsRepository) List(ctx context.Context) ([]domain.SettingsEntry, error) {
	var entries []domain.SettingsEntry
	err := r.db.WithContext(ctx).Order("key ASC").Find(&entries).Error
	return entries, err
}
