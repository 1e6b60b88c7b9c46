package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

type StatusHistoryRepository struct {
	db *gorm.DB
}

func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: db}
}

func (r *StatusHistoryRepository) WithTx(tx *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: tx}
}

// Create records a new status transition
func (r *StatusHistoryRepository) Create(ctx context.Context, history *domain.StatusHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// RecordTransition is a convenience method to create a history record
func (r *StatusHistoryRepository) RecordTransition(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, from, to, note string) error {
	return r.Create(ctx, &domain.StatusHistory{
		EntityType: entityType,
		EntityID:   entityID,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		ChangedAt:  time.Now().UTC(),
	})
}

// ListByEntity returns the history of one entity, oldest first
func (r *StatusHistoryRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.StatusHistory, error) {
	var history []domain.StatusHistory
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("changed_at ASC").
		Find(&history).Error
	return history, err
}

// GetLatest returns the most recent transition of an entity
func (r *StatusHistoryRepository) GetLatest(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.StatusHistory, error) {
	var history domain.StatusHistory
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("changed_at DESC").
		First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// DeleteByEntity removes all history for an entity (used when it is deleted)
func (r *StatusHistoryRepository) DeleteByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&domain.StatusHistory{}).Error
}
