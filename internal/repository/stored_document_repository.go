package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

type StoredDocumentRepository struct {
	db *gorm.DB
}

func NewStoredDocumentRepository(db *gorm.DB) *StoredDocumentRepository {
	return &StoredDocumentRepository{db: db}
}

func (r *StoredDocumentRepository) Create(ctx context.Context, doc *domain.StoredDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *StoredDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredDocument, error) {
	var doc domain.StoredDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByEntity returns the documents stored for an entity, newest first
func (r *StoredDocumentRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.StoredDocument, error) {
	var docs []domain.StoredDocument
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

// ListOlderThan returns up to limit documents created before cutoff, oldest first
func (r *StoredDocumentRepository) ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.StoredDocument, error) {
	var docs []domain.StoredDocument
	err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

func (r *StoredDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.StoredDocument{}, id)
}
