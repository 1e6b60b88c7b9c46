package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

type OfferItemRepository struct {
	db *gorm.DB
}

func NewOfferItemRepository(db *gorm.DB) *OfferItemRepository {
	return &OfferItemRepository{db: db}
}

func (r *OfferItemRepository) WithTx(tx *gorm.DB) *OfferItemRepository {
	return &OfferItemRepository{db: tx}
}

func (r *OfferItemRepository) ListByOffer(ctx context.Context, offerID uuid.UUID) ([]domain.OfferItem, error) {
	var items []domain.OfferItem
	err := orderedItems(r.db.WithContext(ctx)).
		Where("offer_id = ?", offerID).
		Find(&items).Error
	return items, err
}

// ReplaceForOffer swaps the full item list of an offer. Positions follow slice order.
func (r *OfferItemRepository) ReplaceForOffer(ctx context.Context, offerID uuid.UUID, items []domain.OfferItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", offerID).Delete(&domain.OfferItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].OfferID = offerID
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
}

func (r *OfferItemRepository) CountByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.OfferItem{}).Where("offer_id = ?", offerID).Count(&count).Error
	return count, err
}
