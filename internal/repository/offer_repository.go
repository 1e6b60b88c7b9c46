package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfferFilters narrows offer list queries
type OfferFilters struct {
	Status    *domain.OfferStatus
	Category  *string
	Source    *string
	ContactID *uuid.UUID
	Search    string
}

var offerSortColumns = map[SortOption]string{
	SortByCreatedDesc: "created_at DESC",
	SortByCreatedAsc:  "created_at ASC",
	SortByUpdatedDesc: "updated_at DESC",
	SortByTitleAsc:    "title ASC",
	SortByTitleDesc:   "title DESC",
	SortByAmountDesc:  "total_amount DESC",
	SortByAmountAsc:   "total_amount ASC",
	SortByNumberAsc:   "offer_number ASC",
	SortByNumberDesc:  "offer_number DESC",
}

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *OfferRepository) WithTx(tx *gorm.DB) *OfferRepository {
	return &OfferRepository{db: tx}
}

// Create inserts the offer together with its items
func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("id = ?", id).
		First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// GetForUpdate loads the offer with a row lock; call it inside a transaction
func (r *OfferRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&offer).Error
	if err != nil {
		return nil, err
	}

	var items []domain.OfferItem
	if err := orderedItems(r.db.WithContext(ctx)).Where("offer_id = ?", id).Find(&items).Error; err != nil {
		return nil, err
	}
	offer.Items = items
	return &offer, nil
}

// Update saves the offer columns. Items are managed by OfferItemRepository.
func (r *OfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(offer).Error
}

// UpdateFields updates multiple columns on an offer
func (r *OfferRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Offer{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&domain.OfferItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Offer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *OfferRepository) List(ctx context.Context, page, pageSize int, filters *OfferFilters, sortBy SortOption) ([]domain.Offer, int64, error) {
	var offers []domain.Offer
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Offer{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySorting(query, sortBy, offerSortColumns)
	err := paginate(query, page, pageSize).Find(&offers).Error
	return offers, total, err
}

// ListWithItems returns up to limit offers including their items, for exports
func (r *OfferRepository) ListWithItems(ctx context.Context, filters *OfferFilters, sortBy SortOption, limit int) ([]domain.Offer, error) {
	var offers []domain.Offer
	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Offer{}), filters).
		Preload("Items", orderedItems)
	query = applySorting(query, sortBy, offerSortColumns)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&offers).Error
	return offers, err
}

// CountByStatus returns the number of offers per status
func (r *OfferRepository) CountByStatus(ctx context.Context) (map[domain.OfferStatus]int64, error) {
	type result struct {
		Status domain.OfferStatus
		Count  int64
	}
	var results []result

	err := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.OfferStatus]int64, len(results))
	for _, res := range results {
		counts[res.Status] = res.Count
	}
	return counts, nil
}

func (r *OfferRepository) applyFilters(query *gorm.DB, filters *OfferFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}
	if filters.ContactID != nil {
		query = query.Where("contact_id = ?", *filters.ContactID)
	}
	if filters.Search != "" {
		p := likePattern(filters.Search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(offer_number) LIKE ? OR LOWER(contact_name) LIKE ?", p, p, p)
	}
	return query
}
