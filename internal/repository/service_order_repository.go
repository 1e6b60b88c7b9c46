package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ServiceOrderFilters narrows service order list queries
type ServiceOrderFilters struct {
	Status     *domain.ServiceOrderStatus
	Priority   *domain.Priority
	Technician *string
	OfferID    *uuid.UUID
	Search     string
}

var serviceOrderSortColumns = map[SortOption]string{
	SortByCreatedDesc: "created_at DESC",
	SortByCreatedAsc:  "created_at ASC",
	SortByUpdatedDesc: "updated_at DESC",
	SortByTitleAsc:    "title ASC",
	SortByTitleDesc:   "title DESC",
	SortByAmountDesc:  "fin_actual_cost DESC",
	SortByAmountAsc:   "fin_actual_cost ASC",
	SortByNumberAsc:   "order_number ASC",
	SortByNumberDesc:  "order_number DESC",
}

type ServiceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

func (r *ServiceOrderRepository) WithTx(tx *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: tx}
}

func (r *ServiceOrderRepository) Create(ctx context.Context, order *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOrder, error) {
	var order domain.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Jobs", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *ServiceOrderRepository) GetByOfferID(ctx context.Context, offerID uuid.UUID) (*domain.ServiceOrder, error) {
	var order domain.ServiceOrder
	err := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *ServiceOrderRepository) Update(ctx context.Context, order *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

// UpdateStatus sets the status column only, leaving concurrent edits to other columns intact
func (r *ServiceOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServiceOrderStatus) error {
	result := r.db.WithContext(ctx).Model(&domain.ServiceOrder{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update service order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateFinancials overwrites the embedded financial columns
func (r *ServiceOrderRepository) UpdateFinancials(ctx context.Context, id uuid.UUID, f domain.Financials) error {
	return r.db.WithContext(ctx).Model(&domain.ServiceOrder{}).Where("id = ?", id).
		Updates(financialColumns(f)).Error
}

func (r *ServiceOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.ServiceOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceOrderRepository) List(ctx context.Context, page, pageSize int, filters *ServiceOrderFilters, sortBy SortOption) ([]domain.ServiceOrder, int64, error) {
	var orders []domain.ServiceOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.ServiceOrder{})
	if filters != nil {
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.Priority != nil {
			query = query.Where("priority = ?", *filters.Priority)
		}
		if filters.Technician != nil {
			query = query.Where("assigned_technicians LIKE ?", technicianPattern(*filters.Technician))
		}
		if filters.OfferID != nil {
			query = query.Where("offer_id = ?", *filters.OfferID)
		}
		if filters.Search != "" {
			p := likePattern(filters.Search)
			query = query.Where("LOWER(title) LIKE ? OR LOWER(order_number) LIKE ? OR LOWER(contact_name) LIKE ?", p, p, p)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySorting(query, sortBy, serviceOrderSortColumns)
	err := paginate(query, page, pageSize).Find(&orders).Error
	return orders, total, err
}

func financialColumns(f domain.Financials) map[string]interface{} {
	return map[string]interface{}{
		"fin_estimated_cost": f.EstimatedCost,
		"fin_labor_cost":     f.LaborCost,
		"fin_material_cost":  f.MaterialCost,
		"fin_travel_cost":    f.TravelCost,
		"fin_equipment_cost": f.EquipmentCost,
		"fin_overhead_cost":  f.OverheadCost,
		"fin_actual_cost":    f.ActualCost,
	}
}
