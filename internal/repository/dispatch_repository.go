package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

// DispatchFilters narrows dispatch list queries
type DispatchFilters struct {
	ServiceOrderID *uuid.UUID
	JobID          *uuid.UUID
	Status         *domain.DispatchStatus
	Priority       *domain.Priority
	Technician     *string
}

var dispatchSortColumns = map[SortOption]string{
	SortByCreatedDesc: "created_at DESC",
	SortByCreatedAsc:  "created_at ASC",
	SortByUpdatedDesc: "updated_at DESC",
	SortByNumberAsc:   "dispatch_number ASC",
	SortByNumberDesc:  "dispatch_number DESC",
	SortByAmountDesc:  "fin_actual_cost DESC",
	SortByAmountAsc:   "fin_actual_cost ASC",
}

type DispatchRepository struct {
	db *gorm.DB
}

func NewDispatchRepository(db *gorm.DB) *DispatchRepository {
	return &DispatchRepository{db: db}
}

func (r *DispatchRepository) WithTx(tx *gorm.DB) *DispatchRepository {
	return &DispatchRepository{db: tx}
}

func (r *DispatchRepository) Create(ctx context.Context, dispatch *domain.Dispatch) error {
	return r.db.WithContext(ctx).Create(dispatch).Error
}

func (r *DispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error) {
	var dispatch domain.Dispatch
	err := r.db.WithContext(ctx).First(&dispatch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dispatch, nil
}

func (r *DispatchRepository) Update(ctx context.Context, dispatch *domain.Dispatch) error {
	return r.db.WithContext(ctx).Save(dispatch).Error
}

func (r *DispatchRepository) UpdateFinancials(ctx context.Context, id uuid.UUID, f domain.Financials) error {
	result := r.db.WithContext(ctx).Model(&domain.Dispatch{}).Where("id = ?", id).Updates(financialColumns(f))
	if result.Error != nil {
		return fmt.Errorf("failed to update dispatch financials: %w", result.Error)
	}
	return nil
}

func (r *DispatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Dispatch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DispatchRepository) List(ctx context.Context, page, pageSize int, filters *DispatchFilters, sortBy SortOption) ([]domain.Dispatch, int64, error) {
	var dispatches []domain.Dispatch
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Dispatch{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySorting(query, sortBy, dispatchSortColumns)
	err := paginate(query, page, pageSize).Find(&dispatches).Error
	return dispatches, total, err
}

// ListByServiceOrder returns every dispatch of a service order, oldest first
func (r *DispatchRepository) ListByServiceOrder(ctx context.Context, serviceOrderID uuid.UUID) ([]domain.Dispatch, error) {
	var dispatches []domain.Dispatch
	err := r.db.WithContext(ctx).
		Where("service_order_id = ?", serviceOrderID).
		Order("created_at ASC").
		Find(&dispatches).Error
	return dispatches, err
}

func (r *DispatchRepository) applyFilters(query *gorm.DB, filters *DispatchFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.ServiceOrderID != nil {
		query = query.Where("service_order_id = ?", *filters.ServiceOrderID)
	}
	if filters.JobID != nil {
		query = query.Where("job_id = ?", *filters.JobID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.Technician != nil {
		query = query.Where("assigned_technicians LIKE ?", technicianPattern(*filters.Technician))
	}
	return query
}
