package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

// EntryScope selects entries of a service order, optionally narrowed to one dispatch
type EntryScope struct {
	ServiceOrderID uuid.UUID
	DispatchID     *uuid.UUID
}

func (s EntryScope) apply(query *gorm.DB) *gorm.DB {
	query = query.Where("service_order_id = ?", s.ServiceOrderID)
	if s.DispatchID != nil {
		query = query.Where("dispatch_id = ?", *s.DispatchID)
	}
	return query
}

// TimeEntryRepository handles technician time records
type TimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) WithTx(tx *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: tx}
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *TimeEntryRepository) List(ctx context.Context, scope EntryScope) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	err := scope.apply(r.db.WithContext(ctx)).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.TimeEntry{}, id)
}

// ExpenseEntryRepository handles technician expenses
type ExpenseEntryRepository struct {
	db *gorm.DB
}

func NewExpenseEntryRepository(db *gorm.DB) *ExpenseEntryRepository {
	return &ExpenseEntryRepository{db: db}
}

func (r *ExpenseEntryRepository) WithTx(tx *gorm.DB) *ExpenseEntryRepository {
	return &ExpenseEntryRepository{db: tx}
}

func (r *ExpenseEntryRepository) Create(ctx context.Context, entry *domain.ExpenseEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ExpenseEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExpenseEntry, error) {
	var entry domain.ExpenseEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ExpenseEntryRepository) List(ctx context.Context, scope EntryScope, status *domain.ExpenseStatus) ([]domain.ExpenseEntry, error) {
	var entries []domain.ExpenseEntry
	query := scope.apply(r.db.WithContext(ctx))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&entries).Error
	return entries, err
}

// UpdateStatus moves an expense only when it is still in the expected status
func (r *ExpenseEntryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ExpenseStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.ExpenseEntry{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update expense status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *ExpenseEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.ExpenseEntry{}, id)
}

// MaterialUsageRepository handles consumed material records
type MaterialUsageRepository struct {
	db *gorm.DB
}

func NewMaterialUsageRepository(db *gorm.DB) *MaterialUsageRepository {
	return &MaterialUsageRepository{db: db}
}

func (r *MaterialUsageRepository) WithTx(tx *gorm.DB) *MaterialUsageRepository {
	return &MaterialUsageRepository{db: tx}
}

func (r *MaterialUsageRepository) Create(ctx context.Context, usage *domain.MaterialUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *MaterialUsageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaterialUsage, error) {
	var usage domain.MaterialUsage
	if err := r.db.WithContext(ctx).First(&usage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &usage, nil
}

func (r *MaterialUsageRepository) List(ctx context.Context, scope EntryScope) ([]domain.MaterialUsage, error) {
	var usages []domain.MaterialUsage
	err := scope.apply(r.db.WithContext(ctx)).Order("created_at ASC").Find(&usages).Error
	return usages, err
}

func (r *MaterialUsageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.MaterialUsage{}, id)
}

func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
