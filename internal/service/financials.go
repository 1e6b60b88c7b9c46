package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"gorm.io/gorm"
)

// loadEntries collects the time, expense and material records of scope
func loadEntries(ctx context.Context, db *gorm.DB, scope repository.EntryScope) (costing.Entries, error) {
	var entries costing.Entries
	var err error

	if entries.Time, err = repository.NewTimeEntryRepository(db).List(ctx, scope); err != nil {
		return entries, fmt.Errorf("failed to list time entries: %w", err)
	}
	if entries.Expenses, err = repository.NewExpenseEntryRepository(db).List(ctx, scope, nil); err != nil {
		return entries, fmt.Errorf("failed to list expenses: %w", err)
	}
	if entries.Materials, err = repository.NewMaterialUsageRepository(db).List(ctx, scope); err != nil {
		return entries, fmt.Errorf("failed to list material usage: %w", err)
	}
	return entries, nil
}

// rollupServiceOrder recomputes the service order's derived costs and actual
// duration from every entry recorded against it.
func rollupServiceOrder(ctx context.Context, db *gorm.DB, order *domain.ServiceOrder) error {
	entries, err := loadEntries(ctx, db, repository.EntryScope{ServiceOrderID: order.ID})
	if err != nil {
		return err
	}

	fin, err := costing.RollupFinancials(order.Financials, entries)
	if err != nil {
		return err
	}
	minutes, err := costing.AggregateTimeTracking(entries.Time)
	if err != nil {
		return err
	}

	order.Financials = fin
	order.ActualDuration = minutes
	if err := repository.NewServiceOrderRepository(db).UpdateFinancials(ctx, order.ID, fin); err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&domain.ServiceOrder{}).Where("id = ?", order.ID).
		Update("actual_duration", minutes).Error
}

// rollupDispatch recomputes the dispatch's derived costs from its own entries
func rollupDispatch(ctx context.Context, db *gorm.DB, dispatch *domain.Dispatch) error {
	dispatchID := dispatch.ID
	entries, err := loadEntries(ctx, db, repository.EntryScope{ServiceOrderID: dispatch.ServiceOrderID, DispatchID: &dispatchID})
	if err != nil {
		return err
	}

	fin, err := costing.RollupFinancials(dispatch.Financials, entries)
	if err != nil {
		return err
	}
	minutes, err := costing.AggregateTimeTracking(entries.Time)
	if err != nil {
		return err
	}

	dispatch.Financials = fin
	dispatch.ActualDuration = minutes
	if err := repository.NewDispatchRepository(db).UpdateFinancials(ctx, dispatch.ID, fin); err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&domain.Dispatch{}).Where("id = ?", dispatch.ID).
		Update("actual_duration", minutes).Error
}

// rollupScope refreshes the service order and, when set, the dispatch an entry belongs to
func rollupScope(ctx context.Context, db *gorm.DB, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) error {
	order, err := repository.NewServiceOrderRepository(db).GetByID(ctx, serviceOrderID)
	if err != nil {
		return fmt.Errorf("failed to load service order for rollup: %w", err)
	}
	if err := rollupServiceOrder(ctx, db, order); err != nil {
		return err
	}

	if dispatchID == nil {
		return nil
	}
	dispatch, err := repository.NewDispatchRepository(db).GetByID(ctx, *dispatchID)
	if err != nil {
		return fmt.Errorf("failed to load dispatch for rollup: %w", err)
	}
	return rollupDispatch(ctx, db, dispatch)
}
