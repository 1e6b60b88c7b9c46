package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool          { return &b }
func floatPtr(f float64) *float64 { return &f }

// ============================================================================
// Time
// ============================================================================

func TestEntryService_AddTime_RollsUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)
	d := f.dispatch(t, *order)

	billed, err := f.entries.AddTime(ctx, order.ID, &d.ID, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 150, HourlyRate: 85,
	})
	require.NoError(t, err)
	assert.True(t, billed.Billable, "time is billable unless stated otherwise")
	assert.Equal(t, 212.5, billed.TotalCost)

	_, err = f.entries.AddTime(ctx, order.ID, &d.ID, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeDocumentation, Duration: 60, HourlyRate: 100,
		Billable: boolPtr(false),
	})
	require.NoError(t, err)

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 212.5, reloaded.Financials.LaborCost)
	assert.Equal(t, 212.5, reloaded.Financials.ActualCost)
	assert.Equal(t, 210, reloaded.ActualDuration)

	dispatch, err := f.dispatches.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 212.5, dispatch.Financials.LaborCost)

	entries, err := f.entries.ListTime(ctx, order.ID, &d.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, f.entries.DeleteTime(ctx, billed.ID))
	reloaded, err = f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Financials.LaborCost)
	assert.Equal(t, 60, reloaded.ActualDuration)
}

func TestEntryService_AddTime_DurationFromTimestamps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	entry, err := f.entries.AddTime(ctx, order.ID, nil, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeTravel, StartTime: &start, EndTime: &end, HourlyRate: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, entry.Duration)
	assert.Equal(t, 60.0, entry.TotalCost)

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, reloaded.Financials.TravelCost)
	assert.Zero(t, reloaded.Financials.LaborCost)
}

func TestEntryService_Scope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)
	foreign := f.dispatch(t, *f.serviceOrder(t))

	_, err := f.entries.AddTime(ctx, order.ID, &foreign.ID, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 10,
	})
	assert.ErrorIs(t, err, service.ErrDispatchNotFound)

	_, err = f.entries.ListTime(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, service.ErrServiceOrderNotFound)
}

// ============================================================================
// Expenses
// ============================================================================

func TestEntryService_ExpenseApproval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	expense, err := f.entries.AddExpense(ctx, order.ID, nil, &domain.CreateExpenseEntryRequest{
		TechnicianID: "tech-1", Type: domain.ExpenseTypeMeal, Amount: 24.999,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusPending, expense.Status)
	assert.Equal(t, 25.0, expense.Amount)

	pending, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, pending.Financials.TravelCost, "pending expenses are not counted")

	approved, err := f.entries.ApproveExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusApproved, approved.Status)

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, reloaded.Financials.TravelCost)
	assert.Equal(t, 25.0, reloaded.Financials.ActualCost)

	_, err = f.entries.ApproveExpense(ctx, expense.ID)
	assert.ErrorIs(t, err, service.ErrExpenseNotPending)
	_, err = f.entries.RejectExpense(ctx, expense.ID, "duplicate")
	assert.ErrorIs(t, err, service.ErrExpenseNotPending)

	status := domain.ExpenseStatusApproved
	list, err := f.entries.ListExpenses(ctx, order.ID, nil, &status)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEntryService_ExpenseRejection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	expense, err := f.entries.AddExpense(ctx, order.ID, nil, &domain.CreateExpenseEntryRequest{
		TechnicianID: "tech-1", Type: domain.ExpenseTypeOther, Amount: 80,
	})
	require.NoError(t, err)

	rejected, err := f.entries.RejectExpense(ctx, expense.ID, "no receipt")
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusRejected, rejected.Status)

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Financials.OverheadCost)

	_, err = f.entries.AddExpense(ctx, order.ID, nil, &domain.CreateExpenseEntryRequest{
		TechnicianID: "tech-1", Type: domain.ExpenseTypeOther, Amount: -5,
	})
	assert.Error(t, err)
}

// ============================================================================
// Materials
// ============================================================================

func TestEntryService_AddMaterial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	article, err := f.articles.Create(ctx, &domain.CreateArticleRequest{
		SKU: "FLT-100", Name: "Air filter", Type: domain.OfferItemTypeArticle, UnitPrice: 45.5,
	})
	require.NoError(t, err)

	t.Run("article supplies name and price", func(t *testing.T) {
		usage, err := f.entries.AddMaterial(ctx, order.ID, nil, &domain.CreateMaterialUsageRequest{
			ArticleID: &article.ID, Quantity: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "Air filter", usage.Name)
		assert.Equal(t, 45.5, usage.UnitPrice)
		assert.Equal(t, 91.0, usage.TotalCost)
	})

	t.Run("explicit price wins", func(t *testing.T) {
		usage, err := f.entries.AddMaterial(ctx, order.ID, nil, &domain.CreateMaterialUsageRequest{
			ArticleID: &article.ID, Quantity: 1, UnitPrice: floatPtr(40),
			Replacing: &domain.MaterialReplacementRequest{OldArticleModel: "FLT-90", OldArticleStatus: domain.OldArticleStatusBroken},
		})
		require.NoError(t, err)
		assert.Equal(t, 40.0, usage.TotalCost)
		require.NotNil(t, usage.Replacing)
		assert.Equal(t, "FLT-90", usage.Replacing.OldArticleModel)
	})

	t.Run("free text needs a name", func(t *testing.T) {
		_, err := f.entries.AddMaterial(ctx, order.ID, nil, &domain.CreateMaterialUsageRequest{Quantity: 1, UnitPrice: floatPtr(3)})
		assert.ErrorIs(t, err, service.ErrMaterialNameNeeded)
	})

	t.Run("unknown article", func(t *testing.T) {
		missing := uuid.New()
		_, err := f.entries.AddMaterial(ctx, order.ID, nil, &domain.CreateMaterialUsageRequest{ArticleID: &missing, Quantity: 1})
		assert.ErrorIs(t, err, service.ErrArticleNotFound)
	})

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 131.0, reloaded.Financials.MaterialCost)

	usages, err := f.entries.ListMaterials(ctx, order.ID, nil)
	require.NoError(t, err)
	require.Len(t, usages, 2)
	require.NoError(t, f.entries.DeleteMaterial(ctx, usages[0].ID))
	assert.ErrorIs(t, f.entries.DeleteMaterial(ctx, usages[0].ID), service.ErrEntryNotFound)
}

// ============================================================================
// Articles
// ============================================================================

func TestArticleService_DuplicateSKU(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &domain.CreateArticleRequest{SKU: "PMP-1", Name: "Pump", Type: domain.OfferItemTypeArticle, UnitPrice: 150}
	created, err := f.articles.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = f.articles.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrDuplicateSKU)

	updated, err := f.articles.Update(ctx, created.ID, &domain.UpdateArticleRequest{Name: "Heat pump", UnitPrice: 175, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Heat pump", updated.Name)
	assert.Equal(t, 175.0, updated.UnitPrice)

	require.NoError(t, f.articles.Delete(ctx, created.ID))
	_, err = f.articles.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrArticleNotFound)
}
