package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ============================================================================
// Service orders
// ============================================================================

func TestServiceOrderRepository_RoundTripsEmbeddedColumns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewServiceOrderRepository(db)
	ctx := context.Background()

	order := testutil.CreateTestServiceOrder(t, db, "Annual service")
	fin := domain.Financials{LaborCost: 212.5, MaterialCost: 60}
	fin.Sum()
	require.NoError(t, repo.UpdateFinancials(ctx, order.ID, fin))

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tech-1"}, found.AssignedTechnicians)
	assert.Equal(t, 272.5, found.Financials.ActualCost)
	assert.Equal(t, domain.ServiceOrderStatusOpen, found.Status)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, domain.ServiceOrderStatusReadyForPlanning))
	found, err = repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceOrderStatusReadyForPlanning, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), domain.ServiceOrderStatusClosed), gorm.ErrRecordNotFound)
}

func TestServiceOrderRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewServiceOrderRepository(db)
	ctx := context.Background()

	testutil.CreateTestServiceOrder(t, db, "Annual service")
	other := testutil.CreateTestServiceOrder(t, db, "Emergency repair")
	other.AssignedTechnicians = []string{"tech-2", "tech-10"}
	other.Priority = domain.PriorityUrgent
	require.NoError(t, repo.Update(ctx, other))

	tech2 := "tech-2"
	tech1 := "tech-1"
	urgent := domain.PriorityUrgent

	tests := []struct {
		name    string
		filters *repository.ServiceOrderFilters
		total   int64
	}{
		{"no filters", nil, 2},
		{"technician exact match", &repository.ServiceOrderFilters{Technician: &tech1}, 1},
		{"technician second slot", &repository.ServiceOrderFilters{Technician: &tech2}, 1},
		{"priority", &repository.ServiceOrderFilters{Priority: &urgent}, 1},
		{"search", &repository.ServiceOrderFilters{Search: "repair"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.List(ctx, 1, 20, tt.filters, repository.SortByTitleAsc)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestJobRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	order := testutil.CreateTestServiceOrder(t, db, "Annual service")
	for _, title := range []string{"Inspect", "Replace filter"} {
		require.NoError(t, repo.Create(ctx, &domain.Job{ServiceOrderID: order.ID, Title: title, Status: domain.JobStatusUnscheduled}))
	}

	jobs, err := repo.ListByServiceOrder(ctx, order.ID, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	jobs[0].Status = domain.JobStatusScheduled
	require.NoError(t, repo.Update(ctx, &jobs[0]))

	scheduled := domain.JobStatusScheduled
	jobs, err = repo.ListByServiceOrder(ctx, order.ID, &scheduled)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	loaded, err := repository.NewServiceOrderRepository(db).GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Jobs, 2)

	require.NoError(t, repo.DeleteByServiceOrder(ctx, order.ID))
	jobs, err = repo.ListByServiceOrder(ctx, order.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

// ============================================================================
// Dispatches and entries
// ============================================================================

func TestDispatchRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDispatchRepository(db)
	ctx := context.Background()

	order := testutil.CreateTestServiceOrder(t, db, "Annual service")
	first := testutil.CreateTestDispatch(t, db, order)
	testutil.CreateTestDispatch(t, db, order)
	testutil.CreateTestDispatch(t, db, testutil.CreateTestServiceOrder(t, db, "Other"))

	first.Status = domain.DispatchStatusAssigned
	require.NoError(t, repo.Update(ctx, first))

	byOrder, total, err := repo.List(ctx, 1, 20, &repository.DispatchFilters{ServiceOrderID: &order.ID}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byOrder, 2)

	assigned := domain.DispatchStatusAssigned
	_, total, err = repo.List(ctx, 1, 20, &repository.DispatchFilters{Status: &assigned}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	all, err := repo.ListByServiceOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEntryRepositories_Scope(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	timeRepo := repository.NewTimeEntryRepository(db)
	expenseRepo := repository.NewExpenseEntryRepository(db)
	materialRepo := repository.NewMaterialUsageRepository(db)

	order := testutil.CreateTestServiceOrder(t, db, "Annual service")
	dispatch := testutil.CreateTestDispatch(t, db, order)

	require.NoError(t, timeRepo.Create(ctx, &domain.TimeEntry{ServiceOrderID: order.ID, DispatchID: &dispatch.ID, TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 150, Billable: true, HourlyRate: 85}))
	require.NoError(t, timeRepo.Create(ctx, &domain.TimeEntry{ServiceOrderID: order.ID, TechnicianID: "tech-1", WorkType: domain.WorkTypeDocumentation, Duration: 30}))

	all, err := timeRepo.List(ctx, repository.EntryScope{ServiceOrderID: order.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := timeRepo.List(ctx, repository.EntryScope{ServiceOrderID: order.ID, DispatchID: &dispatch.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, 150, scoped[0].Duration)

	usage := &domain.MaterialUsage{ServiceOrderID: order.ID, Name: "Filter", Quantity: 2, UnitPrice: 30,
		Replacing: &domain.MaterialReplacement{OldArticleModel: "F-100", OldArticleStatus: domain.OldArticleStatusBroken}}
	require.NoError(t, usage.Recalculate())
	require.NoError(t, materialRepo.Create(ctx, usage))

	loaded, err := materialRepo.GetByID(ctx, usage.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Replacing)
	assert.Equal(t, "F-100", loaded.Replacing.OldArticleModel)
	assert.Equal(t, 60.0, loaded.TotalCost)

	expense := &domain.ExpenseEntry{ServiceOrderID: order.ID, TechnicianID: "tech-1", Type: domain.ExpenseTypeMeal, Amount: 25, Status: domain.ExpenseStatusPending}
	require.NoError(t, expenseRepo.Create(ctx, expense))

	ok, err := expenseRepo.UpdateStatus(ctx, expense.ID, domain.ExpenseStatusPending, domain.ExpenseStatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = expenseRepo.UpdateStatus(ctx, expense.ID, domain.ExpenseStatusPending, domain.ExpenseStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok, "an expense that already left pending is not moved again")

	approved := domain.ExpenseStatusApproved
	list, err := expenseRepo.List(ctx, repository.EntryScope{ServiceOrderID: order.ID}, &approved)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, timeRepo.Delete(ctx, scoped[0].ID))
	assert.ErrorIs(t, timeRepo.Delete(ctx, scoped[0].ID), gorm.ErrRecordNotFound)
}

func TestArticleRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	articles := []domain.Article{
		{SKU: "HP-200", Name: "Heat pump", Type: domain.OfferItemTypeArticle, Category: "hvac", UnitPrice: 150, IsActive: true},
		{SKU: "F-100", Name: "Filter", Type: domain.OfferItemTypeArticle, Category: "hvac", UnitPrice: 30, IsActive: true},
		{SKU: "SRV-INST", Name: "Installation", Type: domain.OfferItemTypeService, UnitPrice: 150, IsActive: true},
	}
	for i := range articles {
		require.NoError(t, repo.Create(ctx, &articles[i]))
	}

	found, err := repo.GetBySKU(ctx, "F-100")
	require.NoError(t, err)
	assert.Equal(t, "Filter", found.Name)

	service := domain.OfferItemTypeService
	list, total, err := repo.List(ctx, 1, 20, &repository.ArticleFilters{Type: &service})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Installation", list[0].Name)

	list, _, err = repo.List(ctx, 1, 20, &repository.ArticleFilters{Search: "hp-"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "HP-200", list[0].SKU)

	duplicate := domain.Article{SKU: "HP-200", Name: "Copy", Type: domain.OfferItemTypeArticle}
	assert.Error(t, repo.Create(ctx, &duplicate))
}
