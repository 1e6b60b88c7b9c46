package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	t.Run("inherits priority and technicians", func(t *testing.T) {
		d := f.dispatch(t, *order)
		assert.Equal(t, domain.DispatchStatusPending, d.Status)
		assert.Equal(t, domain.PriorityMedium, d.Priority)
		assert.Equal(t, []string{"tech-1"}, d.AssignedTechnicians)
		assert.True(t, service.ValidateNumber(d.DispatchNumber), d.DispatchNumber)
	})

	t.Run("job must belong to the order", func(t *testing.T) {
		other := f.serviceOrder(t)
		job, err := f.jobs.Create(ctx, other.ID, &domain.CreateJobRequest{Title: "Elsewhere"})
		require.NoError(t, err)

		_, err = f.dispatches.Create(ctx, order.ID, &domain.CreateDispatchRequest{JobID: &job.ID})
		assert.ErrorIs(t, err, service.ErrJobNotInOrder)
	})
}

func TestDispatchService_JumpWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.dispatch(t, *f.serviceOrder(t))
	f.walkDispatch(t, *d, domain.DispatchStatusOnSite)

	res, err := f.dispatches.Transition(ctx, d.ID, service.JumpTo(string(domain.DispatchStatusCompleted)))
	require.NoError(t, err)
	assert.False(t, res.Changed, "on_site -> completed skips in_progress")
	assert.Equal(t, "on_site", res.To)

	res, err = f.dispatches.Transition(ctx, d.ID, service.JumpTo(string(domain.DispatchStatusInProgress)))
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "in_progress", res.To)
}

func TestDispatchService_CompletionFixesActualDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)
	d := f.dispatch(t, *order)

	_, err := f.entries.AddTime(ctx, order.ID, &d.ID, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 95, HourlyRate: 60,
	})
	require.NoError(t, err)

	f.walkDispatch(t, *d, domain.DispatchStatusCompleted)

	done, err := f.dispatches.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 95, done.ActualDuration)
	assert.Equal(t, 95.0, done.Financials.LaborCost)

	res, err := f.dispatches.Transition(ctx, d.ID, service.Advance())
	require.NoError(t, err)
	assert.False(t, res.Changed, "completed is the last step")
	assert.True(t, res.Window.Next.Empty)
}

func TestDispatchService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.dispatch(t, *f.serviceOrder(t))
	f.walkDispatch(t, *d, domain.DispatchStatusEnRoute)

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	service.SetDispatchClock(f.dispatches, func() time.Time { return now })

	res, err := f.dispatches.Cancel(ctx, d.ID, "customer not home")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "en_route", res.From)
	assert.Equal(t, "cancelled", res.To)

	cancelled, err := f.dispatches.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DispatchStatusCancelled, cancelled.Status)
	assert.Equal(t, "customer not home", cancelled.CancelReason)
	assert.Contains(t, cancelled.CancelledAt, "2026-03-02")

	t.Run("cancelled dispatch has no flow", func(t *testing.T) {
		for _, req := range []service.TransitionRequest{service.Advance(), service.Retreat(), service.JumpTo("en_route")} {
			res, err := f.dispatches.Transition(ctx, d.ID, req)
			require.NoError(t, err)
			assert.False(t, res.Changed)
			assert.NotEmpty(t, res.Reason)
		}
	})

	t.Run("cancelling twice is ignored", func(t *testing.T) {
		res, err := f.dispatches.Cancel(ctx, d.ID, "again")
		require.NoError(t, err)
		assert.False(t, res.Changed)
	})

	t.Run("cancelled dispatch is read-only", func(t *testing.T) {
		_, err := f.dispatches.Update(ctx, d.ID, &domain.UpdateDispatchRequest{Priority: domain.PriorityHigh})
		assert.ErrorIs(t, err, service.ErrDispatchCancelled)

		_, err = f.entries.AddTime(ctx, cancelled.ServiceOrderID, &d.ID, &domain.CreateTimeEntryRequest{
			TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 10,
		})
		assert.ErrorIs(t, err, service.ErrDispatchCancelled)
	})

	history, err := f.dispatches.History(ctx, d.ID)
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, "cancelled", last.ToStatus)
	assert.Equal(t, "customer not home", last.Note)
}

func TestJobService_Flow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)

	scheduled := time.Now().Add(24 * time.Hour)
	job, err := f.jobs.Create(ctx, order.ID, &domain.CreateJobRequest{Title: "Replace filter", ScheduledAt: &scheduled})
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusScheduled, job.Status)

	res, err := f.jobs.Transition(ctx, job.ID, service.JumpTo("completed"))
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = f.jobs.Transition(ctx, job.ID, service.Advance())
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "in_progress", res.To)

	res, err = f.jobs.Cancel(ctx, job.ID, "part unavailable")
	require.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = f.jobs.Transition(ctx, job.ID, service.Retreat())
	require.NoError(t, err)
	assert.False(t, res.Changed)

	jobs, err := f.jobs.ListByServiceOrder(ctx, order.ID, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.JobStatusCancelled, jobs[0].Status)

	_, err = f.jobs.Create(ctx, order.ID, &domain.CreateJobRequest{Title: "Second"})
	require.NoError(t, err)
	unscheduled := domain.JobStatusUnscheduled
	jobs, err = f.jobs.ListByServiceOrder(ctx, order.ID, &unscheduled)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestDispatchService_DeleteKeepsEntriesOnOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)
	d := f.dispatch(t, *order)

	timeEntry, err := f.entries.AddTime(ctx, order.ID, &d.ID, &domain.CreateTimeEntryRequest{
		TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 60, HourlyRate: 90,
	})
	require.NoError(t, err)
	meal, err := f.entries.AddExpense(ctx, order.ID, &d.ID, &domain.CreateExpenseEntryRequest{
		TechnicianID: "tech-1", Type: domain.ExpenseTypeMeal, Amount: 25,
	})
	require.NoError(t, err)

	require.NoError(t, f.dispatches.Delete(ctx, d.ID))

	expenses, err := f.entries.ListExpenses(ctx, order.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Nil(t, expenses[0].DispatchID)

	approved, err := f.entries.ApproveExpense(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusApproved, approved.Status)

	reloaded, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, reloaded.Financials.LaborCost)
	assert.Equal(t, 25.0, reloaded.Financials.TravelCost)

	require.NoError(t, f.entries.DeleteExpense(ctx, meal.ID))
	require.NoError(t, f.entries.DeleteTime(ctx, timeEntry.ID))

	reloaded, err = f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Financials.LaborCost)
	assert.Zero(t, reloaded.Financials.TravelCost)
}

func TestDispatchService_BilledOrderLocksWork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.serviceOrder(t)
	d := f.dispatch(t, *order)
	job, err := f.jobs.Create(ctx, order.ID, &domain.CreateJobRequest{Title: "Replace filter"})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		res, err := f.orders.Transition(ctx, order.ID, service.Advance())
		require.NoError(t, err)
		require.True(t, res.Changed, res.Reason)
	}

	res, err := f.dispatches.Transition(ctx, d.ID, service.Advance())
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "pending", res.To)
	assert.Contains(t, res.Reason, "disabled")

	res, err = f.jobs.Transition(ctx, job.ID, service.JumpTo(string(domain.JobStatusScheduled)))
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Contains(t, res.Reason, "disabled")

	// back to technically_completed unlocks
	_, err = f.orders.Transition(ctx, order.ID, service.Retreat())
	require.NoError(t, err)

	res, err = f.dispatches.Transition(ctx, d.ID, service.Advance())
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "assigned", res.To)
}
