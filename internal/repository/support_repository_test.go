package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSequenceRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)
	ctx := context.Background()

	current, err := repo.GetCurrentSequence(ctx, "OFF", 2026)
	require.NoError(t, err)
	assert.Zero(t, current)

	for want := 1; want <= 3; want++ {
		got, err := repo.GetNextNumber(ctx, "OFF", 2026)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := repo.GetNextNumber(ctx, "SO", 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "prefixes are independent")

	require.NoError(t, repo.SetSequence(ctx, "OFF", 2026, 1))
	current, err = repo.GetCurrentSequence(ctx, "OFF", 2026)
	require.NoError(t, err)
	assert.Equal(t, 3, current, "lowering a sequence is ignored")

	require.NoError(t, repo.SetSequence(ctx, "OFF", 2026, 40))
	got, err = repo.GetNextNumber(ctx, "OFF", 2026)
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	seqs, err := repo.ListSequences(ctx)
	require.NoError(t, err)
	assert.Len(t, seqs, 2)
}

func TestNumberSequenceRepository_ConcurrentCallersGetDistinctNumbers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)

	const callers = 10
	results := make(chan int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.GetNextNumber(context.Background(), "DSP", 2026)
			assert.NoError(t, err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for n := range results {
		assert.False(t, seen[n], "duplicate number %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, callers)
}

func TestSettingsRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "pdf-settings")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "pdf-settings", `{"fontFamily":"courier"}`))
	require.NoError(t, repo.Set(ctx, "pdf-settings", `{"fontFamily":"arial"}`))

	value, ok, err := repo.Get(ctx, "pdf-settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"fontFamily":"arial"}`, value)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, repo.Delete(ctx, "pdf-settings"))
	_, ok, err = repo.Get(ctx, "pdf-settings")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatusHistoryRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStatusHistoryRepository(db)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.RecordTransition(ctx, domain.EntityTypeDispatch, id, "pending", "assigned", ""))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.RecordTransition(ctx, domain.EntityTypeDispatch, id, "assigned", "acknowledged", "tech confirmed"))
	require.NoError(t, repo.RecordTransition(ctx, domain.EntityTypeJob, id, "unscheduled", "scheduled", ""))

	history, err := repo.ListByEntity(ctx, domain.EntityTypeDispatch, id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "assigned", history[0].ToStatus)

	latest, err := repo.GetLatest(ctx, domain.EntityTypeDispatch, id)
	require.NoError(t, err)
	assert.Equal(t, "acknowledged", latest.ToStatus)
	assert.Equal(t, "tech confirmed", latest.Note)

	require.NoError(t, repo.DeleteByEntity(ctx, domain.EntityTypeDispatch, id))
	history, err = repo.ListByEntity(ctx, domain.EntityTypeDispatch, id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStoredDocumentRepository_ListOlderThan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStoredDocumentRepository(db)
	ctx := context.Background()
	entityID := uuid.New()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, age := range []time.Duration{100 * 24 * time.Hour, 95 * 24 * time.Hour, time.Hour} {
		doc := &domain.StoredDocument{
			EntityType:  domain.EntityTypeOffer,
			EntityID:    entityID,
			Kind:        domain.DocumentKindPDF,
			Filename:    "OFF-2026-0001.pdf",
			ContentType: "application/pdf",
			StoragePath: "documents/" + uuid.NewString(),
			Size:        int64(100 + i),
		}
		doc.CreatedAt = now.Add(-age)
		require.NoError(t, repo.Create(ctx, doc))
	}

	old, err := repo.ListOlderThan(ctx, now.Add(-90*24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, old, 2)
	assert.Equal(t, int64(100), old[0].Size)

	limited, err := repo.ListOlderThan(ctx, now.Add(-90*24*time.Hour), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	byEntity, err := repo.ListByEntity(ctx, domain.EntityTypeOffer, entityID)
	require.NoError(t, err)
	assert.Len(t, byEntity, 3)
}
