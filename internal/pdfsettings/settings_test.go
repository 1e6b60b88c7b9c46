package pdfsettings_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, pdfsettings.Default().Validate())
	assert.Equal(t, pdfsettings.Default(), pdfsettings.Default())
}

// =============================================================================
// Update
// =============================================================================

func TestUpdate_Leaf(t *testing.T) {
	orig := pdfsettings.Default()

	updated, err := pdfsettings.Update(orig, "colors.primary", "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", updated.Colors.Primary)
	assert.Equal(t, "#1E40AF", orig.Colors.Primary, "input must not be modified")
	assert.Equal(t, orig.Colors.Secondary, updated.Colors.Secondary)

	updated, err = pdfsettings.Update(updated, "showElements.notes", false)
	require.NoError(t, err)
	assert.False(t, updated.ShowElements.Notes)
	assert.True(t, orig.ShowElements.Notes)

	updated, err = pdfsettings.Update(updated, "fontSize.base", 11.5)
	require.NoError(t, err)
	assert.Equal(t, 11.5, updated.FontSize.Base)
}

func TestUpdate_RawJSON(t *testing.T) {
	updated, err := pdfsettings.Update(pdfsettings.Default(), "company.name", json.RawMessage(`"Acme Service AS"`))
	require.NoError(t, err)
	assert.Equal(t, "Acme Service AS", updated.Company.Name)
}

func TestUpdate_SectionMergesOverCurrent(t *testing.T) {
	orig := pdfsettings.Default()

	updated, err := pdfsettings.Update(orig, "margins", json.RawMessage(`{"top": 30}`))
	require.NoError(t, err)
	assert.Equal(t, 30.0, updated.Margins.Top)
	assert.Equal(t, orig.Margins.Left, updated.Margins.Left)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		want  error
	}{
		{"unknown path", "colors.nope", "#000000", pdfsettings.ErrUnknownPath},
		{"unknown section", "layout", 1, pdfsettings.ErrUnknownPath},
		{"wrong type", "fontSize.base", "large", pdfsettings.ErrInvalidValue},
		{"bool into string", "colors.primary", true, pdfsettings.ErrInvalidValue},
		{"unknown key in section", "margins", json.RawMessage(`{"inner": 3}`), pdfsettings.ErrInvalidValue},
		{"fails validation", "colors.accent", "blue", pdfsettings.ErrInvalidValue},
		{"bad paper size", "document.paperSize", "A0", pdfsettings.ErrInvalidValue},
		{"nil value", "colors.primary", nil, pdfsettings.ErrInvalidValue},
		{"null section", "margins", json.RawMessage(`null`), pdfsettings.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := pdfsettings.Default()
			got, err := pdfsettings.Update(orig, tt.path, tt.value)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, orig, got)
		})
	}
}

func TestPaths(t *testing.T) {
	assert.True(t, pdfsettings.IsPath("colors"))
	assert.True(t, pdfsettings.IsPath("table.showDiscount"))
	assert.True(t, pdfsettings.IsPath("document.dateFormat"))
	assert.False(t, pdfsettings.IsPath("colors.primary.value"))
	assert.Contains(t, pdfsettings.Paths(), "showElements.itemsTable")

	v, err := pdfsettings.Get(pdfsettings.Default(), "document.currencySymbol")
	require.NoError(t, err)
	assert.Equal(t, "€", v)
}

// =============================================================================
// Themes
// =============================================================================

func TestApplyTheme(t *testing.T) {
	orig := pdfsettings.Default()

	themed, err := pdfsettings.ApplyTheme(orig, "nature")
	require.NoError(t, err)

	theme, ok := pdfsettings.LookupTheme("nature")
	require.True(t, ok)
	assert.Equal(t, theme.Primary, themed.Colors.Primary)
	assert.Equal(t, theme.Secondary, themed.Colors.Secondary)
	assert.Equal(t, theme.Accent, themed.Colors.Accent)

	// everything else untouched
	themed.Colors.Primary = orig.Colors.Primary
	themed.Colors.Secondary = orig.Colors.Secondary
	themed.Colors.Accent = orig.Colors.Accent
	assert.Equal(t, orig, themed)

	_, err = pdfsettings.ApplyTheme(orig, "neon")
	assert.ErrorIs(t, err, pdfsettings.ErrUnknownTheme)
}

func TestThemes_AreValidColors(t *testing.T) {
	for _, theme := range pdfsettings.Themes() {
		assert.NoError(t, pdfsettings.WithTheme(pdfsettings.Default(), theme).Validate(), theme.Name)
	}
}

// =============================================================================
// Codec
// =============================================================================

func TestRoundTrip(t *testing.T) {
	s := pdfsettings.Default()
	s.Company.Name = "Nordic HVAC"
	s.Table.ShowDiscount = false
	s.Advanced.Watermark = true

	data, err := pdfsettings.Marshal(s)
	require.NoError(t, err)

	got, err := pdfsettings.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUnmarshal_PartialMergesOverDefaults(t *testing.T) {
	got, err := pdfsettings.Unmarshal([]byte(`{"colors":{"primary":"#000000"},"showElements":{"footer":false},"futureField":1}`))
	require.NoError(t, err)

	want := pdfsettings.Default()
	want.Colors.Primary = "#000000"
	want.ShowElements.Footer = false
	assert.Equal(t, want, got)
}

func TestUnmarshal_Malformed(t *testing.T) {
	got, err := pdfsettings.Unmarshal([]byte(`{"colors":`))
	assert.Error(t, err)
	assert.Equal(t, pdfsettings.Default(), got)
}

// =============================================================================
// Store
// =============================================================================

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("unavailable")
}

func TestLoad_ToleratesBadStoredValues(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	store := pdfsettings.NewMemoryStore()
	assert.Equal(t, pdfsettings.Default(), pdfsettings.Load(ctx, store, "missing", logger))

	require.NoError(t, store.Set(ctx, "broken", "not json"))
	assert.Equal(t, pdfsettings.Default(), pdfsettings.Load(ctx, store, "broken", logger))

	require.NoError(t, store.Set(ctx, "invalid", `{"fontSize":{"base":-1}}`))
	assert.Equal(t, pdfsettings.Default(), pdfsettings.Load(ctx, store, "invalid", logger))

	assert.Equal(t, pdfsettings.Default(), pdfsettings.Load(ctx, failingStore{}, "any", logger))
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := pdfsettings.NewMemoryStore()

	s, err := pdfsettings.ApplyTheme(pdfsettings.Default(), "warm")
	require.NoError(t, err)
	require.NoError(t, pdfsettings.Save(ctx, store, pdfsettings.DefaultKey, s))

	assert.Equal(t, s, pdfsettings.Load(ctx, store, pdfsettings.DefaultKey, zap.NewNop()))
}

func TestSave_WrapsStoreFailure(t *testing.T) {
	err := pdfsettings.Save(context.Background(), failingStore{}, "k", pdfsettings.Default())
	var ext *domain.ExternalServiceError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, "settings-store", ext.Service)
}

func TestRedisStore_UnreachableFallsBackToDefaults(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := pdfsettings.NewRedisStore(client, "test:")
	ctx := context.Background()

	_, _, err := store.Get(ctx, pdfsettings.DefaultKey)
	assert.Error(t, err)
	assert.Equal(t, pdfsettings.Default(), pdfsettings.Load(ctx, store, pdfsettings.DefaultKey, zap.NewNop()))
	assert.Error(t, pdfsettings.Save(ctx, store, pdfsettings.DefaultKey, pdfsettings.Default()))
}

func TestRGB(t *testing.T) {
	r, g, b := pdfsettings.RGB("#1E40AF")
	assert.Equal(t, []int{30, 64, 175}, []int{r, g, b})

	r, g, b = pdfsettings.RGB("blue")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
