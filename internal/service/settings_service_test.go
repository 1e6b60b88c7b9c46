package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Patch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var notified []pdfsettings.PdfSettings
	f.settings.OnChange(func(s pdfsettings.PdfSettings) { notified = append(notified, s) })

	updated, err := f.settings.Patch(ctx, "company.name", json.RawMessage(`"Fjord Service AS"`))
	require.NoError(t, err)
	assert.Equal(t, "Fjord Service AS", updated.Company.Name)
	assert.Equal(t, "Fjord Service AS", f.settings.Get(ctx).Company.Name, "change is persisted")
	require.Len(t, notified, 1)
	assert.Equal(t, updated, notified[0])

	t.Run("unknown path", func(t *testing.T) {
		_, err := f.settings.Patch(ctx, "colors.neon", json.RawMessage(`"#FFFFFF"`))
		assert.ErrorIs(t, err, service.ErrUnknownSettingsPath)
	})

	t.Run("invalid value leaves settings untouched", func(t *testing.T) {
		_, err := f.settings.Patch(ctx, "colors.primary", json.RawMessage(`"red"`))
		assert.Error(t, err)
		assert.Equal(t, pdfsettings.Default().Colors.Primary, f.settings.Get(ctx).Colors.Primary)
	})

	t.Run("null value is rejected", func(t *testing.T) {
		_, err := f.settings.Patch(ctx, "company.name", json.RawMessage(`null`))
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.Contains(t, err.Error(), "company.name")
		assert.Equal(t, "Fjord Service AS", f.settings.Get(ctx).Company.Name)
	})

	assert.Len(t, notified, 1, "failed changes are not announced")
}

func TestSettingsService_ThemeAndReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	themed, err := f.settings.ApplyTheme(ctx, "warm")
	require.NoError(t, err)
	warm, ok := pdfsettings.LookupTheme("warm")
	require.True(t, ok)
	assert.Equal(t, warm.Primary, themed.Colors.Primary)

	_, err = f.settings.ApplyTheme(ctx, "neon")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	reset, err := f.settings.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, pdfsettings.Default(), reset)
	assert.NotEmpty(t, f.settings.Themes())
}

func TestSettingsService_ExportImport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settings.Patch(ctx, "margins.top", json.RawMessage(`25`))
	require.NoError(t, err)

	exported, err := f.settings.Export(ctx)
	require.NoError(t, err)

	other := newFixture(t)
	imported, err := other.settings.Import(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 25.0, imported.Margins.Top)
	assert.Equal(t, f.settings.Get(ctx), other.settings.Get(ctx))

	_, err = other.settings.Import(ctx, []byte(`{"margins":`))
	assert.ErrorIs(t, err, service.ErrInvalidSettingsImport)
	assert.Equal(t, 25.0, other.settings.Get(ctx).Margins.Top)
}
