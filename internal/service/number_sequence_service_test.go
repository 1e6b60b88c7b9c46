package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		prefix   string
		year     int
		seq      int
		expected string
	}{
		{service.PrefixOffer, 2026, 1, "OFF-2026-0001"},
		{service.PrefixServiceOrder, 2026, 42, "SO-2026-0042"},
		{service.PrefixDispatch, 2025, 12345, "DSP-2025-12345"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			result := service.FormatNumber(tc.prefix, tc.year, tc.seq)
			if result != tc.expected {
				t.Errorf("FormatNumber(%q, %d, %d) = %q, want %q", tc.prefix, tc.year, tc.seq, result, tc.expected)
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		number   string
		expected bool
	}{
		{"OFF-2026-0001", true},
		{"SO-2026-0042", true},
		{"SAL-2026-10000", true},
		{"off-2026-0001", false},
		{"OFF-26-0001", false},
		{"OFF-2026-1", false},
		{"OFFER-2026-0001", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.number, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.ValidateNumber(tc.number))
		})
	}
}

func TestNumberSequenceService_Generate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	year := 2026
	service.SetNumberClock(f.numbers, func() time.Time { return time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC) })

	first, err := f.numbers.Generate(ctx, service.PrefixOffer)
	require.NoError(t, err)
	second, err := f.numbers.Generate(ctx, service.PrefixOffer)
	require.NoError(t, err)
	assert.Equal(t, "OFF-2026-0001", first)
	assert.Equal(t, "OFF-2026-0002", second)

	t.Run("prefixes count independently", func(t *testing.T) {
		so, err := f.numbers.Generate(ctx, service.PrefixServiceOrder)
		require.NoError(t, err)
		assert.Equal(t, "SO-2026-0001", so)
	})

	t.Run("counter restarts each year", func(t *testing.T) {
		year = 2027
		next, err := f.numbers.Generate(ctx, service.PrefixOffer)
		require.NoError(t, err)
		assert.Equal(t, "OFF-2027-0001", next)
	})

	t.Run("initialize raises the counter", func(t *testing.T) {
		require.NoError(t, f.numbers.InitializeSequence(ctx, service.PrefixSale, 2027, 99))
		current, err := f.numbers.GetCurrentSequence(ctx, service.PrefixSale, 2027)
		require.NoError(t, err)
		assert.Equal(t, 99, current)

		next, err := f.numbers.Generate(ctx, service.PrefixSale)
		require.NoError(t, err)
		assert.Equal(t, "SAL-2027-0100", next)
	})
}
