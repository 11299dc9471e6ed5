package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/backend/internal/domain/catalog"
	"github.com/gstbill/backend/internal/domain/shared"
)

// memorySlabRepository is an in-memory GSTSlabRepository.
type memorySlabRepository struct {
	slabs []catalog.GSTSlab
}

func (r *memorySlabRepository) Create(_ context.Context, slab *catalog.GSTSlab) error {
	r.slabs = append(r.slabs, *slab)
	return nil
}

func (r *memorySlabRepository) List(_ context.Context) ([]catalog.GSTSlab, error) {
	return r.slabs, nil
}

func (r *memorySlabRepository) Exists(_ context.Context, rate decimal.Decimal) (bool, error) {
	for _, s := range r.slabs {
		if s.Rate.Equal(rate) {
			return true, nil
		}
	}
	return false, nil
}

// memorySettingsRepository stores one threshold per year.
type memorySettingsRepository struct {
	thresholds map[int]int64
}

func (r *memorySettingsRepository) Get(_ context.Context, year int) (*catalog.Settings, error) {
	if threshold, ok := r.thresholds[year]; ok {
		return &catalog.Settings{Year: year, LowStockThreshold: threshold}, nil
	}
	return catalog.DefaultSettings(year), nil
}

func (r *memorySettingsRepository) SetLowStockThreshold(_ context.Context, year int, threshold int64) error {
	if r.thresholds == nil {
		r.thresholds = make(map[int]int64)
	}
	r.thresholds[year] = threshold
	return nil
}

func TestCatalogService_AddGSTSlab(t *testing.T) {
	ctx := context.Background()
	service := NewCatalogService(&memorySlabRepository{}, &memorySettingsRepository{})

	slab, err := service.AddGSTSlab(ctx, decimal.NewFromInt(18))
	require.NoError(t, err)
	assert.True(t, slab.Rate.Equal(decimal.NewFromInt(18)))

	t.Run("duplicate rate is rejected", func(t *testing.T) {
		_, err := service.AddGSTSlab(ctx, decimal.NewFromInt(18))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		_, err := service.AddGSTSlab(ctx, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	slabs, err := service.ListGSTSlabs(ctx)
	require.NoError(t, err)
	assert.Len(t, slabs, 1)
}

func TestCatalogService_Settings(t *testing.T) {
	ctx := context.Background()
	service := NewCatalogService(&memorySlabRepository{}, &memorySettingsRepository{})

	t.Run("defaults apply before anything is configured", func(t *testing.T) {
		settings, err := service.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultLowStockThreshold, settings.LowStockThreshold)
	})

	t.Run("threshold round-trips", func(t *testing.T) {
		require.NoError(t, service.SetLowStockThreshold(ctx, 12))

		settings, err := service.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(12), settings.LowStockThreshold)
	})

	t.Run("negative threshold is rejected", func(t *testing.T) {
		err := service.SetLowStockThreshold(ctx, -1)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}
