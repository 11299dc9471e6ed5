package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// GSTSlabRepository stores the GST rate catalog.
type GSTSlabRepository interface {
	Create(ctx context.Context, slab *GSTSlab) error
	List(ctx context.Context) ([]GSTSlab, error)
	Exists(ctx context.Context, rate decimal.Decimal) (bool, error)
}

// SettingsRepository stores per-year settings.
type SettingsRepository interface {
	// Get returns the settings for the year, falling back to defaults when no
	// row exists.
	Get(ctx context.Context, year int) (*Settings, error)
	// SetLowStockThreshold upserts the threshold for the year.
	SetLowStockThreshold(ctx context.Context, year int, threshold int64) error
}
