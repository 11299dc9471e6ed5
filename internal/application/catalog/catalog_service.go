package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/catalog"
	"github.com/gstbill/backend/internal/domain/shared"
)

// CatalogService manages the GST rate catalog and operational settings.
type CatalogService struct {
	slabRepo     catalog.GSTSlabRepository
	settingsRepo catalog.SettingsRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(slabRepo catalog.GSTSlabRepository, settingsRepo catalog.SettingsRepository) *CatalogService {
	return &CatalogService{
		slabRepo:     slabRepo,
		settingsRepo: settingsRepo,
	}
}

// AddGSTSlab adds a slab percentage to the catalog.
func (s *CatalogService) AddGSTSlab(ctx context.Context, rate decimal.Decimal) (*catalog.GSTSlab, error) {
	exists, err := s.slabRepo.Exists(ctx, rate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}
	slab, err := catalog.NewGSTSlab(rate)
	if err != nil {
		return nil, err
	}
	if err := s.slabRepo.Create(ctx, slab); err != nil {
		return nil, err
	}
	return slab, nil
}

// ListGSTSlabs returns the slab catalog.
func (s *CatalogService) ListGSTSlabs(ctx context.Context) ([]catalog.GSTSlab, error) {
	return s.slabRepo.List(ctx)
}

// SetLowStockThreshold updates the threshold for the current year.
func (s *CatalogService) SetLowStockThreshold(ctx context.Context, threshold int64) error {
	if threshold < 0 {
		return shared.NewValidationError("Low stock threshold must not be negative")
	}
	return s.settingsRepo.SetLowStockThreshold(ctx, time.Now().Year(), threshold)
}

// GetSettings returns the settings for the current year.
func (s *CatalogService) GetSettings(ctx context.Context) (*catalog.Settings, error) {
	return s.settingsRepo.Get(ctx, time.Now().Year())
}
