package inventory

import (
	"context"
	"time"

	"github.com/gstbill/backend/internal/domain/catalog"
	"github.com/gstbill/backend/internal/domain/inventory"
)

// StockService answers stock queries for display and reports. Its numbers are
// advisory: allocation decisions re-check availability inside their own
// transaction.
type StockService struct {
	batchRepo    inventory.BatchRepository
	settingsRepo catalog.SettingsRepository
}

// NewStockService creates a StockService.
func NewStockService(batchRepo inventory.BatchRepository, settingsRepo catalog.SettingsRepository) *StockService {
	return &StockService{
		batchRepo:    batchRepo,
		settingsRepo: settingsRepo,
	}
}

// AvailableStock sums remaining quantity across the product's batches.
func (s *StockService) AvailableStock(ctx context.Context, productName string) (int64, error) {
	return s.batchRepo.AvailableStock(ctx, productName)
}

// PurchaseHistory lists batches newest purchase first, optionally filtered by
// product.
func (s *StockService) PurchaseHistory(ctx context.Context, productName string) ([]inventory.PurchaseRecord, error) {
	return s.batchRepo.PurchaseHistory(ctx, productName)
}

// LowStock lists products whose total remaining quantity is below the
// configured threshold for the current year.
func (s *StockService) LowStock(ctx context.Context) ([]inventory.ProductStock, error) {
	settings, err := s.settingsRepo.Get(ctx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	return s.batchRepo.StockBelowThreshold(ctx, settings.LowStockThreshold)
}
