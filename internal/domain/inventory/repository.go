package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseRecord is a read model for the purchase history report: one batch
// with its consumption to date and the owning company resolved to a name.
type PurchaseRecord struct {
	BatchID           uuid.UUID
	CompanyName       string
	Brand             string
	ProductName       string
	OriginalQuantity  int64
	RemainingQuantity int64
	SoldQuantity      int64
	UnitPrice         decimal.Decimal
	CGSTRate          decimal.Decimal
	SGSTRate          decimal.Decimal
	CESSRate          decimal.Decimal
	PurchaseDate      time.Time
	SupplierInvoice   string
}

// ProductStock is a read model for per-product stock level summaries.
type ProductStock struct {
	ProductName string
	Brand       string
	Remaining   int64
}

// BatchRepository is the durable store for purchase batches. All mutations of
// RemainingQuantity are funnelled through DecrementRemaining; nothing else may
// touch it.
type BatchRepository interface {
	// Create persists a new batch
	Create(ctx context.Context, batch *Batch) error

	// CreateAll persists several batches from one purchase-entry submission
	CreateAll(ctx context.Context, batches []*Batch) error

	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindAllocatable returns batches of the product with remaining quantity,
	// ordered purchase date ascending (ties by creation time, then ID). When
	// called inside a transaction the rows are locked until commit.
	FindAllocatable(ctx context.Context, productName string) ([]Batch, error)

	// DecrementRemaining deducts amount from a batch's remaining quantity.
	// The deduction is conditional on the stored remaining quantity still
	// covering the amount; a conflicting concurrent allocation surfaces as
	// ErrConcurrentModification and nothing is written.
	DecrementRemaining(ctx context.Context, id uuid.UUID, amount int64) error

	// AvailableStock sums remaining quantity for the product. Advisory only:
	// allocation decisions re-check inside their own transaction.
	AvailableStock(ctx context.Context, productName string) (int64, error)

	// PurchaseHistory lists batches newest purchase first, optionally filtered
	// by product name.
	PurchaseHistory(ctx context.Context, productName string) ([]PurchaseRecord, error)

	// StockBelowThreshold lists products whose total remaining quantity is
	// below the given threshold.
	StockBelowThreshold(ctx context.Context, threshold int64) ([]ProductStock, error)
}
