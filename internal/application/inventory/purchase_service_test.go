package inventory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/backend/internal/domain/inventory"
	"github.com/gstbill/backend/internal/domain/partner"
	"github.com/gstbill/backend/internal/domain/shared"
)

// memoryBatchRepository is an in-memory BatchRepository for service tests.
type memoryBatchRepository struct {
	batches map[uuid.UUID]*inventory.Batch
}

func newMemoryBatchRepository() *memoryBatchRepository {
	return &memoryBatchRepository{batches: make(map[uuid.UUID]*inventory.Batch)}
}

func (r *memoryBatchRepository) Create(_ context.Context, batch *inventory.Batch) error {
	copied := *batch
	r.batches[batch.ID] = &copied
	return nil
}

func (r *memoryBatchRepository) CreateAll(ctx context.Context, batches []*inventory.Batch) error {
	for _, b := range batches {
		if err := r.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryBatchRepository) FindByID(_ context.Context, id uuid.UUID) (*inventory.Batch, error) {
	b, ok := r.batches[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryBatchRepository) FindAllocatable(_ context.Context, productName string) ([]inventory.Batch, error) {
	var result []inventory.Batch
	for _, b := range r.batches {
		if strings.EqualFold(b.ProductName, productName) && b.HasStock() {
			result = append(result, *b)
		}
	}
	inventory.SortBatchesFIFO(result)
	return result, nil
}

func (r *memoryBatchRepository) DecrementRemaining(_ context.Context, id uuid.UUID, amount int64) error {
	b, ok := r.batches[id]
	if !ok {
		return shared.ErrNotFound
	}
	if b.RemainingQuantity < amount {
		return shared.ErrConcurrentModification
	}
	b.RemainingQuantity -= amount
	return nil
}

func (r *memoryBatchRepository) AvailableStock(_ context.Context, productName string) (int64, error) {
	var total int64
	for _, b := range r.batches {
		if strings.EqualFold(b.ProductName, productName) {
			total += b.RemainingQuantity
		}
	}
	return total, nil
}

func (r *memoryBatchRepository) PurchaseHistory(_ context.Context, productName string) ([]inventory.PurchaseRecord, error) {
	var records []inventory.PurchaseRecord
	for _, b := range r.batches {
		if productName != "" && !strings.EqualFold(b.ProductName, productName) {
			continue
		}
		records = append(records, inventory.PurchaseRecord{
			BatchID:           b.ID,
			ProductName:       b.ProductName,
			Brand:             b.Brand,
			OriginalQuantity:  b.OriginalQuantity,
			RemainingQuantity: b.RemainingQuantity,
			SoldQuantity:      b.SoldQuantity(),
			UnitPrice:         b.UnitPrice,
			CGSTRate:          b.CGSTRate,
			SGSTRate:          b.SGSTRate,
			CESSRate:          b.CESSRate,
			PurchaseDate:      b.PurchaseDate,
			SupplierInvoice:   b.SupplierInvoice,
		})
	}
	return records, nil
}

func (r *memoryBatchRepository) StockBelowThreshold(_ context.Context, threshold int64) ([]inventory.ProductStock, error) {
	totals := make(map[string]int64)
	for _, b := range r.batches {
		totals[b.ProductName] += b.RemainingQuantity
	}
	var rows []inventory.ProductStock
	for name, remaining := range totals {
		if remaining < threshold {
			rows = append(rows, inventory.ProductStock{ProductName: name, Remaining: remaining})
		}
	}
	return rows, nil
}

var _ inventory.BatchRepository = (*memoryBatchRepository)(nil)

// memoryCompanyRepository holds a fixed set of companies.
type memoryCompanyRepository struct {
	companies []*partner.Company
}

func (r *memoryCompanyRepository) Create(_ context.Context, company *partner.Company) error {
	r.companies = append(r.companies, company)
	return nil
}

func (r *memoryCompanyRepository) FindByID(_ context.Context, id uuid.UUID) (*partner.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCompanyRepository) FindByName(_ context.Context, name string) (*partner.Company, error) {
	for _, c := range r.companies {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCompanyRepository) List(_ context.Context) ([]partner.Company, error) {
	result := make([]partner.Company, len(r.companies))
	for i, c := range r.companies {
		result[i] = *c
	}
	return result, nil
}

func TestPurchaseService_RecordPurchase(t *testing.T) {
	ctx := context.Background()
	purchaseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	newService := func(t *testing.T) (*PurchaseService, *memoryBatchRepository, *partner.Company) {
		t.Helper()
		batchRepo := newMemoryBatchRepository()
		company, err := partner.NewCompany("Acme Traders", "", "")
		require.NoError(t, err)
		companyRepo := &memoryCompanyRepository{companies: []*partner.Company{company}}
		service := NewPurchaseService(NewNoOpTransactionScope(batchRepo), companyRepo, nil)
		return service, batchRepo, company
	}

	t.Run("creates one batch per line with the slab split in half", func(t *testing.T) {
		service, batchRepo, company := newService(t)

		result, err := service.RecordPurchase(ctx, PurchaseInput{
			CompanyName:     "acme traders",
			SupplierInvoice: "INV-042",
			PurchaseDate:    purchaseDate,
			Lines: []PurchaseLineInput{
				{ProductName: "blue widget", Quantity: 10, UnitPrice: decimal.NewFromInt(100), GSTSlab: decimal.NewFromInt(18)},
				{ProductName: "Gadget", Brand: "acme", Quantity: 4, UnitPrice: decimal.NewFromInt(50), GSTSlab: decimal.NewFromInt(5), CESSRate: decimal.NewFromInt(1)},
			},
		})
		require.NoError(t, err)
		require.Len(t, result.BatchIDs, 2)

		first, err := batchRepo.FindByID(ctx, result.BatchIDs[0])
		require.NoError(t, err)
		assert.Equal(t, "Blue Widget", first.ProductName)
		assert.Equal(t, int64(10), first.RemainingQuantity)
		assert.True(t, first.CGSTRate.Equal(decimal.NewFromInt(9)))
		assert.True(t, first.SGSTRate.Equal(decimal.NewFromInt(9)))
		assert.Equal(t, &company.ID, first.CompanyID)
		assert.Equal(t, "INV-042", first.SupplierInvoice)

		second, err := batchRepo.FindByID(ctx, result.BatchIDs[1])
		require.NoError(t, err)
		assert.True(t, second.CGSTRate.Equal(decimal.RequireFromString("2.5")))
		assert.True(t, second.SGSTRate.Equal(decimal.RequireFromString("2.5")))
		assert.True(t, second.CESSRate.Equal(decimal.NewFromInt(1)))
	})

	t.Run("company is optional", func(t *testing.T) {
		service, batchRepo, _ := newService(t)

		result, err := service.RecordPurchase(ctx, PurchaseInput{
			PurchaseDate: purchaseDate,
			Lines: []PurchaseLineInput{
				{ProductName: "Widget", Quantity: 5, UnitPrice: decimal.NewFromInt(10), GSTSlab: decimal.NewFromInt(12)},
			},
		})
		require.NoError(t, err)

		batch, err := batchRepo.FindByID(ctx, result.BatchIDs[0])
		require.NoError(t, err)
		assert.Nil(t, batch.CompanyID)
	})

	t.Run("unknown company fails the whole submission", func(t *testing.T) {
		service, batchRepo, _ := newService(t)

		_, err := service.RecordPurchase(ctx, PurchaseInput{
			CompanyName:  "Nobody",
			PurchaseDate: purchaseDate,
			Lines: []PurchaseLineInput{
				{ProductName: "Widget", Quantity: 5, UnitPrice: decimal.NewFromInt(10), GSTSlab: decimal.NewFromInt(12)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Empty(t, batchRepo.batches)
	})

	t.Run("an invalid line fails before anything is stored", func(t *testing.T) {
		service, batchRepo, _ := newService(t)

		_, err := service.RecordPurchase(ctx, PurchaseInput{
			PurchaseDate: purchaseDate,
			Lines: []PurchaseLineInput{
				{ProductName: "Widget", Quantity: 5, UnitPrice: decimal.NewFromInt(10), GSTSlab: decimal.NewFromInt(12)},
				{ProductName: "", Quantity: 1, UnitPrice: decimal.NewFromInt(10), GSTSlab: decimal.NewFromInt(12)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Empty(t, batchRepo.batches)
	})

	t.Run("rejects an empty submission", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.RecordPurchase(ctx, PurchaseInput{PurchaseDate: purchaseDate})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}
