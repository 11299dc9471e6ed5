package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gstbill/backend/internal/domain/inventory"
	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// GormBatchRepository implements inventory.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Create persists a new batch
func (r *GormBatchRepository) Create(ctx context.Context, batch *inventory.Batch) error {
	model := models.BatchModelFromDomain(batch)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// CreateAll persists several batches from one purchase-entry submission
func (r *GormBatchRepository) CreateAll(ctx context.Context, batches []*inventory.Batch) error {
	if len(batches) == 0 {
		return nil
	}
	batchModels := make([]models.BatchModel, len(batches))
	for i, b := range batches {
		batchModels[i] = *models.BatchModelFromDomain(b)
	}
	return r.db.WithContext(ctx).Create(&batchModels).Error
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllocatable returns batches of the product with remaining quantity in
// consumption order: purchase date ascending, creation time and ID as
// tie-breaks so the order is a total one.
func (r *GormBatchRepository) FindAllocatable(ctx context.Context, productName string) ([]inventory.Batch, error) {
	var batchModels []models.BatchModel

	query := r.db.WithContext(ctx).
		Where("LOWER(product_name) = LOWER(?)", productName).
		Where("remaining_quantity > 0").
		Order("purchase_date ASC, created_at ASC, id ASC")

	// SQLite has no row locks; the conditional decrement still guards
	// correctness there, the lock just shrinks the retry window on Postgres.
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.Find(&batchModels).Error; err != nil {
		return nil, err
	}

	batches := make([]inventory.Batch, len(batchModels))
	for i, m := range batchModels {
		batches[i] = *m.ToDomain()
	}
	return batches, nil
}

// DecrementRemaining deducts amount from a batch's remaining quantity. The
// WHERE clause re-checks availability so a concurrent allocation that drained
// the batch first turns into ErrConcurrentModification instead of a negative
// quantity.
func (r *GormBatchRepository) DecrementRemaining(ctx context.Context, id uuid.UUID, amount int64) error {
	if amount <= 0 {
		return shared.NewValidationError("Deduction amount must be positive")
	}

	result := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Where("id = ? AND remaining_quantity >= ?", id, amount).
		Update("remaining_quantity", gorm.Expr("remaining_quantity - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the batch vanished or another transaction took the stock.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.BatchModel{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrentModification
	}
	return nil
}

// AvailableStock sums remaining quantity for the product
func (r *GormBatchRepository) AvailableStock(ctx context.Context, productName string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Where("LOWER(product_name) = LOWER(?)", productName).
		Select("COALESCE(SUM(remaining_quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// PurchaseHistory lists batches newest purchase first, optionally filtered by
// product name. Company names are resolved through a LEFT JOIN so batches
// without an owning company still appear.
func (r *GormBatchRepository) PurchaseHistory(ctx context.Context, productName string) ([]inventory.PurchaseRecord, error) {
	type purchaseRow struct {
		models.BatchModel
		CompanyName string
	}

	query := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Select("batches.*, COALESCE(companies.name, '') AS company_name").
		Joins("LEFT JOIN companies ON companies.id = batches.company_id").
		Order("batches.purchase_date DESC, batches.created_at DESC")
	if productName != "" {
		query = query.Where("LOWER(batches.product_name) = LOWER(?)", productName)
	}

	var rows []purchaseRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]inventory.PurchaseRecord, len(rows))
	for i, row := range rows {
		records[i] = inventory.PurchaseRecord{
			BatchID:           row.ID,
			CompanyName:       row.CompanyName,
			Brand:             row.Brand,
			ProductName:       row.ProductName,
			OriginalQuantity:  row.OriginalQuantity,
			RemainingQuantity: row.RemainingQuantity,
			SoldQuantity:      row.OriginalQuantity - row.RemainingQuantity,
			UnitPrice:         row.UnitPrice,
			CGSTRate:          row.CGSTRate,
			SGSTRate:          row.SGSTRate,
			CESSRate:          row.CESSRate,
			PurchaseDate:      row.PurchaseDate,
			SupplierInvoice:   row.SupplierInvoice,
		}
	}
	return records, nil
}

// StockBelowThreshold lists products whose total remaining quantity is below
// the given threshold
func (r *GormBatchRepository) StockBelowThreshold(ctx context.Context, threshold int64) ([]inventory.ProductStock, error) {
	var rows []inventory.ProductStock
	err := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Select("product_name, MAX(brand) AS brand, COALESCE(SUM(remaining_quantity), 0) AS remaining").
		Group("product_name").
		Having("COALESCE(SUM(remaining_quantity), 0) < ?", threshold).
		Order("product_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Ensure GormBatchRepository implements BatchRepository
var _ inventory.BatchRepository = (*GormBatchRepository)(nil)
