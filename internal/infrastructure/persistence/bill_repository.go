package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Create persists a bill and all of its lines in one insert tree
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByInvoiceNumber loads a bill with its lines, scoped to the fiscal year
// the number was issued in
func (r *GormBillRepository) FindByInvoiceNumber(ctx context.Context, fiscalYear int, invoiceNumber int64) (*billing.Bill, error) {
	var model models.BillModel
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "fiscal_year = ? AND invoice_number = ?", fiscalYear, invoiceNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns bills in the given date range, newest first. Zero times leave
// the corresponding bound open.
func (r *GormBillRepository) List(ctx context.Context, from, to time.Time) ([]billing.Bill, error) {
	query := r.db.WithContext(ctx).Preload("Lines").Order("bill_date DESC, invoice_number DESC")
	if !from.IsZero() {
		query = query.Where("bill_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("bill_date <= ?", to)
	}

	var billModels []models.BillModel
	if err := query.Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.Bill, len(billModels))
	for i, m := range billModels {
		bills[i] = *m.ToDomain()
	}
	return bills, nil
}

// Ensure GormBillRepository implements BillRepository
var _ billing.BillRepository = (*GormBillRepository)(nil)
