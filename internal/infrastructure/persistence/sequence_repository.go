package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// GormSequenceRepository implements billing.SequenceRepository using GORM
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Current returns the last issued number for the year, creating the counter
// row at zero if the year has no row yet.
func (r *GormSequenceRepository) Current(ctx context.Context, year int) (int64, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.SequenceCounterModel
	err := query.First(&model, "year = ?", year).Error
	if err == nil {
		return model.LastInvoiceNumber, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	model = models.SequenceCounterModel{Year: year, LastInvoiceNumber: 0}
	// Two transactions may both miss the row; the loser of the insert race
	// just reads back zero.
	createErr := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model).Error
	if createErr != nil {
		return 0, createErr
	}
	return 0, nil
}

// Advance moves the counter from the observed value to the new one. The
// update is conditional on the stored value still being from; a lost race
// surfaces as ErrConcurrentModification with nothing written.
func (r *GormSequenceRepository) Advance(ctx context.Context, year int, from, to int64) error {
	result := r.db.WithContext(ctx).Model(&models.SequenceCounterModel{}).
		Where("year = ? AND last_invoice_number = ?", year, from).
		Update("last_invoice_number", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrentModification
	}
	return nil
}

// Ensure GormSequenceRepository implements SequenceRepository
var _ billing.SequenceRepository = (*GormSequenceRepository)(nil)
