package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gstbill/backend/internal/domain/catalog"
	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// GormGSTSlabRepository implements catalog.GSTSlabRepository using GORM
type GormGSTSlabRepository struct {
	db *gorm.DB
}

// NewGormGSTSlabRepository creates a new GormGSTSlabRepository
func NewGormGSTSlabRepository(db *gorm.DB) *GormGSTSlabRepository {
	return &GormGSTSlabRepository{db: db}
}

// Create persists a new GST slab
func (r *GormGSTSlabRepository) Create(ctx context.Context, slab *catalog.GSTSlab) error {
	model := models.GSTSlabModelFromDomain(slab)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// List returns all slabs ordered by rate
func (r *GormGSTSlabRepository) List(ctx context.Context) ([]catalog.GSTSlab, error) {
	var slabModels []models.GSTSlabModel
	if err := r.db.WithContext(ctx).Order("rate ASC").Find(&slabModels).Error; err != nil {
		return nil, err
	}
	slabs := make([]catalog.GSTSlab, len(slabModels))
	for i, m := range slabModels {
		slabs[i] = *m.ToDomain()
	}
	return slabs, nil
}

// Exists reports whether a slab with the given rate is already registered
func (r *GormGSTSlabRepository) Exists(ctx context.Context, rate decimal.Decimal) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GSTSlabModel{}).
		Where("rate = ?", rate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormGSTSlabRepository implements GSTSlabRepository
var _ catalog.GSTSlabRepository = (*GormGSTSlabRepository)(nil)

// GormSettingsRepository implements catalog.SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings for the year, falling back to defaults when no row
// exists
func (r *GormSettingsRepository) Get(ctx context.Context, year int) (*catalog.Settings, error) {
	var model models.SettingsModel
	err := r.db.WithContext(ctx).First(&model, "year = ?", year).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.DefaultSettings(year), nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SetLowStockThreshold upserts the threshold for the year
func (r *GormSettingsRepository) SetLowStockThreshold(ctx context.Context, year int, threshold int64) error {
	model := models.SettingsModel{Year: year, LowStockThreshold: threshold}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"low_stock_threshold", "updated_at"}),
		}).
		Create(&model).Error
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ catalog.SettingsRepository = (*GormSettingsRepository)(nil)
