package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gstbill/backend/internal/domain/partner"
	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements partner.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create persists a new company
func (r *GormCompanyRepository) Create(ctx context.Context, company *partner.Company) error {
	model := models.CompanyModelFromDomain(company)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a company by name, matched case-insensitively
func (r *GormCompanyRepository) FindByName(ctx context.Context, name string) (*partner.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all companies ordered by name
func (r *GormCompanyRepository) List(ctx context.Context) ([]partner.Company, error) {
	var companyModels []models.CompanyModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&companyModels).Error; err != nil {
		return nil, err
	}
	companies := make([]partner.Company, len(companyModels))
	for i, m := range companyModels {
		companies[i] = *m.ToDomain()
	}
	return companies, nil
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ partner.CompanyRepository = (*GormCompanyRepository)(nil)
