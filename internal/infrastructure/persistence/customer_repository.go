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

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create persists a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a customer by ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a customer by name, matched case-insensitively
func (r *GormCustomerRepository) FindByName(ctx context.Context, name string) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all customers ordered by name
func (r *GormCustomerRepository) List(ctx context.Context) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}
	customers := make([]partner.Customer, len(customerModels))
	for i, m := range customerModels {
		customers[i] = *m.ToDomain()
	}
	return customers, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
