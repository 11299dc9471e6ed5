package partner

import (
	"context"

	"github.com/gstbill/backend/internal/domain/partner"
)

// PartnerService manages customer and company master data: plain CRUD with no
// allocation semantics.
type PartnerService struct {
	customerRepo partner.CustomerRepository
	companyRepo  partner.CompanyRepository
}

// NewPartnerService creates a PartnerService.
func NewPartnerService(customerRepo partner.CustomerRepository, companyRepo partner.CompanyRepository) *PartnerService {
	return &PartnerService{
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
	}
}

// CreateCustomer adds a customer.
func (s *PartnerService) CreateCustomer(ctx context.Context, name, address, gstNumber, contact string) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(name, address, gstNumber, contact)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers returns all customers.
func (s *PartnerService) ListCustomers(ctx context.Context) ([]partner.Customer, error) {
	return s.customerRepo.List(ctx)
}

// LookupCustomer resolves a customer by name, for bill headers and address
// display.
func (s *PartnerService) LookupCustomer(ctx context.Context, name string) (*partner.Customer, error) {
	return s.customerRepo.FindByName(ctx, name)
}

// CreateCompany adds a supplier company.
func (s *PartnerService) CreateCompany(ctx context.Context, name, gstNumber, contact string) (*partner.Company, error) {
	company, err := partner.NewCompany(name, gstNumber, contact)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies returns all companies.
func (s *PartnerService) ListCompanies(ctx context.Context) ([]partner.Company, error) {
	return s.companyRepo.List(ctx)
}
