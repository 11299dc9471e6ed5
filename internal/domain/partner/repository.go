package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository is a simple key lookup for customer master data. It has
// no transactional coupling to the inventory or billing stores.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByName(ctx context.Context, name string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

// CompanyRepository is a simple key lookup for company master data.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
}
