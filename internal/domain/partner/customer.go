package partner

import (
	"github.com/gstbill/backend/internal/domain/shared"
)

// Customer is a buyer the shop bills. Name is stored sentence-cased and looked
// up case-insensitively; GSTNumber and Contact are free-form.
type Customer struct {
	shared.BaseEntity
	Name      string
	Address   string
	GSTNumber string
	Contact   string
}

// NewCustomer creates a customer with a normalized name.
func NewCustomer(name, address, gstNumber, contact string) (*Customer, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, shared.NewValidationError("Customer name is required")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		GSTNumber:  gstNumber,
		Contact:    contact,
	}, nil
}
