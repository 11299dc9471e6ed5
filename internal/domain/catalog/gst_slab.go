package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/shared"
)

// GSTSlab is one entry in the GST rate catalog. At purchase-entry time the
// slab is split evenly into CGST and SGST halves.
type GSTSlab struct {
	shared.BaseEntity
	Rate decimal.Decimal // percentage
}

// NewGSTSlab creates a slab entry.
func NewGSTSlab(rate decimal.Decimal) (*GSTSlab, error) {
	if rate.IsNegative() {
		return nil, shared.NewValidationError("GST rate must not be negative")
	}
	return &GSTSlab{
		BaseEntity: shared.NewBaseEntity(),
		Rate:       rate,
	}, nil
}
