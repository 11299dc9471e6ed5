package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLineInput is one product line of a purchase-entry submission. The
// GST slab is split evenly into CGST and SGST at entry time; cess is entered
// independently.
type PurchaseLineInput struct {
	ProductName string
	Brand       string
	Quantity    int64
	UnitPrice   decimal.Decimal
	GSTSlab     decimal.Decimal
	CESSRate    decimal.Decimal
}

// PurchaseInput is one purchase-entry submission: a supplier invoice covering
// one or more product lines, each of which becomes its own batch.
type PurchaseInput struct {
	CompanyName     string // optional
	SupplierInvoice string // optional
	PurchaseDate    time.Time
	Lines           []PurchaseLineInput
}

// PurchaseResult reports the batches created for one submission.
type PurchaseResult struct {
	BatchIDs []uuid.UUID
}
