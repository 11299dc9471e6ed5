package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/shared"
)

// Bill is one sale document. The invoice number is a fiscal-year-scoped
// sequence value assigned exactly once; the total amount is computed at
// creation and immutable afterwards.
type Bill struct {
	shared.BaseEntity
	FiscalYear    int // uniqueness scope of the invoice number
	InvoiceNumber int64
	CustomerID    uuid.UUID
	TotalAmount   decimal.Decimal // tax-inclusive
	BillDate      time.Time
	Lines         []BillLine
}

// BillLine is a ledger entry for stock sold on a bill. One requested cart line
// may produce several bill lines when the FIFO walk spans batches: each line
// records the batch it was taken from together with that batch's tax rates, so
// a sale spanning batches with different rates is accounted per portion rather
// than at any single batch's nominal rate.
type BillLine struct {
	shared.BaseEntity
	BillID      uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal // price snapshot from the cart, not the batch
	CGSTRate    decimal.Decimal
	SGSTRate    decimal.Decimal
	CESSRate    decimal.Decimal
	BatchID     uuid.UUID // batch the quantity was taken from
}

// NewBill creates a bill header. Lines are appended as allocations complete.
func NewBill(invoiceNumber int64, customerID uuid.UUID, billDate time.Time) (*Bill, error) {
	if invoiceNumber <= 0 {
		return nil, shared.NewValidationError("Invoice number must be positive")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer is required")
	}
	return &Bill{
		BaseEntity:    shared.NewBaseEntity(),
		FiscalYear:    FiscalYear(billDate),
		InvoiceNumber: invoiceNumber,
		CustomerID:    customerID,
		TotalAmount:   decimal.Zero,
		BillDate:      billDate,
		Lines:         make([]BillLine, 0),
	}, nil
}

// AddLine appends a line for one allocation tuple and accrues its
// tax-inclusive amount into the bill total. The invoice grand total applies
// CGST and SGST only; cess is recorded on the line for reporting but stays out
// of the total, matching the established billing formula.
func (b *Bill) AddLine(productName string, quantity int64, unitPrice, cgst, sgst, cess decimal.Decimal, batchID uuid.UUID) {
	line := BillLine{
		BaseEntity:  shared.NewBaseEntity(),
		BillID:      b.ID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		CGSTRate:    cgst,
		SGSTRate:    sgst,
		CESSRate:    cess,
		BatchID:     batchID,
	}
	b.Lines = append(b.Lines, line)

	base := unitPrice.Mul(decimal.NewFromInt(quantity))
	rate := cgst.Add(sgst).Div(oneHundred)
	b.TotalAmount = b.TotalAmount.Add(base.Add(base.Mul(rate)))
}

// TotalQuantityFor sums the quantities of all lines for a product; the result
// reconciles with the originally requested cart quantity.
func (b *Bill) TotalQuantityFor(productName string) int64 {
	var total int64
	for _, l := range b.Lines {
		if l.ProductName == productName {
			total += l.Quantity
		}
	}
	return total
}
