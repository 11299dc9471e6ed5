package inventory

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/shared"
)

// Batch is one recorded purchase event for a product. It carries its own
// remaining quantity and the GST rates in force when the stock was bought;
// rates never change retroactively for already-purchased stock.
type Batch struct {
	shared.BaseEntity
	ProductName       string // sentence-cased, matched case-insensitively
	Brand             string
	CompanyID         *uuid.UUID // owning company, optional
	OriginalQuantity  int64      // immutable once set
	RemainingQuantity int64      // 0 <= remaining <= original, mutated only by allocation
	UnitPrice         decimal.Decimal
	CGSTRate          decimal.Decimal // percentage
	SGSTRate          decimal.Decimal // percentage
	CESSRate          decimal.Decimal // percentage
	PurchaseDate      time.Time       // FIFO ordering key
	SupplierInvoice   string          // supplier's invoice reference, optional
}

// NewBatch creates a batch for a purchase entry line. RemainingQuantity starts
// equal to OriginalQuantity.
func NewBatch(
	productName, brand string,
	companyID *uuid.UUID,
	quantity int64,
	unitPrice, cgst, sgst, cess decimal.Decimal,
	purchaseDate time.Time,
	supplierInvoice string,
) (*Batch, error) {
	productName = NormalizeName(productName)
	if productName == "" {
		return nil, shared.NewValidationError("Product name is required")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("Quantity must not be negative")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("Unit price must not be negative")
	}
	if cgst.IsNegative() || sgst.IsNegative() || cess.IsNegative() {
		return nil, shared.NewValidationError("Tax rates must not be negative")
	}
	if purchaseDate.IsZero() {
		return nil, shared.NewValidationError("Purchase date is required")
	}

	return &Batch{
		BaseEntity:        shared.NewBaseEntity(),
		ProductName:       productName,
		Brand:             NormalizeName(brand),
		CompanyID:         companyID,
		OriginalQuantity:  quantity,
		RemainingQuantity: quantity,
		UnitPrice:         unitPrice,
		CGSTRate:          cgst,
		SGSTRate:          sgst,
		CESSRate:          cess,
		PurchaseDate:      purchaseDate,
		SupplierInvoice:   supplierInvoice,
	}, nil
}

// SoldQuantity is derived from the immutable original quantity and the current
// remaining quantity; it is never stored separately.
func (b *Batch) SoldQuantity() int64 {
	return b.OriginalQuantity - b.RemainingQuantity
}

// HasStock returns true if the batch still has unallocated quantity
func (b *Batch) HasStock() bool {
	return b.RemainingQuantity > 0
}

// Deduct reduces the remaining quantity. The amount must not exceed what is
// left; callers walk batches FIFO and only ask for min(needed, remaining).
func (b *Batch) Deduct(amount int64) error {
	if amount <= 0 {
		return shared.NewValidationError("Deduction amount must be positive")
	}
	if amount > b.RemainingQuantity {
		return shared.ErrConstraintViolation
	}
	b.RemainingQuantity -= amount
	b.UpdatedAt = time.Now()
	return nil
}

// NormalizeName converts a free-form name to sentence case, word by word.
// "blue WIDGET" becomes "Blue Widget". Product matching is case-insensitive,
// but stored names are kept in this canonical form for display.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		lower := strings.ToLower(w)
		// Slicing by rune, not byte, keeps multi-byte names intact.
		first, size := utf8.DecodeRuneInString(lower)
		words[i] = string(unicode.ToUpper(first)) + lower[size:]
	}
	return strings.Join(words, " ")
}
