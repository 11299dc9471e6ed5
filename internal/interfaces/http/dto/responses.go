package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/inventory"
	"github.com/gstbill/backend/internal/domain/partner"
)

// PurchaseRecordResponse is one row of the purchase history report
type PurchaseRecordResponse struct {
	BatchID           uuid.UUID       `json:"batch_id"`
	CompanyName       string          `json:"company_name,omitempty"`
	ProductName       string          `json:"product_name"`
	Brand             string          `json:"brand,omitempty"`
	OriginalQuantity  int64           `json:"original_quantity"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	SoldQuantity      int64           `json:"sold_quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CGSTRate          decimal.Decimal `json:"cgst_rate"`
	SGSTRate          decimal.Decimal `json:"sgst_rate"`
	CESSRate          decimal.Decimal `json:"cess_rate"`
	PurchaseDate      string          `json:"purchase_date"`
	SupplierInvoice   string          `json:"supplier_invoice,omitempty"`
}

// NewPurchaseRecordResponse maps a purchase history read model
func NewPurchaseRecordResponse(r inventory.PurchaseRecord) PurchaseRecordResponse {
	return PurchaseRecordResponse{
		BatchID:           r.BatchID,
		CompanyName:       r.CompanyName,
		ProductName:       r.ProductName,
		Brand:             r.Brand,
		OriginalQuantity:  r.OriginalQuantity,
		RemainingQuantity: r.RemainingQuantity,
		SoldQuantity:      r.SoldQuantity,
		UnitPrice:         r.UnitPrice,
		CGSTRate:          r.CGSTRate,
		SGSTRate:          r.SGSTRate,
		CESSRate:          r.CESSRate,
		PurchaseDate:      r.PurchaseDate.Format("2006-01-02"),
		SupplierInvoice:   r.SupplierInvoice,
	}
}

// ProductStockResponse is one row of a stock level report
type ProductStockResponse struct {
	ProductName string `json:"product_name"`
	Brand       string `json:"brand,omitempty"`
	Remaining   int64  `json:"remaining"`
}

// BillLineResponse is one persisted line of a bill
type BillLineResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CGSTRate    decimal.Decimal `json:"cgst_rate"`
	SGSTRate    decimal.Decimal `json:"sgst_rate"`
	CESSRate    decimal.Decimal `json:"cess_rate"`
	BatchID     uuid.UUID       `json:"batch_id"`
}

// BillResponse is a bill with its lines
type BillResponse struct {
	FiscalYear    int                `json:"fiscal_year"`
	InvoiceNumber int64              `json:"invoice_number"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	BillDate      time.Time          `json:"bill_date"`
	Lines         []BillLineResponse `json:"lines"`
}

// NewBillResponse maps a domain bill
func NewBillResponse(b *billing.Bill) BillResponse {
	lines := make([]BillLineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = BillLineResponse{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			CGSTRate:    l.CGSTRate,
			SGSTRate:    l.SGSTRate,
			CESSRate:    l.CESSRate,
			BatchID:     l.BatchID,
		}
	}
	return BillResponse{
		FiscalYear:    b.FiscalYear,
		InvoiceNumber: b.InvoiceNumber,
		CustomerID:    b.CustomerID,
		TotalAmount:   b.TotalAmount,
		BillDate:      b.BillDate,
		Lines:         lines,
	}
}

// CustomerResponse is a customer master data record
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Contact   string    `json:"contact,omitempty"`
}

// NewCustomerResponse maps a domain customer
func NewCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		GSTNumber: c.GSTNumber,
		Contact:   c.Contact,
	}
}

// CompanyResponse is a company master data record
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Contact   string    `json:"contact,omitempty"`
}

// NewCompanyResponse maps a domain company
func NewCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		GSTNumber: c.GSTNumber,
		Contact:   c.Contact,
	}
}
