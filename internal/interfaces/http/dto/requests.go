package dto

import "github.com/shopspring/decimal"

// PurchaseLineRequest is one product line of a purchase entry
type PurchaseLineRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Brand       string          `json:"brand"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	GSTSlab     decimal.Decimal `json:"gst_slab"`
	CESSRate    decimal.Decimal `json:"cess_rate"`
}

// PurchaseRequest records one supplier invoice worth of stock
type PurchaseRequest struct {
	CompanyName     string                `json:"company_name"`
	SupplierInvoice string                `json:"supplier_invoice"`
	PurchaseDate    string                `json:"purchase_date" binding:"required"` // YYYY-MM-DD
	Lines           []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CartLineRequest is one quoted line of a sale
type CartLineRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// GenerateBillRequest submits a cart for billing
type GenerateBillRequest struct {
	CustomerName string            `json:"customer_name" binding:"required"`
	Lines        []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateCustomerRequest adds a customer
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	GSTNumber string `json:"gst_number" binding:"omitempty,gstin"`
	Contact   string `json:"contact"`
}

// CreateCompanyRequest adds a supplier company
type CreateCompanyRequest struct {
	Name      string `json:"name" binding:"required"`
	GSTNumber string `json:"gst_number" binding:"omitempty,gstin"`
	Contact   string `json:"contact"`
}

// CreateGSTSlabRequest adds a rate to the slab catalog
type CreateGSTSlabRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// SetLowStockThresholdRequest updates the low stock threshold
type SetLowStockThresholdRequest struct {
	Threshold int64 `json:"threshold" binding:"min=0"`
}
