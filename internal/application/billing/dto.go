package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one quoted line of a sale draft: product, quantity and the unit
// price the customer was quoted at cart-build time. The price is a snapshot;
// it does not track later batch price changes.
type CartLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Cart is a sale draft decoupled from any presentation state.
type Cart struct {
	CustomerName string
	Lines        []CartLine
}

// BillLineResult reports one persisted bill line (one allocation tuple).
type BillLineResult struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CGSTRate    decimal.Decimal `json:"cgst_rate"`
	SGSTRate    decimal.Decimal `json:"sgst_rate"`
	CESSRate    decimal.Decimal `json:"cess_rate"`
}

// BillResult is the outcome of a committed bill generation.
type BillResult struct {
	InvoiceNumber int64            `json:"invoice_number"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	BillDate      time.Time        `json:"bill_date"`
	Lines         []BillLineResult `json:"lines"`
}
