package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/inventory"
)

// BatchModel is the persistence model for the Batch entity.
type BatchModel struct {
	BaseModel
	ProductName       string          `gorm:"type:varchar(200);not null;index:idx_batches_product"`
	Brand             string          `gorm:"type:varchar(200)"`
	CompanyID         *uuid.UUID      `gorm:"type:uuid;index"`
	OriginalQuantity  int64           `gorm:"not null"`
	RemainingQuantity int64           `gorm:"not null;check:remaining_quantity >= 0"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CGSTRate          decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	SGSTRate          decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	CESSRate          decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	PurchaseDate      time.Time       `gorm:"type:date;not null;index:idx_batches_purchase_date"`
	SupplierInvoice   string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (BatchModel) TableName() string {
	return "batches"
}

// ToDomain converts the persistence model to a domain Batch entity.
func (m *BatchModel) ToDomain() *inventory.Batch {
	return &inventory.Batch{
		BaseEntity:        m.BaseModel.ToDomain(),
		ProductName:       m.ProductName,
		Brand:             m.Brand,
		CompanyID:         m.CompanyID,
		OriginalQuantity:  m.OriginalQuantity,
		RemainingQuantity: m.RemainingQuantity,
		UnitPrice:         m.UnitPrice,
		CGSTRate:          m.CGSTRate,
		SGSTRate:          m.SGSTRate,
		CESSRate:          m.CESSRate,
		PurchaseDate:      m.PurchaseDate,
		SupplierInvoice:   m.SupplierInvoice,
	}
}

// FromDomain populates the persistence model from a domain Batch entity.
func (m *BatchModel) FromDomain(b *inventory.Batch) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.ProductName = b.ProductName
	m.Brand = b.Brand
	m.CompanyID = b.CompanyID
	m.OriginalQuantity = b.OriginalQuantity
	m.RemainingQuantity = b.RemainingQuantity
	m.UnitPrice = b.UnitPrice
	m.CGSTRate = b.CGSTRate
	m.SGSTRate = b.SGSTRate
	m.CESSRate = b.CESSRate
	m.PurchaseDate = b.PurchaseDate
	m.SupplierInvoice = b.SupplierInvoice
}

// BatchModelFromDomain creates a new persistence model from a domain Batch entity.
func BatchModelFromDomain(b *inventory.Batch) *BatchModel {
	m := &BatchModel{}
	m.FromDomain(b)
	return m
}
