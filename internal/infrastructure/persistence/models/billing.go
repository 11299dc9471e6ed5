package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/billing"
)

// BillModel is the persistence model for the Bill aggregate.
type BillModel struct {
	BaseModel
	FiscalYear    int             `gorm:"not null;uniqueIndex:idx_bills_fiscal_invoice"`
	InvoiceNumber int64           `gorm:"not null;uniqueIndex:idx_bills_fiscal_invoice"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BillDate      time.Time       `gorm:"not null;index:idx_bills_bill_date"`
	Lines         []BillLineModel `gorm:"foreignKey:BillID;references:ID"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill aggregate.
func (m *BillModel) ToDomain() *billing.Bill {
	bill := &billing.Bill{
		BaseEntity:    m.BaseModel.ToDomain(),
		FiscalYear:    m.FiscalYear,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		TotalAmount:   m.TotalAmount,
		BillDate:      m.BillDate,
		Lines:         make([]billing.BillLine, len(m.Lines)),
	}
	for i, line := range m.Lines {
		bill.Lines[i] = *line.ToDomain()
	}
	return bill
}

// FromDomain populates the persistence model from a domain Bill aggregate.
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.FiscalYear = b.FiscalYear
	m.InvoiceNumber = b.InvoiceNumber
	m.CustomerID = b.CustomerID
	m.TotalAmount = b.TotalAmount
	m.BillDate = b.BillDate
	m.Lines = make([]BillLineModel, len(b.Lines))
	for i, line := range b.Lines {
		m.Lines[i] = *BillLineModelFromDomain(&line)
	}
}

// BillModelFromDomain creates a new persistence model from a domain Bill aggregate.
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{}
	m.FromDomain(b)
	return m
}

// BillLineModel is the persistence model for one allocated portion of a bill.
type BillLineModel struct {
	BaseModel
	BillID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CGSTRate    decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	SGSTRate    decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	CESSRate    decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	BatchID     uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (BillLineModel) TableName() string {
	return "bill_lines"
}

// ToDomain converts the persistence model to a domain BillLine entity.
func (m *BillLineModel) ToDomain() *billing.BillLine {
	return &billing.BillLine{
		BaseEntity:  m.BaseModel.ToDomain(),
		BillID:      m.BillID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		CGSTRate:    m.CGSTRate,
		SGSTRate:    m.SGSTRate,
		CESSRate:    m.CESSRate,
		BatchID:     m.BatchID,
	}
}

// BillLineModelFromDomain creates a new persistence model from a domain BillLine entity.
func BillLineModelFromDomain(l *billing.BillLine) *BillLineModel {
	m := &BillLineModel{}
	m.FromDomainBaseEntity(l.BaseEntity)
	m.BillID = l.BillID
	m.ProductName = l.ProductName
	m.Quantity = l.Quantity
	m.UnitPrice = l.UnitPrice
	m.CGSTRate = l.CGSTRate
	m.SGSTRate = l.SGSTRate
	m.CESSRate = l.CESSRate
	m.BatchID = l.BatchID
	return m
}

// SequenceCounterModel is the persistence model for per-year invoice counters.
// The year itself is the primary key; there is exactly one row per year.
type SequenceCounterModel struct {
	Year              int   `gorm:"primaryKey;autoIncrement:false"`
	LastInvoiceNumber int64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
