package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/catalog"
)

// GSTSlabModel is the persistence model for the GST rate catalog.
type GSTSlabModel struct {
	BaseModel
	Rate decimal.Decimal `gorm:"type:decimal(8,4);not null;uniqueIndex:idx_gst_slabs_rate"`
}

// TableName returns the table name for GORM
func (GSTSlabModel) TableName() string {
	return "gst_slabs"
}

// ToDomain converts the persistence model to a domain GSTSlab entity.
func (m *GSTSlabModel) ToDomain() *catalog.GSTSlab {
	return &catalog.GSTSlab{
		BaseEntity: m.BaseModel.ToDomain(),
		Rate:       m.Rate,
	}
}

// GSTSlabModelFromDomain creates a new persistence model from a domain GSTSlab entity.
func GSTSlabModelFromDomain(s *catalog.GSTSlab) *GSTSlabModel {
	m := &GSTSlabModel{}
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Rate = s.Rate
	return m
}

// SettingsModel is the persistence model for per-year settings.
// The year is the primary key, one row per year.
type SettingsModel struct {
	Year              int   `gorm:"primaryKey;autoIncrement:false"`
	LowStockThreshold int64 `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (SettingsModel) TableName() string {
	return "settings"
}

// ToDomain converts the persistence model to domain Settings.
func (m *SettingsModel) ToDomain() *catalog.Settings {
	return &catalog.Settings{
		Year:              m.Year,
		LowStockThreshold: m.LowStockThreshold,
	}
}
