package persistence

import (
	"gorm.io/gorm"

	"github.com/gstbill/backend/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for all persistence models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CompanyModel{},
		&models.CustomerModel{},
		&models.GSTSlabModel{},
		&models.SettingsModel{},
		&models.BatchModel{},
		&models.BillModel{},
		&models.BillLineModel{},
		&models.SequenceCounterModel{},
	)
}
