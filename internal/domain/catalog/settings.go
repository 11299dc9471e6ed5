package catalog

import "github.com/gstbill/backend/internal/domain/shared"

// DefaultLowStockThreshold applies when no threshold has been configured for a
// year.
const DefaultLowStockThreshold int64 = 5

// Settings holds the per-year operational settings.
type Settings struct {
	Year              int
	LowStockThreshold int64
}

// DefaultSettings returns the settings used when a year has no stored row.
func DefaultSettings(year int) *Settings {
	return &Settings{
		Year:              year,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// NewSettings creates settings for a year.
func NewSettings(year int, lowStockThreshold int64) (*Settings, error) {
	if lowStockThreshold < 0 {
		return nil, shared.NewValidationError("Low stock threshold must not be negative")
	}
	return &Settings{
		Year:              year,
		LowStockThreshold: lowStockThreshold,
	}, nil
}
