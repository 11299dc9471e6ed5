package partner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gstbill/backend/internal/domain/shared"
)

// Company is a supplier whose purchases create stock batches.
type Company struct {
	shared.BaseEntity
	Name      string
	GSTNumber string
	Contact   string
}

// NewCompany creates a company with a normalized name.
func NewCompany(name, gstNumber, contact string) (*Company, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, shared.NewValidationError("Company name is required")
	}
	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		GSTNumber:  gstNumber,
		Contact:    contact,
	}, nil
}

// normalizeName sentence-cases each word of a name.
func normalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		lower := strings.ToLower(w)
		// Slicing by rune, not byte, keeps multi-byte names intact.
		first, size := utf8.DecodeRuneInString(lower)
		words[i] = string(unicode.ToUpper(first)) + lower[size:]
	}
	return strings.Join(words, " ")
}
