package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// gstinPattern is the 15 character GSTIN layout: state code, PAN, entity
// number, the literal Z and a checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// SetupValidator configures the binding validator with custom tags
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gstinPattern.MatchString(fl.Field().String())
	})
}

// FormatValidationErrors turns validator errors into per-field details.
// Returns nil when err is not a validation error.
func FormatValidationErrors(err error) []dto.ValidationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]dto.ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, dto.ValidationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Must be greater than " + e.Param()
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must be at most " + e.Param()
	case "gstin":
		return "Invalid GSTIN format"
	default:
		return "Invalid value"
	}
}
