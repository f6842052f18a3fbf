package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"itapay-admin/internal/models"
	"itapay-admin/internal/views"
)

// Validator wraps the go-playground validator with the console's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// MaxResourceIDLength caps identifiers taken from the URL; the backend defines their format
const MaxResourceIDLength = 256

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("resource_id", validateResourceID)
	_ = v.RegisterValidation("customer_status_filter", validateCustomerStatusFilter)
	_ = v.RegisterValidation("decision", validateDecision)

	v.RegisterTagNameFunc(fieldName)

	return &Validator{validate: v}
}

// fieldName reports fields by the name the operator typed: query, then param, then form, then json
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"query", "param", "form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// validateResourceID accepts any non-blank backend identifier up to MaxResourceIDLength characters.
// Dot segments are refused because they would change the backend path.
func validateResourceID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if strings.TrimSpace(id) == "" || id == "." || id == ".." {
		return false
	}
	return utf8.RuneCountInString(id) <= MaxResourceIDLength
}

// validateCustomerStatusFilter accepts "all" or one of the status filter options
func validateCustomerStatusFilter(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	if status == views.StatusAll {
		return true
	}
	for _, option := range models.CustomerStatusFilterOptions {
		if status == string(option) {
			return true
		}
	}
	return false
}

// validateDecision validates an approve/reject verb
func validateDecision(fl validator.FieldLevel) bool {
	_, ok := models.ParseDecision(fl.Field().String())
	return ok
}
