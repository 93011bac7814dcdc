package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("tolerance_fraction", validateToleranceFraction)
	_ = v.RegisterValidation("settlement_number", validateSettlementNumber)
	_ = v.RegisterValidation("settlement_status", validateSettlementStatus)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMoneyAmount validates that a string is a decimal amount with at most
// 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return amount.Exponent() >= -2
}

// validateToleranceFraction validates that a tolerance is a fraction in [0, 1]
func validateToleranceFraction(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		value := fl.Field().Float()
		return value >= 0 && value <= 1
	default:
		return false
	}
}

// validateSettlementNumber validates the display identifier format,
// e.g. SETT-20260214-9F3A1C
func validateSettlementNumber(fl validator.FieldLevel) bool {
	settlementNumber := fl.Field().String()
	if settlementNumber == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^SETT-\d{8}-[0-9A-F]{6}$`, settlementNumber)
	return matched
}

// validateSettlementStatus validates that a status is one of the allowed values
func validateSettlementStatus(fl validator.FieldLevel) bool {
	status := strings.ToUpper(fl.Field().String())
	validStatuses := map[string]bool{
		"RECONCILED":  true,
		"DISCREPANCY": true,
	}
	return validStatuses[status]
}
