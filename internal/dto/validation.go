package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DecimalGTZero is the "dgt0" binding rule: the decimal field must be
// strictly positive. Bound amounts are rejected before they reach the
// services, which re-check the same invariant on the domain types.
func DecimalGTZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}
