// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"github.com/go-playground/validator/v10"
)

// PLN is the local currency all trades are priced against.
const PLN = "PLN"

// IsValidCode returns true if the code looks like an ISO 4217 currency code.
//
// Whether the currency is actually tradable is decided by the rate provider,
// not locally.
func IsValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}

	return true
}

// ValidCurrencyCode is a gin binding validator for currency code fields.
var ValidCurrencyCode validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if code, ok := fieldLevel.Field().Interface().(string); ok {
		return IsValidCode(code)
	}

	return false
}
