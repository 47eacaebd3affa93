// Package web defines common components for a web application.
package web

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
	Details               any       `json:"details,omitempty"`
}

// Error wraps the given err into a json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for the first validation error.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field.Field(), field.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s", field.Field(), field.Param())
	case "email":
		return field.Field() + " must be a valid email address"
	case "currency_code":
		return field.Field() + " is not a valid currency code"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field.Field(), field.Param())
	}

	return field.Field() + " is invalid"
}
