// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// decimalHundred is the percentage conversion factor for rate fields.
func decimalHundred() decimal.Decimal {
	return decimal.NewFromInt(100)
}
