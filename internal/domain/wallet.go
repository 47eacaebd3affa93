package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrWalletNotFound indicates that the wallet row does not exist.
var ErrWalletNotFound = errors.New("wallet not found")

// Wallet holds user balance data for a specific currency.
type Wallet struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"-"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// Balance is a single entry of the balances listing.
type Balance struct {
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// InsufficientFundsError indicates that a wallet balance is below the
// amount a debit requires. Required and Available are denominated in the
// wallet's currency.
type InsufficientFundsError struct {
	CurrencyCode string          `json:"-"`
	Required     decimal.Decimal `json:"required"`
	Available    decimal.Decimal `json:"available"`
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s balance", e.CurrencyCode)
}
