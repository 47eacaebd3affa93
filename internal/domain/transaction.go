package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
	TransactionFund = "FUND"
)

// Transaction is an immutable audit record of a single trade or funding operation.
//
// Amount is the foreign-currency or funded quantity. PLNChange is the signed
// delta applied to the PLN wallet: negative for BUY, positive for SELL and FUND.
type Transaction struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"-"`
	Type         string          `json:"type"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Rate         decimal.Decimal `json:"rate"`
	PLNChange    decimal.Decimal `json:"plnChange"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreateTransactionParams is the input data to append a transaction record.
type CreateTransactionParams struct {
	UserID       int64
	Type         string
	CurrencyCode string
	Amount       decimal.Decimal
	Rate         decimal.Decimal
	PLNChange    decimal.Decimal
}
