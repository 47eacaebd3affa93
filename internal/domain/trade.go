package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates a zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be a positive number")
	// ErrInvalidCurrencyCode indicates a malformed currency code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
)

// TradeTxParams describes one atomic ledger mutation: an optional debit,
// a credit, and the transaction record appended with them. Either all three
// persist or none do.
type TradeTxParams struct {
	UserID         int64
	DebitCurrency  string // empty means no debit (funding)
	DebitAmount    decimal.Decimal
	CreditCurrency string
	CreditAmount   decimal.Decimal
	Transaction    CreateTransactionParams
}

// TradeTxResult is the result of the trade transaction.
type TradeTxResult struct {
	DebitWallet  Wallet      `json:"debitWallet"`
	CreditWallet Wallet      `json:"creditWallet"`
	Transaction  Transaction `json:"transaction"`
}

// BuyReceipt is returned to the client after a successful buy.
type BuyReceipt struct {
	CurrencyCode  string          `json:"currencyCode"`
	AmountForeign decimal.Decimal `json:"amountForeign"`
	Rate          decimal.Decimal `json:"rate"`
	PLNSpent      decimal.Decimal `json:"plnSpent"`
}

// SellReceipt is returned to the client after a successful sell.
type SellReceipt struct {
	CurrencyCode  string          `json:"currencyCode"`
	AmountForeign decimal.Decimal `json:"amountForeign"`
	Rate          decimal.Decimal `json:"rate"`
	PLNReceived   decimal.Decimal `json:"plnReceived"`
}

// FundReceipt is returned to the client after a successful funding.
type FundReceipt struct {
	Balance decimal.Decimal `json:"balance"`
	Funded  decimal.Decimal `json:"funded"`
}
