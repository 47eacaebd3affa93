package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyNotFound indicates that the rate provider has no such currency.
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrRatesUnavailable indicates any other rate provider failure.
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
)

// Quote is a single mid rate for a currency.
type Quote struct {
	Code          string          `json:"code"`
	Currency      string          `json:"currency"`
	Mid           decimal.Decimal `json:"mid"`
	EffectiveDate string          `json:"effectiveDate"`
}

// BuySellQuote is a two-sided rate for a currency. Ask is the price the
// exchange sells at (applied to buys), Bid the price it buys at (sells).
type BuySellQuote struct {
	Code          string          `json:"code"`
	Bid           decimal.Decimal `json:"bid"`
	Ask           decimal.Decimal `json:"ask"`
	EffectiveDate string          `json:"effectiveDate"`
}

// RatePoint is one observation of a historical rate series.
type RatePoint struct {
	EffectiveDate string          `json:"effectiveDate"`
	Mid           decimal.Decimal `json:"mid"`
}

// RateHistory is the historical mid rate series for a currency.
type RateHistory struct {
	Code     string      `json:"code"`
	Currency string      `json:"currency"`
	Rates    []RatePoint `json:"rates"`
}

// TableRate is one row of a published rate table.
type TableRate struct {
	Code          string          `json:"code"`
	Currency      string          `json:"currency"`
	Mid           decimal.Decimal `json:"mid"`
	EffectiveDate string          `json:"effectiveDate"`
}

// RateTable is a full published table of mid rates.
type RateTable struct {
	Table         string      `json:"table"`
	No            string      `json:"no"`
	EffectiveDate string      `json:"effectiveDate"`
	Rates         []TableRate `json:"rates"`
}

// CurrencyInfo names a currency available for trading.
type CurrencyInfo struct {
	Code     string `json:"code"`
	Currency string `json:"currency"`
}
