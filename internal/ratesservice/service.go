// Package ratesservice manages business logic layer of exchange rates.
package ratesservice

import (
	"context"

	"github.com/go-kantor/kantor/internal/domain"
)

// RateSource provides the external rate lookups needed by rates service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ratesservice
type RateSource interface {
	Mid(ctx context.Context, code string) (domain.Quote, error)
	BuySell(ctx context.Context, code string) (domain.BuySellQuote, error)
	History(ctx context.Context, code string, days int) (domain.RateHistory, error)
	Table(ctx context.Context) (domain.RateTable, error)
	Currencies(ctx context.Context) ([]domain.CurrencyInfo, error)
}

// Service facilitates rates service layer logic.
type Service struct {
	rates RateSource
}

// New returns rates service struct to manage rates business logic.
func New(rs RateSource) *Service {
	return &Service{rates: rs}
}

// Current returns the current mid quote for the given currency code.
func (s *Service) Current(ctx context.Context, code string) (domain.Quote, error) {
	return s.rates.Mid(ctx, code)
}

// Table returns the full current table of mid rates.
func (s *Service) Table(ctx context.Context) (domain.RateTable, error) {
	return s.rates.Table(ctx)
}

// History returns the mid rate series of the last days observations.
func (s *Service) History(ctx context.Context, code string, days int) (domain.RateHistory, error) {
	return s.rates.History(ctx, code, days)
}

// BuySell returns the current bid and ask quote for the given currency code.
func (s *Service) BuySell(ctx context.Context, code string) (domain.BuySellQuote, error) {
	return s.rates.BuySell(ctx, code)
}

// Available returns the currencies tradable with bid and ask rates.
func (s *Service) Available(ctx context.Context) ([]domain.CurrencyInfo, error) {
	return s.rates.Currencies(ctx)
}
