// Package tradeservice manages business logic layer of trades.
package tradeservice

import (
	"context"
	"strings"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// plnScale is the persisted precision of PLN deltas. Intermediate
// amount*rate products keep full precision and are rounded once here,
// at the ledger edge.
const plnScale = 2

// Repo provides data access layer interface needed by trade service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package tradeservice
type Repo interface {
	Execute(ctx context.Context, arg domain.TradeTxParams) (domain.TradeTxResult, error)
}

// RateSource provides the external quote lookup needed by trade service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package tradeservice
type RateSource interface {
	BuySell(ctx context.Context, code string) (domain.BuySellQuote, error)
}

// Service facilitates trade service layer logic.
type Service struct {
	repo  Repo
	rates RateSource
}

// New returns trade service struct to manage trade business logic.
func New(tr Repo, rs RateSource) *Service {
	return &Service{
		repo:  tr,
		rates: rs,
	}
}

func validateOrder(code string, amountForeign decimal.Decimal) error {
	if !currencypkg.IsValidCode(code) || strings.EqualFold(code, currencypkg.PLN) {
		return domain.ErrInvalidCurrencyCode
	}

	if amountForeign.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNonPositiveAmount
	}

	return nil
}

// Buy purchases amountForeign of the given currency at the current ask rate.
//
// The PLN wallet is debited by amountForeign*ask, the foreign wallet credited
// by amountForeign, and a BUY record appended, all atomically. A failed buy
// leaves the ledger untouched.
func (s *Service) Buy(ctx context.Context, userID int64, code string, amountForeign decimal.Decimal) (domain.BuyReceipt, error) {
	l := zerolog.Ctx(ctx)

	if err := validateOrder(code, amountForeign); err != nil {
		l.Info().Err(err).Send()
		return domain.BuyReceipt{}, err
	}

	code = strings.ToUpper(code)

	quote, err := s.rates.BuySell(ctx, code)
	if err != nil {
		return domain.BuyReceipt{}, err
	}

	plnNeeded := amountForeign.Mul(quote.Ask).RoundBank(plnScale)

	arg := domain.TradeTxParams{
		UserID:         userID,
		DebitCurrency:  currencypkg.PLN,
		DebitAmount:    plnNeeded,
		CreditCurrency: code,
		CreditAmount:   amountForeign,
		Transaction: domain.CreateTransactionParams{
			UserID:       userID,
			Type:         domain.TransactionBuy,
			CurrencyCode: code,
			Amount:       amountForeign,
			Rate:         quote.Ask,
			PLNChange:    plnNeeded.Neg(),
		},
	}

	if _, err := s.repo.Execute(ctx, arg); err != nil {
		return domain.BuyReceipt{}, err
	}

	return domain.BuyReceipt{
		CurrencyCode:  code,
		AmountForeign: amountForeign,
		Rate:          quote.Ask,
		PLNSpent:      plnNeeded,
	}, nil
}

// Sell exchanges amountForeign of the given currency for PLN at the current
// bid rate. Symmetric to Buy: the foreign wallet is debited, the PLN wallet
// credited by amountForeign*bid, and a SELL record appended atomically.
func (s *Service) Sell(ctx context.Context, userID int64, code string, amountForeign decimal.Decimal) (domain.SellReceipt, error) {
	l := zerolog.Ctx(ctx)

	if err := validateOrder(code, amountForeign); err != nil {
		l.Info().Err(err).Send()
		return domain.SellReceipt{}, err
	}

	code = strings.ToUpper(code)

	quote, err := s.rates.BuySell(ctx, code)
	if err != nil {
		return domain.SellReceipt{}, err
	}

	plnReceived := amountForeign.Mul(quote.Bid).RoundBank(plnScale)

	arg := domain.TradeTxParams{
		UserID:         userID,
		DebitCurrency:  code,
		DebitAmount:    amountForeign,
		CreditCurrency: currencypkg.PLN,
		CreditAmount:   plnReceived,
		Transaction: domain.CreateTransactionParams{
			UserID:       userID,
			Type:         domain.TransactionSell,
			CurrencyCode: code,
			Amount:       amountForeign,
			Rate:         quote.Bid,
			PLNChange:    plnReceived,
		},
	}

	if _, err := s.repo.Execute(ctx, arg); err != nil {
		return domain.SellReceipt{}, err
	}

	return domain.SellReceipt{
		CurrencyCode:  code,
		AmountForeign: amountForeign,
		Rate:          quote.Bid,
		PLNReceived:   plnReceived,
	}, nil
}
