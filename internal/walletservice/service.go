// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Repo interface {
	List(ctx context.Context, userID int64) ([]domain.Balance, error)
}

// TradeExecutor applies atomic ledger mutations.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type TradeExecutor interface {
	Execute(ctx context.Context, arg domain.TradeTxParams) (domain.TradeTxResult, error)
}

// Service facilitates wallet service layer logic.
type Service struct {
	repo   Repo
	trades TradeExecutor
}

// New returns wallet service struct to manage wallet business logic.
func New(wr Repo, te TradeExecutor) *Service {
	return &Service{
		repo:   wr,
		trades: te,
	}
}

// Balances returns all wallet balances of the given user.
func (s *Service) Balances(ctx context.Context, userID int64) ([]domain.Balance, error) {
	return s.repo.List(ctx, userID)
}

// Fund credits the user's PLN wallet, creating it if absent, and appends a
// FUND record. Funding is a pure credit and cannot fail on insufficient funds.
func (s *Service) Fund(ctx context.Context, userID int64, amountPLN decimal.Decimal) (domain.FundReceipt, error) {
	l := zerolog.Ctx(ctx)

	if amountPLN.LessThanOrEqual(decimal.Zero) {
		l.Info().Err(domain.ErrNonPositiveAmount).Send()
		return domain.FundReceipt{}, domain.ErrNonPositiveAmount
	}

	arg := domain.TradeTxParams{
		UserID:         userID,
		CreditCurrency: currencypkg.PLN,
		CreditAmount:   amountPLN,
		Transaction: domain.CreateTransactionParams{
			UserID:       userID,
			Type:         domain.TransactionFund,
			CurrencyCode: currencypkg.PLN,
			Amount:       amountPLN,
			Rate:         decimal.NewFromInt(1),
			PLNChange:    amountPLN,
		},
	}

	result, err := s.trades.Execute(ctx, arg)
	if err != nil {
		return domain.FundReceipt{}, err
	}

	return domain.FundReceipt{
		Balance: result.CreditWallet.Balance,
		Funded:  amountPLN,
	}, nil
}
