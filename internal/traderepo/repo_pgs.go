// Package traderepo executes atomic ledger mutations for trades and funding.
package traderepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/transactionrepo"
	"github.com/go-kantor/kantor/internal/walletrepo"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates trade repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns trade RepoPGS with a connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: conn,
	}
}

// Execute applies one trade or funding operation to the ledger.
//
// It debits one wallet, credits another, and appends the transaction record
// within a single database transaction. A crash or cancellation mid-operation
// must not leave a balance change without its paired record, so any failure
// rolls back everything.
func (r *RepoPGS) Execute(ctx context.Context, arg domain.TradeTxParams) (domain.TradeTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TradeTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	walletRepo := walletrepo.NewRepoPGS(tx)
	transactionRepo := transactionrepo.NewRepoPGS(tx)

	if arg.DebitCurrency == "" {
		result.CreditWallet, err = walletRepo.Credit(ctx, arg.UserID, arg.CreditCurrency, arg.CreditAmount)
	} else {
		result.DebitWallet, result.CreditWallet, err = r.moveBalances(ctx, walletRepo, arg)
	}

	if err != nil {
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return result, err
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	result.Transaction, err = transactionRepo.Create(ctx, arg.Transaction)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// moveBalances debits one wallet and credits the other.
//
// To avoid deadlocks between concurrent buys and sells on the same pair,
// statements execute in consistent currency code order.
func (r *RepoPGS) moveBalances(ctx context.Context, wr *walletrepo.RepoPGS, arg domain.TradeTxParams) (domain.Wallet, domain.Wallet, error) {
	var debited, credited domain.Wallet

	var err error

	if arg.DebitCurrency < arg.CreditCurrency {
		debited, err = wr.Debit(ctx, arg.UserID, arg.DebitCurrency, arg.DebitAmount)
		if err != nil {
			return debited, credited, err
		}

		credited, err = wr.Credit(ctx, arg.UserID, arg.CreditCurrency, arg.CreditAmount)

		return debited, credited, err
	}

	credited, err = wr.Credit(ctx, arg.UserID, arg.CreditCurrency, arg.CreditAmount)
	if err != nil {
		return debited, credited, err
	}

	debited, err = wr.Debit(ctx, arg.UserID, arg.DebitCurrency, arg.DebitAmount)

	return debited, credited, err
}
