// Package walletrepo manages repository layer of wallets.
package walletrepo

import (
	"context"
	"database/sql"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/dbpkg"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns wallet RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getBalanceQuery = `
SELECT balance
FROM wallets
WHERE user_id = $1 AND currency_code = $2
`

// GetBalance returns the wallet balance for the given user and currency.
//
// A missing wallet row reads as a zero balance; no row is created.
func (r *RepoPGS) GetBalance(ctx context.Context, userID int64, currencyCode string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getBalanceQuery, userID, currencyCode)

	var balance decimal.Decimal

	err := row.Scan(&balance)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}

		l.Error().Err(err).Send()

		return decimal.Zero, errorspkg.ErrInternal
	}

	return balance, nil
}

const creditQuery = `
INSERT INTO
    wallets (user_id, currency_code, balance)
VALUES
    ($1, $2, $3)
ON CONFLICT (user_id, currency_code)
DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
RETURNING id, user_id, currency_code, balance
`

// Credit adds amount to the wallet balance, creating the wallet row if absent.
func (r *RepoPGS) Credit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, creditQuery, userID, currencyCode, amount)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.CurrencyCode,
		&w.Balance,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const debitQuery = `
UPDATE wallets
SET balance = balance - $3
WHERE user_id = $1 AND currency_code = $2 AND balance >= $3
RETURNING id, user_id, currency_code, balance
`

// Debit atomically verifies and subtracts amount from the wallet balance.
//
// The funds check and the write are one statement, so a concurrent debit
// cannot observe a balance it is about to invalidate. When the wallet is
// missing or short, an InsufficientFundsError reports the required and the
// currently available amounts.
func (r *RepoPGS) Debit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, debitQuery, userID, currencyCode, amount)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.CurrencyCode,
		&w.Balance,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			available, err := r.GetBalance(ctx, userID, currencyCode)
			if err != nil {
				return w, err
			}

			return w, &domain.InsufficientFundsError{
				CurrencyCode: currencyCode,
				Required:     amount,
				Available:    available,
			}
		}

		l.Error().Err(err).Send()

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const listQuery = `
SELECT currency_code, balance
FROM wallets
WHERE user_id = $1
ORDER BY currency_code
`

// List returns all wallet balances of the given user ordered by currency code.
func (r *RepoPGS) List(ctx context.Context, userID int64) ([]domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Balance{}

	for rows.Next() {
		var b domain.Balance
		if err := rows.Scan(&b.CurrencyCode, &b.Balance); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
