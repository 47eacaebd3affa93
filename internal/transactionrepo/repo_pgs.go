// Package transactionrepo manages repository layer of the transaction log.
package transactionrepo

import (
	"context"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/dbpkg"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    transactions (user_id, type, currency_code, amount, rate, pln_change)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, type, currency_code, amount, rate, pln_change, created_at
`

// Create appends the transaction record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.UserID,
		arg.Type,
		arg.CurrencyCode,
		arg.Amount,
		arg.Rate,
		arg.PLNChange,
	)

	var tx domain.Transaction

	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Type,
		&tx.CurrencyCode,
		&tx.Amount,
		&tx.Rate,
		&tx.PLNChange,
		&tx.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const listQuery = `
SELECT id, user_id, type, currency_code, amount, rate, pln_change, created_at
FROM transactions
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

// List returns the most recent transactions of the given user, newest first.
func (r *RepoPGS) List(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, userID, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Type,
			&tx.CurrencyCode,
			&tx.Amount,
			&tx.Rate,
			&tx.PLNChange,
			&tx.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, tx)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
