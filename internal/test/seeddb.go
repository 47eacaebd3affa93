// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/transactionrepo"
	"github.com/go-kantor/kantor/internal/userrepo"
	"github.com/go-kantor/kantor/internal/walletrepo"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/go-kantor/kantor/pkg/dbpkg"
	"github.com/go-kantor/kantor/pkg/passpkg"
	"github.com/go-kantor/kantor/pkg/randompkg"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Email:          randompkg.Email(),
		HashedPassword: hashedPassword,
		Name:           randompkg.Name(),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedWallet credits the given amount to a user wallet inside a test transaction.
func SeedWallet(t *testing.T, tx dbpkg.SQLInterface, userID int64, currencyCode string, amount decimal.Decimal) domain.Wallet {
	t.Helper()

	walletRepo := walletrepo.NewRepoPGS(tx)

	wallet, err := walletRepo.Credit(context.Background(), userID, currencyCode, amount)
	if err != nil {
		t.Fatalf("walletRepo.Credit(context.Background(), %v, %v, %v) returned error: %v",
			userID, currencyCode, amount, err)
	}

	return wallet
}

// SeedWalletWith1000PLN creates a PLN wallet with 1000 PLN on balance inside a test transaction.
func SeedWalletWith1000PLN(t *testing.T, tx dbpkg.SQLInterface, userID int64) domain.Wallet {
	t.Helper()

	return SeedWallet(t, tx, userID, currencypkg.PLN, decimal.NewFromInt(1000))
}

// SeedTransaction creates a transaction record inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, arg domain.CreateTransactionParams) domain.Transaction {
	t.Helper()

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	transaction, err := transactionRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return transaction
}

// SeedFundTransaction creates a FUND transaction record with the given amount
// inside a test transaction.
func SeedFundTransaction(t *testing.T, tx dbpkg.SQLInterface, userID int64, amount decimal.Decimal) domain.Transaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		UserID:       userID,
		Type:         domain.TransactionFund,
		CurrencyCode: currencypkg.PLN,
		Amount:       amount,
		Rate:         decimal.NewFromInt(1),
		PLNChange:    amount,
	}

	return SeedTransaction(t, tx, arg)
}
