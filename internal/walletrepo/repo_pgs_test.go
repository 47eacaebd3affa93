//go:build integration

package walletrepo_test

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/integrationtest"
	"github.com/go-kantor/kantor/internal/test"
	"github.com/go-kantor/kantor/internal/walletrepo"
	"github.com/go-kantor/kantor/pkg/configpkg"
	"github.com/go-kantor/kantor/pkg/currencypkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

var compareDecimals = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestGetBalance(t *testing.T) {
	testCases := []struct {
		name        string
		seed        func(tx *sql.Tx, userID int64)
		wantBalance decimal.Decimal
	}{
		{
			name: "OK",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWalletWith1000PLN(t, tx, userID)
			},
			wantBalance: decimal.NewFromInt(1000),
		},
		{
			name:        "MissingWalletReadsAsZero",
			seed:        func(tx *sql.Tx, userID int64) {},
			wantBalance: decimal.Zero,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)

			user := test.SeedUser(t, tx)
			tc.seed(tx, user.ID)

			walletRepo := walletrepo.NewRepoPGS(tx)

			got, err := walletRepo.GetBalance(context.Background(), user.ID, currencypkg.PLN)
			if err != nil {
				t.Fatalf("walletRepo.GetBalance(context.Background(), %v, PLN) returned error: %v",
					user.ID, err)
			}

			if !got.Equal(tc.wantBalance) {
				t.Errorf("got = %v, want %v", got, tc.wantBalance)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	testCases := []struct {
		name       string
		seed       func(tx *sql.Tx, userID int64)
		amount     decimal.Decimal
		wantWallet func(userID int64) domain.Wallet
	}{
		{
			name:   "CreatesMissingWallet",
			seed:   func(tx *sql.Tx, userID int64) {},
			amount: decimal.NewFromInt(500),
			wantWallet: func(userID int64) domain.Wallet {
				return domain.Wallet{
					UserID:       userID,
					CurrencyCode: "USD",
					Balance:      decimal.NewFromInt(500),
				}
			},
		},
		{
			name: "AddsToExistingWallet",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWallet(t, tx, userID, "USD", decimal.NewFromInt(100))
			},
			amount: decimal.RequireFromString("0.01"),
			wantWallet: func(userID int64) domain.Wallet {
				return domain.Wallet{
					UserID:       userID,
					CurrencyCode: "USD",
					Balance:      decimal.RequireFromString("100.01"),
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)

			user := test.SeedUser(t, tx)
			tc.seed(tx, user.ID)
			want := tc.wantWallet(user.ID)

			walletRepo := walletrepo.NewRepoPGS(tx)

			got, err := walletRepo.Credit(context.Background(), user.ID, "USD", tc.amount)
			if err != nil {
				t.Fatalf("walletRepo.Credit(context.Background(), %v, USD, %v) returned error: %v",
					user.ID, tc.amount, err)
			}

			ignoreID := cmpopts.IgnoreFields(domain.Wallet{}, "ID")
			if diff := cmp.Diff(want, got, compareDecimals, ignoreID); diff != "" {
				t.Errorf("walletRepo.Credit(context.Background(), %v, USD, %v) returned unexpected difference (-want +got):\n%s",
					user.ID, tc.amount, diff)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}
		})
	}
}

func TestDebit(t *testing.T) {
	testCases := []struct {
		name       string
		seed       func(tx *sql.Tx, userID int64)
		amount     decimal.Decimal
		wantWallet func(userID int64) domain.Wallet
		wantErr    *domain.InsufficientFundsError
	}{
		{
			name: "OK",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWalletWith1000PLN(t, tx, userID)
			},
			amount: decimal.RequireFromString("400.00"),
			wantWallet: func(userID int64) domain.Wallet {
				return domain.Wallet{
					UserID:       userID,
					CurrencyCode: currencypkg.PLN,
					Balance:      decimal.NewFromInt(600),
				}
			},
		},
		{
			name: "ExactBalance",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWalletWith1000PLN(t, tx, userID)
			},
			amount: decimal.NewFromInt(1000),
			wantWallet: func(userID int64) domain.Wallet {
				return domain.Wallet{
					UserID:       userID,
					CurrencyCode: currencypkg.PLN,
					Balance:      decimal.Zero,
				}
			},
		},
		{
			name: "InsufficientFunds",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWallet(t, tx, userID, currencypkg.PLN, decimal.NewFromInt(100))
			},
			amount: decimal.RequireFromString("400.00"),
			wantErr: &domain.InsufficientFundsError{
				CurrencyCode: currencypkg.PLN,
				Required:     decimal.RequireFromString("400.00"),
				Available:    decimal.NewFromInt(100),
			},
		},
		{
			name:   "MissingWallet",
			seed:   func(tx *sql.Tx, userID int64) {},
			amount: decimal.RequireFromString("400.00"),
			wantErr: &domain.InsufficientFundsError{
				CurrencyCode: currencypkg.PLN,
				Required:     decimal.RequireFromString("400.00"),
				Available:    decimal.Zero,
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)

			user := test.SeedUser(t, tx)
			tc.seed(tx, user.ID)

			walletRepo := walletrepo.NewRepoPGS(tx)

			got, err := walletRepo.Debit(context.Background(), user.ID, currencypkg.PLN, tc.amount)
			if err != nil {
				var insufficient *domain.InsufficientFundsError
				if tc.wantErr != nil && errors.As(err, &insufficient) {
					if diff := cmp.Diff(tc.wantErr, insufficient, compareDecimals); diff != "" {
						t.Errorf("walletRepo.Debit(context.Background(), %v, PLN, %v) returned unexpected error difference (-want +got):\n%s",
							user.ID, tc.amount, diff)
					}

					return
				}

				t.Fatalf("walletRepo.Debit(context.Background(), %v, PLN, %v) returned error: %v",
					user.ID, tc.amount, err)
			}

			if tc.wantErr != nil {
				t.Fatalf("walletRepo.Debit(context.Background(), %v, PLN, %v) returned no error, want %v",
					user.ID, tc.amount, tc.wantErr)
			}

			want := tc.wantWallet(user.ID)

			ignoreID := cmpopts.IgnoreFields(domain.Wallet{}, "ID")
			if diff := cmp.Diff(want, got, compareDecimals, ignoreID); diff != "" {
				t.Errorf("walletRepo.Debit(context.Background(), %v, PLN, %v) returned unexpected difference (-want +got):\n%s",
					user.ID, tc.amount, diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	testCases := []struct {
		name         string
		seed         func(tx *sql.Tx, userID int64)
		wantBalances []domain.Balance
	}{
		{
			name: "OrderedByCurrencyCode",
			seed: func(tx *sql.Tx, userID int64) {
				test.SeedWallet(t, tx, userID, "USD", decimal.NewFromInt(100))
				test.SeedWalletWith1000PLN(t, tx, userID)
				test.SeedWallet(t, tx, userID, "EUR", decimal.RequireFromString("25.50"))
			},
			wantBalances: []domain.Balance{
				{CurrencyCode: "EUR", Balance: decimal.RequireFromString("25.50")},
				{CurrencyCode: currencypkg.PLN, Balance: decimal.NewFromInt(1000)},
				{CurrencyCode: "USD", Balance: decimal.NewFromInt(100)},
			},
		},
		{
			name:         "NoWallets",
			seed:         func(tx *sql.Tx, userID int64) {},
			wantBalances: []domain.Balance{},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)

			user := test.SeedUser(t, tx)
			tc.seed(tx, user.ID)

			walletRepo := walletrepo.NewRepoPGS(tx)

			got, err := walletRepo.List(context.Background(), user.ID)
			if err != nil {
				t.Fatalf("walletRepo.List(context.Background(), %v) returned error: %v", user.ID, err)
			}

			if diff := cmp.Diff(tc.wantBalances, got, compareDecimals); diff != "" {
				t.Errorf("walletRepo.List(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
					user.ID, diff)
			}
		})
	}
}
