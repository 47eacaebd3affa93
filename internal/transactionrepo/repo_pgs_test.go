//go:build integration

package transactionrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/integrationtest"
	"github.com/go-kantor/kantor/internal/test"
	"github.com/go-kantor/kantor/internal/transactionrepo"
	"github.com/go-kantor/kantor/pkg/configpkg"
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

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := test.SeedUser(t, tx)

	arg := domain.CreateTransactionParams{
		UserID:       user.ID,
		Type:         domain.TransactionBuy,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(100),
		Rate:         decimal.RequireFromString("4.00"),
		PLNChange:    decimal.RequireFromString("-400.00"),
	}

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	got, err := transactionRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	want := domain.Transaction{
		UserID:       user.ID,
		Type:         domain.TransactionBuy,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(100),
		Rate:         decimal.RequireFromString("4.00"),
		PLNChange:    decimal.RequireFromString("-400.00"),
		CreatedAt:    time.Now().UTC(),
	}

	ignoreID := cmpopts.IgnoreFields(domain.Transaction{}, "ID")
	compareCreatedAt := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(want, got, compareDecimals, ignoreID, compareCreatedAt); diff != "" {
		t.Errorf("transactionRepo.Create(context.Background(), %+v) returned unexpected difference (-want +got):\n%s",
			arg, diff)
	}

	if got.ID == 0 {
		t.Error("got.ID = 0, want non-zero")
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := test.SeedUser(t, tx)

	fund := test.SeedFundTransaction(t, tx, user.ID, decimal.NewFromInt(1000))
	buy := test.SeedTransaction(t, tx, domain.CreateTransactionParams{
		UserID:       user.ID,
		Type:         domain.TransactionBuy,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(100),
		Rate:         decimal.RequireFromString("4.00"),
		PLNChange:    decimal.RequireFromString("-400.00"),
	})
	sell := test.SeedTransaction(t, tx, domain.CreateTransactionParams{
		UserID:       user.ID,
		Type:         domain.TransactionSell,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(50),
		Rate:         decimal.RequireFromString("3.90"),
		PLNChange:    decimal.RequireFromString("195.00"),
	})

	// Records of other users must not leak into the listing.
	otherUser := test.SeedUser(t, tx)
	test.SeedFundTransaction(t, tx, otherUser.ID, decimal.NewFromInt(500))

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	testCases := []struct {
		name  string
		limit int32
		want  []domain.Transaction
	}{
		{
			name:  "NewestFirst",
			limit: 100,
			want:  []domain.Transaction{sell, buy, fund},
		},
		{
			name:  "Limit2",
			limit: 2,
			want:  []domain.Transaction{sell, buy},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := transactionRepo.List(context.Background(), user.ID, tc.limit)
			if err != nil {
				t.Fatalf("transactionRepo.List(context.Background(), %v, %v) returned error: %v",
					user.ID, tc.limit, err)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(tc.want, got, compareDecimals, compareCreatedAt); diff != "" {
				t.Errorf("transactionRepo.List(context.Background(), %v, %v) returned unexpected difference (-want +got):\n%s",
					user.ID, tc.limit, diff)
			}
		})
	}
}
