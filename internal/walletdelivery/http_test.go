package walletdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/middleware"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/randompkg"
	"github.com/go-kantor/kantor/pkg/tokenpkg"
	"github.com/go-kantor/kantor/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var compareDecimals = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestBalances(t *testing.T) {
	const userID = int64(1)

	email := randompkg.Email()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	balances := []domain.Balance{
		{CurrencyCode: "PLN", Balance: decimal.RequireFromString("358.00")},
		{CurrencyCode: "USD", Balance: decimal.NewFromInt(100)},
	}

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(walletService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Balances(gomock.Any(), userID).
					Times(1).
					Return(balances, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Balances []domain.Balance `json:"balances"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(balances, got.Balances, compareDecimals); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "NoAuthorization",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Balances(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name: "InternalError",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Balances(gomock.Any(), userID).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			walletService := NewMockService(ctrl)
			walletHandler := NewHandler(walletService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/wallet/balances", walletHandler.Balances)

			tc.buildStubs(walletService)

			req, err := http.NewRequest(http.MethodGet, "/wallet/balances", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Balances []domain.Balance `json:"balances"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestFund(t *testing.T) {
	const userID = int64(1)

	email := randompkg.Email()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	receipt := domain.FundReceipt{
		Balance: decimal.RequireFromString("500.00"),
		Funded:  decimal.RequireFromString("500.00"),
	}

	testCases := []struct {
		name           string
		body           string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(walletService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			body: `{"amountPLN": "500"}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), userID, gomock.Any()).
					Times(1).
					Return(receipt, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*domain.FundReceipt)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(receipt, *got, compareDecimals); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "NoAuthorization",
			body: `{"amountPLN": "500"}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name: "MissingAmount",
			body: `{}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "AmountPLN field is required",
		},
		{
			name: "NonNumericAmount",
			body: `{"amountPLN": "abc"}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
		{
			name: "NonPositiveAmount",
			body: `{"amountPLN": "-100"}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), userID, gomock.Any()).
					Times(1).
					Return(domain.FundReceipt{}, domain.ErrNonPositiveAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrNonPositiveAmount.Error(),
		},
		{
			name: "InternalError",
			body: `{"amountPLN": "500"}`,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, userID, email, duration)
			},
			buildStubs: func(walletService *MockService) {
				walletService.EXPECT().
					Fund(gomock.Any(), userID, gomock.Any()).
					Times(1).
					Return(domain.FundReceipt{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			walletService := NewMockService(ctrl)
			walletHandler := NewHandler(walletService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/wallet/fund", walletHandler.Fund)

			tc.buildStubs(walletService)

			req, err := http.NewRequest(http.MethodPost, "/wallet/fund", bytes.NewReader([]byte(tc.body)))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &domain.FundReceipt{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
