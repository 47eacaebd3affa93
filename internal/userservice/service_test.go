package userservice

import (
	"context"
	"fmt"
	reflect "reflect"
	"strings"
	"testing"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/passpkg"
	"github.com/go-kantor/kantor/pkg/randompkg"
	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func randomUser(t *testing.T) (domain.User, string) {
	password := randompkg.String(10)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(%v) failed: %v", password, err)
	}

	user := domain.User{
		ID:             1,
		Email:          randompkg.Email(),
		HashedPassword: hashedPassword,
		Name:           randompkg.Name(),
	}

	return user, password
}

type eqCreateUserParamsMatcher struct {
	arg      domain.CreateUserParams
	password string
}

func (e eqCreateUserParamsMatcher) Matches(x interface{}) bool {
	arg, ok := x.(domain.CreateUserParams)
	if !ok {
		return false
	}

	err := passpkg.Check(e.password, arg.HashedPassword)
	if err != nil {
		return false
	}

	e.arg.HashedPassword = arg.HashedPassword

	return reflect.DeepEqual(e.arg, arg)
}

func (e eqCreateUserParamsMatcher) String() string {
	return fmt.Sprintf("matches arg %v and password %v", e.arg, e.password)
}

func EqCreateUserParams(arg domain.CreateUserParams, password string) gomock.Matcher {
	return eqCreateUserParamsMatcher{arg, password}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	type input struct {
		Email    string
		Password string
		Name     string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(userRepo *MockRepo, wallets *MockWalletCreator)
		checkResponse func(t *testing.T, got domain.UserWithoutPassword)
		wantError     error
	}{
		{
			name: "OK",
			input: input{
				user.Email,
				password,
				user.Name,
			},
			buildStubs: func(userRepo *MockRepo, wallets *MockWalletCreator) {
				userRepo.EXPECT().
					Create(gomock.Any(), EqCreateUserParams(
						domain.CreateUserParams{
							Email:          user.Email,
							HashedPassword: user.HashedPassword,
							Name:           user.Name,
						}, password)).
					Times(1).
					Return(user, nil)

				wallets.EXPECT().
					Credit(gomock.Any(), user.ID, currencypkg.PLN, decimal.Zero).
					Times(1).
					Return(domain.Wallet{
						UserID:       user.ID,
						CurrencyCode: currencypkg.PLN,
						Balance:      decimal.Zero,
					}, nil)
			},
			checkResponse: func(t *testing.T, got domain.UserWithoutPassword) {
				want := NewUserWithoutPassword(user)

				if !cmp.Equal(got, want) {
					t.Errorf("domain.UserWithoutPassword = %+v, want %+v", got, want)
				}
			},
		},
		{
			name: "HashPasswordErr",
			input: input{
				user.Email,
				strings.Repeat("long", 100),
				user.Name,
			},
			buildStubs: func(userRepo *MockRepo, wallets *MockWalletCreator) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)

				wallets.EXPECT().
					Credit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantError: errorspkg.ErrInternal,
		},
		{
			name: "EmailAlreadyExists",
			input: input{
				user.Email,
				password,
				user.Name,
			},
			buildStubs: func(userRepo *MockRepo, wallets *MockWalletCreator) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrEmailAlreadyExists)

				wallets.EXPECT().
					Credit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantError: domain.ErrEmailAlreadyExists,
		},
		{
			name: "WalletCreateErr",
			input: input{
				user.Email,
				password,
				user.Name,
			},
			buildStubs: func(userRepo *MockRepo, wallets *MockWalletCreator) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(user, nil)

				wallets.EXPECT().
					Credit(gomock.Any(), user.ID, currencypkg.PLN, decimal.Zero).
					Times(1).
					Return(domain.Wallet{}, errorspkg.ErrInternal)
			},
			wantError: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			wallets := NewMockWalletCreator(ctrl)
			userService := New(userRepo, wallets)

			tc.buildStubs(userRepo, wallets)

			got, err := userService.Create(context.Background(),
				tc.input.Email,
				tc.input.Password,
				tc.input.Name,
			)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("userService.Create(context.Background(), %v, %v, %v) got error %v, want %v",
					tc.input.Email, tc.input.Password, tc.input.Name, err, tc.wantError)
			}

			tc.checkResponse(t, got)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	testCases := []struct {
		name          string
		email         string
		password      string
		buildStubs    func(userRepo *MockRepo)
		checkResponse func(t *testing.T, got domain.UserWithoutPassword)
		wantError     error
	}{
		{
			name:     "OK",
			email:    user.Email,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Email).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, got domain.UserWithoutPassword) {
				want := NewUserWithoutPassword(user)

				if !cmp.Equal(got, want) {
					t.Errorf("domain.UserWithoutPassword = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:     "UnknownEmail",
			email:    user.Email,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Email).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantError: domain.ErrWrongPassword,
		},
		{
			name:     "GetUserError",
			email:    user.Email,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Email).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantError: errorspkg.ErrInternal,
		},
		{
			name:     "WrongPassword",
			email:    user.Email,
			password: "wrong",
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Email).
					Times(1).
					Return(user, nil)
			},
			wantError: domain.ErrWrongPassword,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			wallets := NewMockWalletCreator(ctrl)
			userService := New(userRepo, wallets)

			tc.buildStubs(userRepo)

			got, err := userService.CheckPassword(context.Background(),
				tc.email,
				tc.password,
			)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("userService.CheckPassword(context.Background(), %v, %v) got error %v, want %v",
					tc.email, tc.password, err, tc.wantError)
			}

			tc.checkResponse(t, got)
		})
	}
}
