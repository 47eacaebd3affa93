// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/passpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, email string) (domain.User, error)
}

// WalletCreator opens wallet rows for new users.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type WalletCreator interface {
	Credit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (domain.Wallet, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo    Repo
	wallets WalletCreator
}

// New returns user service struct to manage user business logic.
func New(ur Repo, wc WalletCreator) *Service {
	return &Service{
		repo:    ur,
		wallets: wc,
	}
}

// NewUserWithoutPassword returns user with removed sensitive data.
func NewUserWithoutPassword(u domain.User) domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Create registers a user and opens an empty PLN wallet for them.
func (s *Service) Create(ctx context.Context, email, password, name string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithoutPassword

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
	}

	gotUser, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	if _, err := s.wallets.Credit(ctx, gotUser.ID, currencypkg.PLN, decimal.Zero); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return NewUserWithoutPassword(gotUser), nil
}

// CheckPassword checks if the password is valid for the given email.
func (s *Service) CheckPassword(ctx context.Context, email, password string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWithoutPassword

	gotUser, err := s.repo.Get(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return response, domain.ErrWrongPassword
		}

		return response, err
	}

	err = passpkg.Check(password, gotUser.HashedPassword)
	if err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrWrongPassword
	}

	return NewUserWithoutPassword(gotUser), nil
}
