// Package transactionservice manages business logic layer of the transaction log.
package transactionservice

import (
	"context"

	"github.com/go-kantor/kantor/internal/domain"
)

// historyLimit bounds the transaction history to the most recent records.
const historyLimit = 100

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	List(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction business logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// List returns the user's most recent transactions, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.repo.List(ctx, userID, historyLimit)
}
