// Package transactiondelivery manages delivery layer of the transaction log.
package transactiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/middleware"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/tokenpkg"
	"github.com/go-kantor/kantor/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	List(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// List handles http request to list the user's transaction history.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	transactions, err := h.service.List(ctx, authPayload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataTransactions{transactions}})
}
