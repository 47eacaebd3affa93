// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/internal/middleware"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/tokenpkg"
	"github.com/go-kantor/kantor/pkg/web"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	Balances(ctx context.Context, userID int64) ([]domain.Balance, error)
	Fund(ctx context.Context, userID int64, amountPLN decimal.Decimal) (domain.FundReceipt, error)
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(ws Service) Handler {
	return Handler{service: ws}
}

type dataBalances struct {
	Balances []domain.Balance `json:"balances"`
}

// Balances handles http request to list wallet balances.
func (h *Handler) Balances(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	balances, err := h.service.Balances(ctx, authPayload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataBalances{balances}})
}

type fundRequest struct {
	AmountPLN decimal.Decimal `json:"amountPLN" binding:"required"`
}

// Fund handles http request to credit the PLN wallet.
func (h *Handler) Fund(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req fundRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	receipt, err := h.service.Fund(ctx, authPayload.UserID, req.AmountPLN)
	if err != nil {
		switch err {
		case domain.ErrNonPositiveAmount, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: receipt})
}
