// Package tradedelivery manages delivery layer of trades.
package tradedelivery

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

// Service provides service layer interface needed by trade delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package tradedelivery
type Service interface {
	Buy(ctx context.Context, userID int64, code string, amountForeign decimal.Decimal) (domain.BuyReceipt, error)
	Sell(ctx context.Context, userID int64, code string, amountForeign decimal.Decimal) (domain.SellReceipt, error)
}

// Handler facilitates trade delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns trade handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type orderRequest struct {
	Code          string          `json:"code" binding:"required,currency_code"`
	AmountForeign decimal.Decimal `json:"amountForeign" binding:"required"`
}

// Buy handles http request to buy foreign currency.
func (h *Handler) Buy(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req orderRequest
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

	receipt, err := h.service.Buy(ctx, authPayload.UserID, req.Code, req.AmountForeign)
	if err != nil {
		writeOrderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: receipt})
}

// Sell handles http request to sell foreign currency.
func (h *Handler) Sell(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req orderRequest
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

	receipt, err := h.service.Sell(ctx, authPayload.UserID, req.Code, req.AmountForeign)
	if err != nil {
		writeOrderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: receipt})
}

// writeOrderError maps trade errors to http statuses. Insufficient funds
// responses carry the required and available amounts for client display.
func writeOrderError(gctx *gin.Context, err error) {
	var insufficient *domain.InsufficientFundsError
	if errors.As(err, &insufficient) {
		gctx.JSON(http.StatusBadRequest, web.Response{
			Error:   insufficient.Error(),
			Details: insufficient,
		})

		return
	}

	switch err {
	case domain.ErrInvalidCurrencyCode, domain.ErrNonPositiveAmount, domain.ErrInvalidAmount:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case domain.ErrCurrencyNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrRatesUnavailable:
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
