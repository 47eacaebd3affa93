// Package ratesdelivery manages delivery layer of exchange rates.
package ratesdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/go-kantor/kantor/pkg/errorspkg"
	"github.com/go-kantor/kantor/pkg/web"
)

// defaultHistoryDays is used when the history request does not specify a range.
const defaultHistoryDays = 30

// Service provides service layer interface needed by rates delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ratesdelivery
type Service interface {
	Current(ctx context.Context, code string) (domain.Quote, error)
	Table(ctx context.Context) (domain.RateTable, error)
	History(ctx context.Context, code string, days int) (domain.RateHistory, error)
	BuySell(ctx context.Context, code string) (domain.BuySellQuote, error)
	Available(ctx context.Context) ([]domain.CurrencyInfo, error)
}

// Handler facilitates rates delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns rates handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type currentRequest struct {
	Code string `form:"code" binding:"omitempty,currency_code"`
}

// Current handles http request for the current mid rate of one currency,
// or for the full rate table when no code is given.
func (h *Handler) Current(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req currentRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		writeBindError(gctx, err)

		return
	}

	if req.Code == "" {
		table, err := h.service.Table(ctx)
		if err != nil {
			writeRatesError(gctx, err)
			return
		}

		gctx.JSON(http.StatusOK, web.Response{Data: table})

		return
	}

	quote, err := h.service.Current(ctx, req.Code)
	if err != nil {
		writeRatesError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: quote})
}

type historyRequest struct {
	Code string `form:"code" binding:"required,currency_code"`
	Days int    `form:"days" binding:"omitempty,min=1,max=255"`
}

// History handles http request for the historical rate series of a currency.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		writeBindError(gctx, err)

		return
	}

	if req.Days == 0 {
		req.Days = defaultHistoryDays
	}

	history, err := h.service.History(ctx, req.Code, req.Days)
	if err != nil {
		writeRatesError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: history})
}

type buySellRequest struct {
	Code string `form:"code" binding:"required,currency_code"`
}

// BuySell handles http request for the current bid and ask rates of a currency.
func (h *Handler) BuySell(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req buySellRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		writeBindError(gctx, err)

		return
	}

	quote, err := h.service.BuySell(ctx, req.Code)
	if err != nil {
		writeRatesError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: quote})
}

type dataCurrencies struct {
	Currencies []domain.CurrencyInfo `json:"currencies"`
}

// Available handles http request for the list of tradable currencies.
func (h *Handler) Available(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	currencies, err := h.service.Available(ctx)
	if err != nil {
		writeRatesError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataCurrencies{currencies}})
}

func writeBindError(gctx *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func writeRatesError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrCurrencyNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrRatesUnavailable:
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
