// Package nbp provides a client for the NBP exchange rates API.
//
// Every call is a fresh upstream fetch. Callers see exactly two failure
// modes: domain.ErrCurrencyNotFound when the API reports no such currency
// and domain.ErrRatesUnavailable for everything else.
package nbp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-kantor/kantor/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public NBP web API endpoint.
const DefaultBaseURL = "https://api.nbp.pl/api/exchangerates"

// Client fetches exchange rates from the NBP web API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns an NBP client with the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type rateA struct {
	No            string          `json:"no"`
	EffectiveDate string          `json:"effectiveDate"`
	Mid           decimal.Decimal `json:"mid"`
}

type rateC struct {
	No            string          `json:"no"`
	EffectiveDate string          `json:"effectiveDate"`
	Bid           decimal.Decimal `json:"bid"`
	Ask           decimal.Decimal `json:"ask"`
}

type singleRateA struct {
	Table    string  `json:"table"`
	Currency string  `json:"currency"`
	Code     string  `json:"code"`
	Rates    []rateA `json:"rates"`
}

type singleRateC struct {
	Table    string  `json:"table"`
	Currency string  `json:"currency"`
	Code     string  `json:"code"`
	Rates    []rateC `json:"rates"`
}

type tableRow struct {
	Currency string          `json:"currency"`
	Code     string          `json:"code"`
	Mid      decimal.Decimal `json:"mid"`
}

type table struct {
	Table         string     `json:"table"`
	No            string     `json:"no"`
	EffectiveDate string     `json:"effectiveDate"`
	Rates         []tableRow `json:"rates"`
}

// Mid returns the current table A mid rate for the given currency code.
func (c *Client) Mid(ctx context.Context, code string) (domain.Quote, error) {
	var payload singleRateA

	url := fmt.Sprintf("%s/rates/a/%s/?format=json", c.baseURL, strings.ToLower(code))

	if err := c.get(ctx, url, &payload); err != nil {
		return domain.Quote{}, err
	}

	if len(payload.Rates) == 0 {
		return domain.Quote{}, domain.ErrRatesUnavailable
	}

	rate := payload.Rates[0]

	return domain.Quote{
		Code:          strings.ToUpper(code),
		Currency:      payload.Currency,
		Mid:           rate.Mid,
		EffectiveDate: rate.EffectiveDate,
	}, nil
}

// BuySell returns the current table C bid and ask rates for the given currency code.
func (c *Client) BuySell(ctx context.Context, code string) (domain.BuySellQuote, error) {
	var payload singleRateC

	url := fmt.Sprintf("%s/rates/c/%s/?format=json", c.baseURL, strings.ToLower(code))

	if err := c.get(ctx, url, &payload); err != nil {
		return domain.BuySellQuote{}, err
	}

	if len(payload.Rates) == 0 {
		return domain.BuySellQuote{}, domain.ErrRatesUnavailable
	}

	rate := payload.Rates[0]

	return domain.BuySellQuote{
		Code:          strings.ToUpper(code),
		Bid:           rate.Bid,
		Ask:           rate.Ask,
		EffectiveDate: rate.EffectiveDate,
	}, nil
}

// History returns the table A mid rate series of the last days observations.
func (c *Client) History(ctx context.Context, code string, days int) (domain.RateHistory, error) {
	var payload singleRateA

	url := fmt.Sprintf("%s/rates/a/%s/last/%d/?format=json", c.baseURL, strings.ToLower(code), days)

	if err := c.get(ctx, url, &payload); err != nil {
		return domain.RateHistory{}, err
	}

	history := domain.RateHistory{
		Code:     strings.ToUpper(code),
		Currency: payload.Currency,
		Rates:    make([]domain.RatePoint, 0, len(payload.Rates)),
	}

	for _, r := range payload.Rates {
		history.Rates = append(history.Rates, domain.RatePoint{
			EffectiveDate: r.EffectiveDate,
			Mid:           r.Mid,
		})
	}

	return history, nil
}

// Table returns the full current table A of mid rates.
func (c *Client) Table(ctx context.Context) (domain.RateTable, error) {
	var payload []table

	url := fmt.Sprintf("%s/tables/a/?format=json", c.baseURL)

	if err := c.get(ctx, url, &payload); err != nil {
		return domain.RateTable{}, err
	}

	if len(payload) == 0 {
		return domain.RateTable{}, domain.ErrRatesUnavailable
	}

	t := payload[0]

	result := domain.RateTable{
		Table:         t.Table,
		No:            t.No,
		EffectiveDate: t.EffectiveDate,
		Rates:         make([]domain.TableRate, 0, len(t.Rates)),
	}

	for _, r := range t.Rates {
		result.Rates = append(result.Rates, domain.TableRate{
			Code:          r.Code,
			Currency:      r.Currency,
			Mid:           r.Mid,
			EffectiveDate: t.EffectiveDate,
		})
	}

	return result, nil
}

// Currencies returns the currencies quoted in table C, the ones tradable
// with bid and ask rates.
func (c *Client) Currencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	var payload []table

	url := fmt.Sprintf("%s/tables/c/?format=json", c.baseURL)

	if err := c.get(ctx, url, &payload); err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, domain.ErrRatesUnavailable
	}

	currencies := make([]domain.CurrencyInfo, 0, len(payload[0].Rates))

	for _, r := range payload[0].Rates {
		currencies = append(currencies, domain.CurrencyInfo{
			Code:     r.Code,
			Currency: r.Currency,
		})
	}

	return currencies, nil
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	l := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.ErrRatesUnavailable
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		l.Warn().Err(err).Str("url", url).Send()
		return domain.ErrRatesUnavailable
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return domain.ErrCurrencyNotFound
	case res.StatusCode != http.StatusOK:
		l.Warn().Int("status_code", res.StatusCode).Str("url", url).Send()
		return domain.ErrRatesUnavailable
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		l.Warn().Err(err).Str("url", url).Send()
		return domain.ErrRatesUnavailable
	}

	return nil
}
