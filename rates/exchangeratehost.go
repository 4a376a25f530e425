package rates

import (
	"context"
	"net/http"
	"net/url"

	"github.com/unotto/genchi"
)

// ExchangeRateHostClient talks to api.exchangerate.host. It is the
// first choice for both spot and series because it has the widest
// currency coverage of the three providers.
type ExchangeRateHostClient struct {
	URL    string
	Client *http.Client
}

type (
	xhostConvertResponse struct {
		Info struct {
			Rate *float64 `json:"rate"`
		} `json:"info"`
		Result *float64 `json:"result"`
	}

	xhostRatesResponse struct {
		Rates map[string]float64 `json:"rates"`
	}

	xhostTimeseriesResponse struct {
		Success *bool                         `json:"success"`
		Rates   map[string]map[string]float64 `json:"rates"`
	}
)

func (c ExchangeRateHostClient) baseURL() string {
	if c.URL != "" {
		return c.URL
	}
	return ExchangeRateHostURL
}

func (c ExchangeRateHostClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// Convert resolves the pair through the direct pairwise endpoint.
// Without an amount parameter the result field equals the rate, so it
// doubles as a fallback when info.rate is missing.
func (c ExchangeRateHostClient) Convert(ctx context.Context, base, quote string) (float64, error) {
	q := url.Values{}
	q.Add("from", base)
	q.Add("to", quote)

	var data xhostConvertResponse
	if err := getJSON(ctx, c.httpClient(), c.baseURL()+"/convert", q, &data); err != nil {
		return 0, err
	}

	rate := data.Info.Rate
	if rate == nil {
		rate = data.Result
	}

	if rate == nil || !usableRate(*rate) {
		return 0, ErrBadPayload
	}

	return *rate, nil
}

// Day returns the rate for one historical calendar day.
func (c ExchangeRateHostClient) Day(ctx context.Context, base, quote, day string) (float64, error) {
	q := url.Values{}
	q.Add("base", base)
	q.Add("symbols", quote)

	var data xhostRatesResponse
	if err := getJSON(ctx, c.httpClient(), c.baseURL()+"/"+day, q, &data); err != nil {
		return 0, err
	}

	rate, ok := data.Rates[quote]
	if !ok || !usableRate(rate) {
		return 0, ErrBadPayload
	}

	return rate, nil
}

// Timeseries fetches the whole range in one call.
func (c ExchangeRateHostClient) Timeseries(ctx context.Context, base, quote string, span genchi.DateRange) ([]genchi.RatePoint, error) {
	q := url.Values{}
	q.Add("base", base)
	q.Add("symbols", quote)
	q.Add("start_date", span.Start.Format(genchi.DateLayout))
	q.Add("end_date", span.End.Format(genchi.DateLayout))

	var data xhostTimeseriesResponse
	if err := getJSON(ctx, c.httpClient(), c.baseURL()+"/timeseries", q, &data); err != nil {
		return nil, err
	}

	if data.Success != nil && !*data.Success {
		return nil, ErrBadPayload
	}

	return pointsFromDateMap(data.Rates, quote)
}
