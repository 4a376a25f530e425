package rates

import (
	"context"
	"net/http"
	"net/url"

	"github.com/unotto/genchi"
)

// FrankfurterClient talks to api.frankfurter.app (ECB data). Strong on
// major currencies, weak on some regional ones, hence second in line.
type FrankfurterClient struct {
	URL    string
	Client *http.Client
}

type (
	frankfurterLatestResponse struct {
		Rates map[string]float64 `json:"rates"`
	}

	frankfurterRangeResponse struct {
		Rates map[string]map[string]float64 `json:"rates"`
	}
)

func (c FrankfurterClient) baseURL() string {
	if c.URL != "" {
		return c.URL
	}
	return FrankfurterURL
}

func (c FrankfurterClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// Latest returns the current rate from the base-anchored latest table,
// projected on the quote code.
func (c FrankfurterClient) Latest(ctx context.Context, base, quote string) (float64, error) {
	q := url.Values{}
	q.Add("from", base)
	q.Add("to", quote)

	var data frankfurterLatestResponse
	if err := getJSON(ctx, c.httpClient(), c.baseURL()+"/latest", q, &data); err != nil {
		return 0, err
	}

	rate, ok := data.Rates[quote]
	if !ok || !usableRate(rate) {
		return 0, ErrBadPayload
	}

	return rate, nil
}

// Range fetches the whole date range in one call via the
// "/{start}..{end}" endpoint.
func (c FrankfurterClient) Range(ctx context.Context, base, quote string, span genchi.DateRange) ([]genchi.RatePoint, error) {
	q := url.Values{}
	q.Add("from", base)
	q.Add("to", quote)

	path := c.baseURL() + "/" + span.Start.Format(genchi.DateLayout) + ".." + span.End.Format(genchi.DateLayout)

	var data frankfurterRangeResponse
	if err := getJSON(ctx, c.httpClient(), path, q, &data); err != nil {
		return nil, err
	}

	return pointsFromDateMap(data.Rates, quote)
}
