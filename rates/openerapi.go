package rates

import (
	"context"
	"net/http"
)

// OpenERAPIClient talks to open.er-api.com. Last in the spot cascade;
// it only offers a daily base-anchored table, no historical data.
type OpenERAPIClient struct {
	URL    string
	Client *http.Client
}

type openERAPIResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c OpenERAPIClient) baseURL() string {
	if c.URL != "" {
		return c.URL
	}
	return OpenERAPIURL
}

func (c OpenERAPIClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// Latest returns the current rate from the base-anchored table.
func (c OpenERAPIClient) Latest(ctx context.Context, base, quote string) (float64, error) {
	var data openERAPIResponse
	if err := getJSON(ctx, c.httpClient(), c.baseURL()+"/latest/"+base, nil, &data); err != nil {
		return 0, err
	}

	rate, ok := data.Rates[quote]
	if !ok || !usableRate(rate) {
		return 0, ErrBadPayload
	}

	return rate, nil
}
