package rates

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"

	"github.com/unotto/genchi"
)

// Default endpoints. All three are free, unauthenticated and
// CORS-friendly; coverage differs, which is why there is a cascade at
// all (regional currencies tend to be missing from the faster bulk
// endpoints but present elsewhere).
const (
	ExchangeRateHostURL = "https://api.exchangerate.host"
	FrankfurterURL      = "https://api.frankfurter.app"
	OpenERAPIURL        = "https://open.er-api.com/v6"
)

var (
	ErrClient      = errors.New("client error")
	ErrServer      = errors.New("server error")
	ErrUnknown     = errors.New("unknown error")
	ErrBadPayload  = errors.New("payload has no usable rate")
	ErrEmptySeries = errors.New("series has no points")
)

type (
	// spotAttempt and seriesAttempt are single entries in a provider
	// cascade: a name for the log line and a closure conforming to one
	// result-or-error contract. The cascade runners below are the only
	// place that iterates providers.
	spotAttempt struct {
		name string
		fn   func(ctx context.Context) (float64, error)
	}

	seriesAttempt struct {
		name string
		fn   func(ctx context.Context) ([]genchi.RatePoint, error)
	}
)

func checkStatus(res *http.Response) error {
	switch {
	case res.StatusCode == http.StatusOK:
		return nil
	case res.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	case res.StatusCode >= http.StatusBadRequest:
		return ErrClient
	default:
		return ErrUnknown
	}
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	req.Header.Add("Accept", "application/json")

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := checkStatus(res); err != nil {
		return err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

// usableRate is the per-provider success condition: a parsed value
// counts only if it is a finite positive number. Anything else is a
// provider failure, never a zero or negative rate.
func usableRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0
}

// pointsFromDateMap flattens the rates-by-date-then-code shape shared
// by the bulk time-series endpoints into ascending points, dropping
// days without a usable value for the quote code.
func pointsFromDateMap(byDate map[string]map[string]float64, quote string) ([]genchi.RatePoint, error) {
	points := make([]genchi.RatePoint, 0, len(byDate))

	for date, codes := range byDate {
		rate, ok := codes[quote]
		if !ok || !usableRate(rate) {
			continue
		}

		points = append(points, genchi.RatePoint{Date: date, Rate: rate})
	}

	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}
