package rates

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/unotto/genchi"
)

// Resolver resolves currency pairs across the provider cascade. The
// zero value works with the default endpoints; tests override URLs and
// the RNG.
//
// Failure semantics: one attempt per provider, no retries and no
// backoff. The operations are user-initiated and interactive; a retry
// is the user pressing the button again.
type Resolver struct {
	XHost       ExchangeRateHostClient
	Frankfurter FrankfurterClient
	OpenERAPI   OpenERAPIClient

	Logger *logrus.Logger

	// Rand drives synthetic series generation when set. Not safe for
	// concurrent SeriesFor calls; leave nil outside tests.
	Rand *rand.Rand
}

// Spot resolves the current rate for one unit of base in quote units.
// Providers are tried strictly in order, first usable value wins. When
// all of them fail the caller gets genchi.ErrRateUnavailable; spot
// rates are never synthesized.
func (r *Resolver) Spot(ctx context.Context, base, quote string) (float64, error) {
	attempts := []spotAttempt{
		{"exchangerate.host", func(ctx context.Context) (float64, error) {
			return r.XHost.Convert(ctx, base, quote)
		}},
		{"frankfurter", func(ctx context.Context) (float64, error) {
			return r.Frankfurter.Latest(ctx, base, quote)
		}},
		{"open.er-api", func(ctx context.Context) (float64, error) {
			return r.OpenERAPI.Latest(ctx, base, quote)
		}},
	}

	for _, a := range attempts {
		rate, err := a.fn(ctx)
		if err != nil {
			r.logger().WithField("provider", a.name).WithError(err).Warn("spot rate attempt failed")
			continue
		}

		return rate, nil
	}

	return 0, genchi.ErrRateUnavailable
}

// SeriesFor resolves one rate per calendar day over span. Real data is
// tried first (bulk series, then per-day calls, then the secondary
// vendor); when everything fails the series is synthesized, anchored at
// a real spot rate if one can still be fetched, and flagged synthetic.
// SeriesFor therefore always has something to return.
func (r *Resolver) SeriesFor(ctx context.Context, base, quote string, span genchi.DateRange) genchi.Series {
	days := span.Days()

	attempts := []seriesAttempt{
		{"exchangerate.host timeseries", func(ctx context.Context) ([]genchi.RatePoint, error) {
			return r.XHost.Timeseries(ctx, base, quote, span)
		}},
		{"exchangerate.host daily", func(ctx context.Context) ([]genchi.RatePoint, error) {
			return r.dailySeries(ctx, base, quote, days)
		}},
		{"frankfurter range", func(ctx context.Context) ([]genchi.RatePoint, error) {
			return r.Frankfurter.Range(ctx, base, quote, span)
		}},
	}

	for _, a := range attempts {
		points, err := a.fn(ctx)
		if err != nil {
			r.logger().WithField("provider", a.name).WithError(err).Warn("series attempt failed")
			continue
		}

		return genchi.Series{Points: points}
	}

	if anchor, err := r.Spot(ctx, base, quote); err == nil {
		return genchi.Series{Points: randomWalk(days, anchor, anchoredWalkNoise, r.rng()), Synthetic: true}
	}

	r.logger().Warn("no real rate obtainable, synthesizing from fixed anchor")

	return genchi.Series{Points: randomWalk(days, fixedAnchor, fixedWalkNoise, r.rng()), Synthetic: true}
}

// dailySeries hits the single-day historical endpoint once per day in
// the range, all at once. Partial results are fine; only zero usable
// days is a failure. Output order comes from an explicit sort, never
// from response arrival order.
func (r *Resolver) dailySeries(ctx context.Context, base, quote string, days []string) ([]genchi.RatePoint, error) {
	results := make([]genchi.RatePoint, len(days))
	fetched := make([]bool, len(days))

	var wg sync.WaitGroup

	for i, day := range days {
		wg.Add(1)

		go func(i int, day string) {
			defer wg.Done()

			rate, err := r.XHost.Day(ctx, base, quote, day)
			if err != nil {
				return
			}

			results[i] = genchi.RatePoint{Date: day, Rate: rate}
			fetched[i] = true
		}(i, day)
	}

	wg.Wait()

	points := make([]genchi.RatePoint, 0, len(days))
	for i := range results {
		if fetched[i] {
			points = append(points, results[i])
		}
	}

	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}

func (r *Resolver) logger() *logrus.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.StandardLogger()
}

func (r *Resolver) rng() *rand.Rand {
	if r.Rand != nil {
		return r.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
