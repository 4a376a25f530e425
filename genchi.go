package genchi

import (
	"context"
	"errors"
)

// ErrRateUnavailable is returned when every spot-rate provider has been
// tried once and none produced a usable rate. There is no retry inside
// the cascade; a retry is a fresh user-initiated call.
var ErrRateUnavailable = errors.New("all rate providers failed")

type (
	// RateResolver resolves a currency pair against public rate APIs.
	// Codes passed in must already be alias-normalized via Pair.Lookup.
	RateResolver interface {
		// Spot returns how many units of quote one unit of base buys.
		Spot(ctx context.Context, base, quote string) (float64, error)

		// SeriesFor returns one rate per day over the range. It never
		// fails: when no provider has data it degrades to a synthetic
		// series and says so via Series.Synthetic.
		SeriesFor(ctx context.Context, base, quote string, span DateRange) Series
	}

	// HistoryStore owns the persisted conversion history. Persistence
	// problems are absorbed and logged, never surfaced: a corrupt or
	// missing blob reads as an empty list, a failed write is dropped.
	HistoryStore interface {
		Load(ctx context.Context) HistoryList
		Save(ctx context.Context, list HistoryList)
		Append(ctx context.Context, entry HistoryEntry) HistoryEntry
		DeleteAt(ctx context.Context, index int) HistoryList
		Reorder(ctx context.Context, list HistoryList)
	}
)
