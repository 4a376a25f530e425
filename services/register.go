package services

import (
	"context"
	"time"

	"github.com/unotto/genchi"
)

// Register saves conversions into the history. A failed spot resolution
// blocks the save; nothing is appended without a real rate.
type Register struct {
	Resolver genchi.RateResolver
	History  genchi.HistoryStore
}

// Register resolves the pair, converts amount and appends the resulting
// entry at the front of the history. The returned entry carries its
// freshly assigned ID.
func (s Register) Register(ctx context.Context, pairToken, amount, memo string) (genchi.HistoryEntry, error) {
	quote, err := Quoter{Resolver: s.Resolver}.Quote(ctx, pairToken, amount)
	if err != nil {
		return genchi.HistoryEntry{}, err
	}

	entry := genchi.HistoryEntry{
		Date:  time.Now().Format("2006/1/2"),
		Left:  quote.Left(),
		Right: quote.Right() + "\n" + quote.UnitLine(),
		Memo:  memo,
	}

	return s.History.Append(ctx, entry), nil
}
