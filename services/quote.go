package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/unotto/genchi"
)

var ErrNoPairSelected = errors.New("no currency pair selected")

type (
	// Quote is one immediate conversion, ready for display.
	Quote struct {
		Pair      genchi.Pair
		Amount    decimal.Decimal
		Rate      float64
		Converted decimal.Decimal
	}

	// Quoter turns user input into a Quote. The pair token keeps its
	// display identity (CNH stays CNH on screen); only the provider
	// lookup uses the aliased codes.
	Quoter struct {
		Resolver genchi.RateResolver
	}
)

// Left renders the entered side: "$100".
func (q Quote) Left() string {
	return FormatMoney(genchi.SymbolOf(q.Pair.Base), q.Amount)
}

// Right renders the converted side: "¥15,279".
func (q Quote) Right() string {
	return FormatMoney(genchi.SymbolOf(q.Pair.Quote), q.Converted)
}

// UnitLine renders the secondary line: "$1 = ¥152.79".
func (q Quote) UnitLine() string {
	return genchi.SymbolOf(q.Pair.Base) + "1 = " + genchi.SymbolOf(q.Pair.Quote) + FormatRate(q.Rate)
}

// Line renders the whole conversion: "$100 → ¥15,279".
func (q Quote) Line() string {
	return q.Left() + " → " + q.Right()
}

// Quote resolves a spot rate for the pair token and converts amount.
// Missing pair or amount are validation conditions; a provider cascade
// exhaustion surfaces as genchi.ErrRateUnavailable, which blocks both
// display and saving until the user retries.
func (s Quoter) Quote(ctx context.Context, pairToken, amount string) (Quote, error) {
	pair := genchi.ParsePair(pairToken)
	if !pair.Selected() {
		return Quote{}, ErrNoPairSelected
	}

	num, err := ParseAmount(amount)
	if err != nil {
		return Quote{}, err
	}

	lookup := pair.Lookup()

	rate, err := s.Resolver.Spot(ctx, lookup.Base, lookup.Quote)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Pair:      pair,
		Amount:    decimal.NewFromFloat(num),
		Rate:      rate,
		Converted: Convert(num, rate),
	}, nil
}
