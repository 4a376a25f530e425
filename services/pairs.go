package services

import "github.com/unotto/genchi"

// The pair selection offered by the app, all quoted against JPY.
var pairs = []string{
	"USD-JPY", "EUR-JPY", "GBP-JPY", "AUD-JPY", "CAD-JPY", "NZD-JPY", "CHF-JPY",
	"KRW-JPY", "CNH-JPY", "HKD-JPY", "TWD-JPY", "THB-JPY", "SGD-JPY", "PHP-JPY",
	"MYR-JPY", "IDR-JPY", "VND-JPY", "INR-JPY", "AED-JPY", "SEK-JPY", "DKK-JPY",
	"NOK-JPY", "TRY-JPY", "MXN-JPY", "ZAR-JPY",
}

// Pairs returns the selectable pair tokens in display order.
func Pairs() []string {
	out := make([]string, len(pairs))
	copy(out, pairs)

	return out
}

// PairLabel renders a token as "アメリカ USD → 日本 JPY". Unparseable
// tokens come back unchanged.
func PairLabel(token string) string {
	pair := genchi.ParsePair(token)
	if !pair.Selected() {
		return token
	}

	return genchi.NameOf(pair.Base) + " " + pair.Base + " → " + genchi.NameOf(pair.Quote) + " " + pair.Quote
}
