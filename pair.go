package genchi

import "strings"

// Offshore renminbi trades under its own code, but every provider this
// app talks to quotes it as onshore CNY.
const offshoreYuan = "CNH"

// Pair is an ordered currency pair. The zero Pair means "nothing
// selected", which is a normal state for the UI, not an error.
type Pair struct {
	Base  string
	Quote string
}

// ParsePair splits a "USD-JPY" style token. Whitespace is stripped and
// codes are uppercased. Tokens without a hyphen yield the zero Pair.
func ParsePair(token string) Pair {
	s := strings.ToUpper(strings.Join(strings.Fields(token), ""))
	if !strings.Contains(s, "-") {
		return Pair{}
	}
	parts := strings.SplitN(s, "-", 2)
	return Pair{Base: parts[0], Quote: parts[1]}
}

// Selected reports whether both sides of the pair are present.
func (p Pair) Selected() bool {
	return p.Base != "" && p.Quote != ""
}

// Lookup returns the pair with both codes alias-normalized for provider
// calls. Display identity keeps the original codes; only data lookups
// use the aliased ones.
func (p Pair) Lookup() Pair {
	return Pair{Base: AliasFiat(p.Base), Quote: AliasFiat(p.Quote)}
}

func (p Pair) String() string {
	if !p.Selected() {
		return ""
	}
	return p.Base + "-" + p.Quote
}

// AliasFiat rewrites codes that providers do not serve under their own
// name. Currently only CNH, which is served as CNY everywhere.
func AliasFiat(code string) string {
	if strings.EqualFold(code, offshoreYuan) {
		return "CNY"
	}
	return strings.ToUpper(code)
}
