package genchi

import "strings"

var symbols = map[string]string{
	"USD": "$",
	"JPY": "¥",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
	"NZD": "NZ$",
	"CHF": "Fr",
	"KRW": "₩",
	"CNH": "¥",
	"CNY": "¥",
	"HKD": "HK$",
	"TWD": "NT$",
	"THB": "฿",
	"SGD": "S$",
	"PHP": "₱",
	"MYR": "RM",
	"IDR": "Rp",
	"VND": "₫",
	"INR": "₹",
	"AED": "AED",
	"SEK": "kr",
	"DKK": "kr",
	"NOK": "kr",
	"TRY": "₺",
	"MXN": "Mex$",
	"ZAR": "R",
}

// Region labels shown next to the code in pair pickers.
var regionNames = map[string]string{
	"USD": "アメリカ",
	"JPY": "日本",
	"EUR": "ユーロ圏",
	"GBP": "イギリス",
	"AUD": "オーストラリア",
	"CAD": "カナダ",
	"NZD": "ニュージーランド",
	"CHF": "スイス",
	"KRW": "韓国",
	"CNH": "中国",
	"CNY": "中国",
	"HKD": "香港",
	"TWD": "台湾",
	"THB": "タイ",
	"SGD": "シンガポール",
	"PHP": "フィリピン",
	"MYR": "マレーシア",
	"IDR": "インドネシア",
	"VND": "ベトナム",
	"INR": "インド",
	"AED": "アラブ首長国連邦",
	"SEK": "スウェーデン",
	"DKK": "デンマーク",
	"NOK": "ノルウェー",
	"TRY": "トルコ",
	"MXN": "メキシコ",
	"ZAR": "南アフリカ",
}

// SymbolOf returns the display symbol for a currency code, or the code
// itself when there is no symbol for it. Never fails.
func SymbolOf(code string) string {
	c := strings.ToUpper(code)
	if s, ok := symbols[c]; ok {
		return s
	}
	return c
}

// NameOf returns the region label for a currency code, or the code
// itself when unknown. Never fails.
func NameOf(code string) string {
	c := strings.ToUpper(code)
	if n, ok := regionNames[c]; ok {
		return n
	}
	return c
}
