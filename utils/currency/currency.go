// Package currency holds the static currency table: code to symbol and
// exchange rate lookups plus marker detection in receipt text. The table
// is immutable and process-wide; rates are relative to USD.
package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Info describes one supported currency.
type Info struct {
	Code      string
	Symbol    string
	RateToUSD float64 // units per 1 USD
}

var table = []Info{
	{"USD", "$", 1},
	{"INR", "₹", 83},
	{"EUR", "€", 0.85},
	{"GBP", "£", 0.73},
	{"JPY", "¥", 110},
	{"CAD", "C$", 1.25},
	{"AUD", "A$", 1.35},
	{"CHF", "CHF", 0.92},
	{"CNY", "¥", 6.45},
	{"SEK", "kr", 8.5},
	{"NZD", "NZ$", 1.4},
	{"MXN", "$", 20},
	{"SGD", "S$", 1.35},
	{"HKD", "HK$", 7.8},
	{"NOK", "kr", 8.6},
	{"KRW", "₩", 1180},
	{"TRY", "₺", 8.5},
	{"RUB", "₽", 75},
	{"BRL", "R$", 5.2},
	{"ZAR", "R", 14.5},
}

// detectors are checked in order. Symbol-bearing currencies come first;
// ¥ resolves to JPY even though CNY shares the glyph.
var detectors = []struct {
	code string
	re   *regexp.Regexp
}{
	{"INR", regexp.MustCompile(`₹|\brs\.?\b|\binr\b`)},
	{"EUR", regexp.MustCompile(`€|\beur\b`)},
	{"GBP", regexp.MustCompile(`£|\bgbp\b`)},
	{"JPY", regexp.MustCompile(`¥|\bjpy\b`)},
	{"CNY", regexp.MustCompile(`\bcny\b`)},
	{"USD", regexp.MustCompile(`\$|\busd\b`)},
	{"CAD", regexp.MustCompile(`\bcad\b`)},
	{"AUD", regexp.MustCompile(`\baud\b`)},
	{"CHF", regexp.MustCompile(`\bchf\b`)},
	{"SEK", regexp.MustCompile(`\bsek\b`)},
	{"NZD", regexp.MustCompile(`\bnzd\b`)},
	{"MXN", regexp.MustCompile(`\bmxn\b`)},
	{"SGD", regexp.MustCompile(`\bsgd\b`)},
	{"HKD", regexp.MustCompile(`\bhkd\b`)},
	{"NOK", regexp.MustCompile(`\bnok\b`)},
	{"KRW", regexp.MustCompile(`\bkrw\b`)},
	{"TRY", regexp.MustCompile(`\btry\b`)},
	{"RUB", regexp.MustCompile(`\brub\b`)},
	{"BRL", regexp.MustCompile(`\bbrl\b`)},
	{"ZAR", regexp.MustCompile(`\bzar\b`)},
}

// Lookup returns the table entry for a currency code.
func Lookup(code string) (Info, bool) {
	code = strings.ToUpper(code)
	for _, info := range table {
		if info.Code == code {
			return info, true
		}
	}
	return Info{}, false
}

// Codes returns every supported currency code in table order.
func Codes() []string {
	out := make([]string, len(table))
	for i, info := range table {
		out[i] = info.Code
	}
	return out
}

// Detect scans text for a currency symbol or code and returns the
// matching code, or "" when nothing matches.
func Detect(text string) string {
	lower := strings.ToLower(text)
	for _, d := range detectors {
		if d.re.MatchString(lower) {
			return d.code
		}
	}
	return ""
}

// Convert converts an amount between two currencies via USD. Unknown
// codes leave the amount unchanged.
func Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	fromInfo, okFrom := Lookup(from)
	toInfo, okTo := Lookup(to)
	if !okFrom || !okTo {
		return amount
	}

	rate := decimal.NewFromFloat(toInfo.RateToUSD).Div(decimal.NewFromFloat(fromInfo.RateToUSD))
	return amount.Mul(rate)
}

// Format renders an amount with its currency symbol.
func Format(amount decimal.Decimal, code string) string {
	symbol := "$"
	if info, ok := Lookup(code); ok {
		symbol = info.Symbol
	}
	return symbol + amount.StringFixed(2)
}
