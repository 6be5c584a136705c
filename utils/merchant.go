package utils

import (
	"regexp"
	"strings"
)

// UnknownMerchant is the sentinel used when no merchant line is found.
const UnknownMerchant = "Unknown Merchant"

const maxMerchantLen = 25

// merchantBrands maps a lowercase keyword found anywhere in the receipt
// to the brand's canonical display name. First match wins, so the more
// specific entries sit above the generic ones.
var merchantBrands = []struct {
	keyword string
	name    string
}{
	{"swiggy", "Swiggy"},
	{"zomato", "Zomato"},
	{"domino", "Domino's"},
	{"mcdonald", "McDonald's"},
	{"starbucks", "Starbucks"},
	{"kfc", "KFC"},
	{"d-mart", "D-Mart"},
	{"dmart", "D-Mart"},
	{"big bazaar", "Big Bazaar"},
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"myntra", "Myntra"},
	{"uber", "Uber"},
	{"rapido", "Rapido"},
	{"irctc", "IRCTC"},
	{"ola", "Ola"},
	{"netflix", "Netflix"},
	{"hotstar", "Hotstar"},
	{"spotify", "Spotify"},
	{"bookmyshow", "BookMyShow"},
	{"airtel", "Airtel"},
	{"jio", "Jio"},
	{"apollo", "Apollo Pharmacy"},
	{"medplus", "MedPlus"},
}

var (
	merchantStripRe = regexp.MustCompile(`[^a-zA-Z\s&-]`)
	leadingDigitRe  = regexp.MustCompile(`^\d`)
	anyCurrencyRe   = regexp.MustCompile(`[₹$€£¥]|\bRs\b|\bINR\b|\bUSD\b`)
)

// IdentifyMerchant resolves the merchant name from normalized receipt text.
// Known brand keywords win; otherwise the first plausible original-case
// line is cleaned up and used, truncated to a bounded length.
func IdentifyMerchant(n NormalizedText) string {
	for _, brand := range merchantBrands {
		if strings.Contains(n.Text, brand.keyword) {
			return brand.name
		}
	}

	for i, line := range n.Lines {
		if len(line) <= 3 || leadingDigitRe.MatchString(line) || anyCurrencyRe.MatchString(line) {
			continue
		}
		// Keyword lines describe the bill, not the merchant.
		if totalKeywordRe.MatchString(n.Lower[i]) {
			continue
		}

		name := strings.TrimSpace(merchantStripRe.ReplaceAllString(line, ""))
		if len(name) <= 2 {
			continue
		}
		if len(name) > maxMerchantLen {
			name = strings.TrimSpace(name[:maxMerchantLen])
		}
		return name
	}

	return UnknownMerchant
}
