package dto

import "github.com/shopspring/decimal"

// CandidateStrategy identifies which extraction strategy produced an
// amount candidate.
type CandidateStrategy string

const (
	StrategyCurrencyTagged  CandidateStrategy = "currency_tagged"
	StrategyKeywordAdjacent CandidateStrategy = "keyword_adjacent"
	StrategyFallback        CandidateStrategy = "fallback"
)

// AmountCandidate is a provisionally extracted monetary value with a
// confidence weight. Candidates live only for the duration of one parse.
type AmountCandidate struct {
	Value      decimal.Decimal   `json:"value"`
	SourceLine string            `json:"source_line"`
	Strategy   CandidateStrategy `json:"strategy"`
	Weight     float64           `json:"weight"`
}

// ExpenseDraft is the pre-fill record handed back to the expense form.
// A nil Amount means extraction failed and the user has to type it in;
// every other field always carries a usable value.
type ExpenseDraft struct {
	MerchantName string           `json:"merchant_name"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Category     string           `json:"category"`
	Date         string           `json:"date"` // YYYY-MM-DD
	Note         string           `json:"note,omitempty"`
	Currency     string           `json:"currency"`
}

// QRPayload is the parsed view of a UPI payment URI.
type QRPayload struct {
	MerchantName string           `json:"merchant_name"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
}
