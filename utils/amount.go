package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/receipt-scan-service/dto"
)

var (
	// Number adjacent to a currency symbol or code, either side.
	currencyTaggedRe = regexp.MustCompile(`(?:₹|€|£|\$|\brs\.?|\binr\b|\busd\b|\beur\b|\bgbp\b)\s*(\d{1,6}(?:\.\d{1,2})?)|(\d{1,6}(?:\.\d{1,2})?)\s*(?:₹|€|£|\$|rs\.?\b|inr\b|usd\b|eur\b|gbp\b)`)

	totalKeywordRe = regexp.MustCompile(`\b(grand total|net amount|amount due|total due|bill amount|final amount|to pay|payable|total|balance|charges|amount|due)\b`)

	// Numbers on these lines are money saved, not money owed.
	savedLineRe = regexp.MustCompile(`\b(you sav(?:e|ed)|saved|savings?|discount)\b`)

	// Line-item and subtotal lines must never win over the total.
	subtotalLineRe = regexp.MustCompile(`\bsub\s*total\b`)

	// Lines whose numbers are known non-amounts.
	noiseLineRe = regexp.MustCompile(`\b(phone|ph|mobile|mob|tel|date|time|gstin|gst no|invoice no|bill no)\b`)

	numberRe    = regexp.MustCompile(`\b\d{1,6}(?:\.\d{1,2})?\b`)
	dateShapeRe = regexp.MustCompile(`\b\d{1,4}[/-]\d{1,2}[/-]\d{1,4}\b`)
)

// amountStrategy is one row of the extraction table. Strategies marked
// lastResort only run when the preceding rows produced nothing.
type amountStrategy struct {
	name       dto.CandidateStrategy
	lastResort bool
	extract    func(n NormalizedText, opts ParseOptions) []dto.AmountCandidate
}

var amountStrategies = []amountStrategy{
	{name: dto.StrategyCurrencyTagged, extract: extractCurrencyTagged},
	{name: dto.StrategyKeywordAdjacent, extract: extractKeywordAdjacent},
	{name: dto.StrategyFallback, lastResort: true, extract: extractFallback},
}

// ExtractAmountCandidates runs every extraction strategy over the
// normalized text and collects the candidates. Ranking happens in
// SelectAmount, not here.
func ExtractAmountCandidates(n NormalizedText, opts ParseOptions) []dto.AmountCandidate {
	opts = opts.withDefaults()

	var candidates []dto.AmountCandidate
	for _, strat := range amountStrategies {
		if strat.lastResort && len(candidates) > 0 {
			continue
		}
		candidates = append(candidates, strat.extract(n, opts)...)
	}
	return candidates
}

// SelectAmount ranks candidates by weight then value and returns the head,
// or nil when no candidate exists. A selected 4-digit integer is treated
// as a missed decimal point from thermal-printer OCR and reinterpreted as
// dd.dd, but only when the corrected value stays inside the plausibility
// bounds. The correction is applied once, never recursively.
func SelectAmount(candidates []dto.AmountCandidate, opts ParseOptions) *decimal.Decimal {
	if len(candidates) == 0 {
		return nil
	}
	opts = opts.withDefaults()

	ranked := append([]dto.AmountCandidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})

	best := inferMissedDecimal(ranked[0].Value, opts)
	return &best
}

func inferMissedDecimal(v decimal.Decimal, opts ParseOptions) decimal.Decimal {
	if !v.IsInteger() {
		return v
	}
	if v.LessThan(decimal.NewFromInt(1000)) || v.GreaterThan(decimal.NewFromInt(9999)) {
		return v
	}

	s := v.Truncate(0).String()
	corrected, err := decimal.NewFromString(s[:2] + "." + s[2:])
	if err != nil || !withinBounds(corrected, opts) {
		return v
	}
	return corrected
}

func extractCurrencyTagged(n NormalizedText, opts ParseOptions) []dto.AmountCandidate {
	var out []dto.AmountCandidate
	for _, line := range n.Lower {
		if savedLineRe.MatchString(line) {
			continue
		}
		for _, m := range currencyTaggedRe.FindAllStringSubmatch(line, -1) {
			raw := m[1]
			if raw == "" {
				raw = m[2]
			}
			if v, ok := parseAmount(raw, opts); ok {
				out = append(out, dto.AmountCandidate{
					Value:      v,
					SourceLine: line,
					Strategy:   dto.StrategyCurrencyTagged,
					Weight:     10,
				})
			}
		}
	}
	return out
}

func extractKeywordAdjacent(n NormalizedText, opts ParseOptions) []dto.AmountCandidate {
	var out []dto.AmountCandidate
	for _, line := range n.Lower {
		if savedLineRe.MatchString(line) || subtotalLineRe.MatchString(line) {
			continue
		}
		// Item lines carry per-item prices, never the bill total.
		if strings.HasPrefix(line, "item") {
			continue
		}

		kwLoc := totalKeywordRe.FindStringIndex(line)
		if kwLoc == nil {
			continue
		}

		for _, numLoc := range numberRe.FindAllStringIndex(line, -1) {
			v, ok := parseAmount(line[numLoc[0]:numLoc[1]], opts)
			if !ok || !v.GreaterThan(decimal.NewFromInt(1)) {
				continue
			}
			distance := numLoc[0] - kwLoc[0]
			if distance < 0 {
				distance = -distance
			}
			out = append(out, dto.AmountCandidate{
				Value:      v,
				SourceLine: line,
				Strategy:   dto.StrategyKeywordAdjacent,
				Weight:     5 / float64(1+distance),
			})
		}
	}
	return out
}

// extractFallback scans every line for standalone numbers once the tagged
// and keyword strategies came up empty. Numbers with an explicit decimal
// point outrank bare integers, and anything under the fallback floor is
// too small to be a plausible bill total.
func extractFallback(n NormalizedText, opts ParseOptions) []dto.AmountCandidate {
	var out []dto.AmountCandidate
	for _, line := range n.Lower {
		if savedLineRe.MatchString(line) || noiseLineRe.MatchString(line) {
			continue
		}

		scannable := dateShapeRe.ReplaceAllString(line, "")
		for _, raw := range numberRe.FindAllString(scannable, -1) {
			v, ok := parseAmount(raw, opts)
			if !ok || v.LessThan(opts.FallbackFloor) {
				continue
			}
			weight := 0.5
			if strings.Contains(raw, ".") {
				weight = 1
			}
			out = append(out, dto.AmountCandidate{
				Value:      v,
				SourceLine: line,
				Strategy:   dto.StrategyFallback,
				Weight:     weight,
			})
		}
	}
	return out
}

// parseAmount parses a raw number token and applies the plausibility bounds.
func parseAmount(raw string, opts ParseOptions) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(raw)
	if err != nil || !withinBounds(v, opts) {
		return decimal.Decimal{}, false
	}
	return v, true
}

func withinBounds(v decimal.Decimal, opts ParseOptions) bool {
	return v.GreaterThan(opts.MinAmount) && v.LessThan(opts.MaxAmount)
}
