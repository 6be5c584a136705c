package utils

import (
	"regexp"
	"strings"
)

// NormalizedText is the cleaned view of raw OCR output that the
// extractors operate on. Lines keeps the original casing for merchant
// extraction, Lower is the case-folded counterpart for keyword matching.
type NormalizedText struct {
	Lines []string
	Lower []string
	Text  string // lowercased full text, one entry per receipt line
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	commaNumberRe  = regexp.MustCompile(`\d[\d,]*\d`)
	longDigitRe    = regexp.MustCompile(`\d{10,}`)
	currencyMarkRe = regexp.MustCompile(`(?i)[₹$€£¥]|\brs\.?|\binr\b|\busd\b|\beur\b|\bgbp\b`)
)

// NormalizeReceiptText splits raw OCR text into trimmed non-empty lines,
// collapses whitespace runs, resolves comma separators and strips long
// digit runs (phone numbers, tax IDs) from lines that carry no money signal.
func NormalizeReceiptText(raw string) NormalizedText {
	var n NormalizedText

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line == "" || isDecorative(line) {
			continue
		}

		line = normalizeCommaSeparators(line)
		lower := strings.ToLower(line)

		// Phone numbers and tax IDs are 10+ digit runs; keep them only
		// when the same line carries a currency mark or a total keyword,
		// otherwise they pollute amount scanning.
		if longDigitRe.MatchString(line) &&
			!currencyMarkRe.MatchString(line) && !totalKeywordRe.MatchString(lower) {
			line = strings.TrimSpace(whitespaceRe.ReplaceAllString(longDigitRe.ReplaceAllString(line, ""), " "))
			if line == "" {
				continue
			}
			lower = strings.ToLower(line)
		}

		n.Lines = append(n.Lines, line)
		n.Lower = append(n.Lower, lower)
	}

	n.Text = strings.Join(n.Lower, "\n")
	return n
}

// normalizeCommaSeparators resolves commas inside number groups.
// Rule (single consistent interpretation, the OCR variants disagree):
// a comma followed by exactly two trailing digits reads as a decimal
// separator ("299,00" -> "299.00"); every other comma is a thousands
// separator and is dropped ("1,234" -> "1234").
func normalizeCommaSeparators(line string) string {
	return commaNumberRe.ReplaceAllStringFunc(line, func(tok string) string {
		if i := strings.LastIndex(tok, ","); i >= 0 && len(tok)-i-1 == 2 {
			head := strings.ReplaceAll(tok[:i], ",", "")
			return head + "." + tok[i+1:]
		}
		return strings.ReplaceAll(tok, ",", "")
	})
}

// isDecorative reports whether a line is pure separator noise ("-----").
func isDecorative(line string) bool {
	for _, r := range line {
		if r >= '0' && r <= '9' {
			return false
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
