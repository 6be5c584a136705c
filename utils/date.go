package utils

import (
	"regexp"
	"strings"
	"time"
)

// datePatterns are tried in order; the first match wins. Day-first
// numeric dates come before year-first because Indian receipts print
// them that way.
var datePatterns = []struct {
	re      *regexp.Regexp
	layouts []string
}{
	{
		re:      regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
		layouts: []string{"2/1/2006", "2/1/06"},
	},
	{
		re:      regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`),
		layouts: []string{"2006/1/2"},
	},
	{
		re:      regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{2,4})\b`),
		layouts: []string{"Jan 2 2006", "Jan 2 06"},
	},
}

// ExtractDate finds the first date-shaped substring and returns it as
// YYYY-MM-DD. When no date is found the scan date (now) is used.
func ExtractDate(text string, now time.Time) string {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		candidate := canonicalDateToken(m)
		for _, layout := range p.layouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return now.Format("2006-01-02")
}

// canonicalDateToken rebuilds the matched groups with a single separator
// so one layout per shape is enough.
func canonicalDateToken(groups []string) string {
	parts := groups[1:]
	if monthNamed(parts[0]) {
		// "Mon D Y" form
		mon := strings.ToUpper(parts[0][:1]) + strings.ToLower(parts[0][1:])
		return mon + " " + parts[1] + " " + parts[2]
	}
	return strings.Join(parts, "/")
}

func monthNamed(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
