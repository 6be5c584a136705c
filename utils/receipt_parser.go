package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/receipt-scan-service/dto"
	"github.com/Aashish23092/receipt-scan-service/utils/currency"
)

// ParseOptions configures one extraction call. The zero value works;
// withDefaults fills in the domain defaults at call time so there is no
// package-level mutable state.
type ParseOptions struct {
	MinAmount       decimal.Decimal  // exclusive plausibility floor
	MaxAmount       decimal.Decimal  // exclusive plausibility ceiling
	FallbackFloor   decimal.Decimal  // minimum for untagged fallback numbers
	DefaultCurrency string           // used when detection finds no marker
	Now             func() time.Time // injectable clock for the no-date fallback
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.MinAmount.IsZero() {
		o.MinAmount = decimal.NewFromFloat(0.01)
	}
	if o.MaxAmount.IsZero() {
		o.MaxAmount = decimal.NewFromInt(5000)
	}
	if o.FallbackFloor.IsZero() {
		o.FallbackFloor = decimal.NewFromInt(50)
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = "USD"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ParseReceipt runs the full extraction pipeline over recognized receipt
// text and assembles the expense draft. It always returns a draft: on
// total extraction failure the merchant falls back to the sentinel, the
// amount stays absent, the category resolves to "other" and the date to
// the scan date. An absent amount is the signal for manual entry, not an
// error.
func ParseReceipt(recognizedText string, opts ParseOptions) dto.ExpenseDraft {
	opts = opts.withDefaults()

	n := NormalizeReceiptText(recognizedText)

	candidates := ExtractAmountCandidates(n, opts)
	amount := SelectAmount(candidates, opts)

	merchant := IdentifyMerchant(n)

	code := currency.Detect(n.Text)
	if code == "" {
		code = opts.DefaultCurrency
	}

	return dto.ExpenseDraft{
		MerchantName: merchant,
		Amount:       amount,
		Category:     CategoryFromMerchant(merchant),
		Date:         ExtractDate(n.Text, opts.Now()),
		Note:         buildNote(n, merchant),
		Currency:     code,
	}
}

// DraftFromQRPayload assembles a draft from a parsed UPI payload. The
// structured path needs no heuristics and no plausibility ceiling; UPI
// amounts are rupee-denominated.
func DraftFromQRPayload(payload dto.QRPayload, opts ParseOptions) dto.ExpenseDraft {
	opts = opts.withDefaults()

	merchant := payload.MerchantName
	if merchant == "" {
		merchant = UnknownMerchant
	}

	return dto.ExpenseDraft{
		MerchantName: merchant,
		Amount:       payload.Amount,
		Category:     CategoryFromMerchant(merchant),
		Date:         opts.Now().Format("2006-01-02"),
		Note:         fmt.Sprintf("Scanned from %s QR code", merchant),
		Currency:     "INR",
	}
}

var noteSkipRe = regexp.MustCompile(`\b(total|amount)\b`)

// buildNote composes a short note from the remaining descriptive lines.
func buildNote(n NormalizedText, merchant string) string {
	var kept []string
	for i, line := range n.Lines {
		if len(line) <= 3 || leadingDigitRe.MatchString(line) || noteSkipRe.MatchString(n.Lower[i]) {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 3 {
			break
		}
	}

	note := strings.Join(kept, " ")
	if len(note) > 100 {
		note = note[:100]
	}
	if note == "" {
		note = fmt.Sprintf("Scanned from %s receipt", merchant)
	}
	return note
}
