package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/receipt-scan-service/dto"
)

func fixedClock() time.Time {
	return time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseReceiptStoreScenario(t *testing.T) {
	text := "D-MART\nItems: 12 Qty: 13 1095.85\nT 1095.85"

	draft := ParseReceipt(text, ParseOptions{Now: fixedClock})

	assert.Equal(t, "D-Mart", draft.MerchantName)
	assert.NotNil(t, draft.Amount)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("1095.85")))
	assert.Equal(t, CategoryShopping, draft.Category)
}

func TestParseReceiptTotalKeyword(t *testing.T) {
	text := "Swiggy Order\nDate: 15/10/2024\nGrand Total Rs 450.50\nThank you"

	draft := ParseReceipt(text, ParseOptions{Now: fixedClock})

	assert.Equal(t, "Swiggy", draft.MerchantName)
	assert.Equal(t, CategoryFood, draft.Category)
	assert.NotNil(t, draft.Amount)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("450.50")))
	assert.Equal(t, "2024-10-15", draft.Date)
	assert.Equal(t, "INR", draft.Currency)
}

func TestParseReceiptAlwaysReturnsDraft(t *testing.T) {
	draft := ParseReceipt("", ParseOptions{Now: fixedClock})

	assert.Equal(t, UnknownMerchant, draft.MerchantName)
	assert.Nil(t, draft.Amount)
	assert.Equal(t, CategoryOther, draft.Category)
	assert.Equal(t, "2024-10-15", draft.Date)
	assert.NotEmpty(t, draft.Note)
}

func TestParseReceiptSmallLoneNumberStaysAbsent(t *testing.T) {
	draft := ParseReceipt("Corner Shop\n23", ParseOptions{Now: fixedClock})

	assert.Nil(t, draft.Amount)
}

func TestParseReceiptIdempotent(t *testing.T) {
	text := "Big Bazaar\nTotal: 1,234.50\nDate: 15/10/2024"
	opts := ParseOptions{Now: fixedClock}

	first := ParseReceipt(text, opts)
	second := ParseReceipt(text, opts)

	assert.Equal(t, first, second)
}

func TestParseReceiptDateFallsBackToScanDate(t *testing.T) {
	draft := ParseReceipt("Fresh Mart\nTotal: 120.00", ParseOptions{Now: fixedClock})

	assert.Equal(t, "2024-10-15", draft.Date)
}

func TestParseReceiptNote(t *testing.T) {
	text := "Fresh Mart\nThank you for shopping\nTotal: 120.00"

	draft := ParseReceipt(text, ParseOptions{Now: fixedClock})

	assert.Contains(t, draft.Note, "Thank you for shopping")
	assert.LessOrEqual(t, len(draft.Note), 100)
}

func TestDraftFromQRPayload(t *testing.T) {
	amount := decimal.RequireFromString("450.50")
	payload := dto.QRPayload{MerchantName: "Swiggy", Amount: &amount}

	draft := DraftFromQRPayload(payload, ParseOptions{Now: fixedClock})

	assert.Equal(t, "Swiggy", draft.MerchantName)
	assert.NotNil(t, draft.Amount)
	assert.True(t, draft.Amount.Equal(amount))
	assert.Equal(t, CategoryFood, draft.Category)
	assert.Equal(t, "2024-10-15", draft.Date)
	assert.Equal(t, "INR", draft.Currency)
}

func TestDraftFromQRPayloadAbsentAmount(t *testing.T) {
	draft := DraftFromQRPayload(dto.QRPayload{MerchantName: "Swiggy"}, ParseOptions{Now: fixedClock})

	assert.Nil(t, draft.Amount)
	assert.Equal(t, CategoryFood, draft.Category)
}
