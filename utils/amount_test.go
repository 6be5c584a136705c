package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/receipt-scan-service/dto"
)

func candidate(value string, weight float64) dto.AmountCandidate {
	return dto.AmountCandidate{
		Value:    decimal.RequireFromString(value),
		Strategy: dto.StrategyKeywordAdjacent,
		Weight:   weight,
	}
}

func TestSelectAmountEmpty(t *testing.T) {
	assert.Nil(t, SelectAmount(nil, ParseOptions{}))
}

func TestSelectAmountWeightWins(t *testing.T) {
	candidates := []dto.AmountCandidate{
		candidate("999.99", 1),
		candidate("120.00", 10),
	}

	selected := SelectAmount(candidates, ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("120.00")))
}

func TestSelectAmountTieBreaksOnValue(t *testing.T) {
	candidates := []dto.AmountCandidate{
		candidate("50.00", 5),
		candidate("100.00", 5),
	}

	selected := SelectAmount(candidates, ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("100.00")))
}

func TestSelectAmountInfersMissedDecimal(t *testing.T) {
	// 4-digit integers are a thermal-printer OCR signature for a lost
	// decimal point: 1095 reads as 10.95.
	selected := SelectAmount([]dto.AmountCandidate{candidate("1095", 5)}, ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("10.95")))
}

func TestSelectAmountKeepsIntegerWhenCorrectionImplausible(t *testing.T) {
	// With a ceiling of 50 the reinterpretation 95.00 is out of bounds,
	// so the selected integer stays as-is.
	opts := ParseOptions{MaxAmount: decimal.NewFromInt(50)}

	selected := SelectAmount([]dto.AmountCandidate{candidate("9500", 5)}, opts)

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.NewFromInt(9500)))
}

func TestSelectAmountCorrectionAppliesOnce(t *testing.T) {
	// 9500 -> 95.00 under the default ceiling; the result is not a
	// 4-digit integer, so no second pass happens.
	selected := SelectAmount([]dto.AmountCandidate{candidate("9500", 5)}, ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("95.00")))
}

func TestSelectAmountLeavesDecimalsAlone(t *testing.T) {
	selected := SelectAmount([]dto.AmountCandidate{candidate("1095.85", 1)}, ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("1095.85")))
}

func TestExtractCandidatesCurrencyTagged(t *testing.T) {
	n := NormalizeReceiptText("Some Store\nTotal Rs 299")

	candidates := ExtractAmountCandidates(n, ParseOptions{})

	assert.NotEmpty(t, candidates)
	best := candidates[0]
	assert.Equal(t, dto.StrategyCurrencyTagged, best.Strategy)
	assert.Equal(t, float64(10), best.Weight)
	assert.True(t, best.Value.Equal(decimal.NewFromInt(299)))
}

func TestExtractCandidatesSavedLinesExcluded(t *testing.T) {
	n := NormalizeReceiptText("Total: 500.00\nYou Saved: 500.00")

	candidates := ExtractAmountCandidates(n, ParseOptions{})

	assert.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.NotContains(t, c.SourceLine, "saved")
	}

	selected := SelectAmount(candidates, ParseOptions{})
	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("500.00")))
}

func TestExtractCandidatesSubtotalExcluded(t *testing.T) {
	n := NormalizeReceiptText("Subtotal: 400.00\nTotal: 450.00")

	selected := SelectAmount(ExtractAmountCandidates(n, ParseOptions{}), ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("450.00")))
}

func TestExtractCandidatesFallbackFloor(t *testing.T) {
	// A lone small number with no keyword or currency context is noise,
	// not a bill total.
	n := NormalizeReceiptText("Corner Shop\n23")

	candidates := ExtractAmountCandidates(n, ParseOptions{})

	assert.Empty(t, candidates)
}

func TestExtractCandidatesFallbackPrefersDecimals(t *testing.T) {
	n := NormalizeReceiptText("Corner Shop\n120.50\n900")

	selected := SelectAmount(ExtractAmountCandidates(n, ParseOptions{}), ParseOptions{})

	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.RequireFromString("120.50")))
}

func TestExtractCandidatesPhoneNumberIgnored(t *testing.T) {
	n := NormalizeReceiptText("Call us: 9876543210\nTotal Rs 299")

	candidates := ExtractAmountCandidates(n, ParseOptions{})

	for _, c := range candidates {
		assert.True(t, c.Value.LessThan(decimal.NewFromInt(5000)))
	}

	selected := SelectAmount(candidates, ParseOptions{})
	assert.NotNil(t, selected)
	assert.True(t, selected.Equal(decimal.NewFromInt(299)))
}

func TestExtractCandidatesCeilingConfigurable(t *testing.T) {
	n := NormalizeReceiptText("Total Rs 7500")

	assert.Empty(t, ExtractAmountCandidates(n, ParseOptions{}))

	raised := ParseOptions{MaxAmount: decimal.NewFromInt(10000)}
	candidates := ExtractAmountCandidates(n, raised)
	assert.NotEmpty(t, candidates)
}
