package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyMerchantBrandKeyword(t *testing.T) {
	n := NormalizeReceiptText("welcome to D-MART\nTotal 500")

	assert.Equal(t, "D-Mart", IdentifyMerchant(n))
}

func TestIdentifyMerchantFirstPlausibleLine(t *testing.T) {
	n := NormalizeReceiptText("Corner Tea House\n12 Baker Street\nTotal: 40.00")

	assert.Equal(t, "Corner Tea House", IdentifyMerchant(n))
}

func TestIdentifyMerchantSkipsDigitAndCurrencyLines(t *testing.T) {
	n := NormalizeReceiptText("12345 Receipt\nRs 500 paid\nGreen Grocers")

	assert.Equal(t, "Green Grocers", IdentifyMerchant(n))
}

func TestIdentifyMerchantStripsNoise(t *testing.T) {
	n := NormalizeReceiptText("Cafe* Nero! #42\nTotal: 12.00")

	assert.Equal(t, "Cafe Nero", IdentifyMerchant(n))
}

func TestIdentifyMerchantTruncates(t *testing.T) {
	n := NormalizeReceiptText("The Extraordinarily Long Emporium Of Curiosities\nTotal: 10.00")

	name := IdentifyMerchant(n)
	assert.LessOrEqual(t, len(name), 25)
	assert.True(t, strings.HasPrefix(name, "The Extraordinarily"))
}

func TestIdentifyMerchantSentinel(t *testing.T) {
	n := NormalizeReceiptText("42\n99")

	assert.Equal(t, UnknownMerchant, IdentifyMerchant(n))
}
