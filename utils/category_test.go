package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromMerchant(t *testing.T) {
	cases := map[string]string{
		"Swiggy":          CategoryFood,
		"Domino's":        CategoryFood,
		"D-Mart":          CategoryShopping,
		"Amazon":          CategoryShopping,
		"Uber":            CategoryTransport,
		"Netflix":         CategoryEntertainment,
		"Airtel Recharge": CategoryUtilities,
		"Apollo Pharmacy": CategoryHealthcare,
		"City College":    CategoryEducation,
		"Acme Widgets":    CategoryOther,
	}

	for merchant, want := range cases {
		assert.Equal(t, want, CategoryFromMerchant(merchant), "merchant %q", merchant)
	}
}

func TestCategoryTotalOverAllStrings(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range Categories() {
		valid[c] = true
	}

	inputs := []string{"", "   ", "1234", "???", UnknownMerchant, "Ümlaut Straße"}
	for _, in := range inputs {
		got := CategoryFromMerchant(in)
		assert.True(t, valid[got], "category %q for input %q not in fixed set", got, in)
	}
}

func TestCategoryDefaultIsOther(t *testing.T) {
	assert.Equal(t, CategoryOther, CategoryFromMerchant(""))
	assert.Equal(t, CategoryOther, CategoryFromMerchant(UnknownMerchant))
}
