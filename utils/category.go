package utils

import "strings"

// Expense categories. Every classification resolves to one of these,
// never to anything else and never to empty.
const (
	CategoryFood          = "food"
	CategoryShopping      = "shopping"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryUtilities     = "utilities"
	CategoryHealthcare    = "healthcare"
	CategoryEducation     = "education"
	CategoryOther         = "other"
)

// Categories returns the fixed category set in display order.
func Categories() []string {
	return []string{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}

// categoryRules are checked in order; the first keyword hit wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryFood, []string{"swiggy", "zomato", "food", "restaurant", "cafe", "pizza", "burger", "domino", "mcdonald", "starbucks", "kfc"}},
	{CategoryShopping, []string{"amazon", "flipkart", "myntra", "shopping", "store", "mart", "mall", "bazaar"}},
	{CategoryTransport, []string{"uber", "ola", "rapido", "irctc", "taxi", "transport", "auto", "cab", "metro", "petrol", "fuel"}},
	{CategoryEntertainment, []string{"netflix", "prime", "hotstar", "spotify", "bookmyshow", "entertainment", "movie", "cinema"}},
	{CategoryUtilities, []string{"recharge", "mobile", "bill", "electricity", "water", "gas", "jio", "airtel", "broadband"}},
	{CategoryHealthcare, []string{"medical", "hospital", "pharmacy", "doctor", "clinic", "apollo", "medplus"}},
	{CategoryEducation, []string{"school", "college", "course", "tuition", "academy", "udemy"}},
}

// CategoryFromMerchant maps a merchant name to its spending category.
// Total over all strings: anything unmatched is "other".
func CategoryFromMerchant(merchantName string) string {
	name := strings.ToLower(merchantName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
