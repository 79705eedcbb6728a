package categorize

import (
	"strings"

	"spendlyo/internal/models"
)

// categoryKeywords maps each category to its keyword vocabulary. The slice
// order is the precedence contract: when a text contains keywords from two
// categories, the one declared first wins. Matching is substring-based, not
// word-boundary based, so a keyword like "rent" also fires inside "current".
var categoryKeywords = []struct {
	Category models.Category
	Keywords []string
}{
	{models.CategoryFood, []string{
		"chai", "coffee", "tea", "lunch", "dinner", "breakfast", "food",
		"restaurant", "meal", "snack", "pizza", "burger", "biryani", "dosa",
		"idli", "dhaba", "cafe", "swiggy", "zomato",
	}},
	{models.CategoryGroceries, []string{
		"grocery", "groceries", "vegetables", "sabzi", "milk", "atta", "dal",
		"chawal", "supermarket", "dmart", "big bazaar", "kirana",
	}},
	{models.CategoryTransport, []string{
		"uber", "ola", "auto", "taxi", "metro", "bus", "petrol", "diesel",
		"fuel", "parking", "rickshaw", "cab",
	}},
	{models.CategoryTravel, []string{
		"travel", "train", "flight", "hotel", "trip", "vacation", "booking",
		"airbnb",
	}},
	{models.CategoryShopping, []string{
		"shopping", "amazon", "flipkart", "myntra", "bought", "purchase",
	}},
	{models.CategoryClothes, []string{
		"clothes", "shirt", "jeans", "shoes", "saree", "kurta", "dress",
	}},
	{models.CategoryEntertainment, []string{
		"movie", "cinema", "netflix", "spotify", "prime", "hotstar", "game",
		"concert", "party",
	}},
	{models.CategoryBill, []string{
		"rent", "hostel", "electricity", "water", "wifi", "internet",
		"mobile", "recharge", "bill", "gas", "cylinder", "emi", "installment",
	}},
	{models.CategoryHealth, []string{
		"doctor", "medicine", "hospital", "pharmacy", "medical", "health",
		"gym", "fitness",
	}},
	{models.CategoryEducation, []string{
		"book", "course", "tuition", "class", "fees", "college", "university",
		"exam",
	}},
	{models.CategorySalary, []string{
		"salary", "income", "stipend", "credited",
	}},
	{models.CategoryInvestment, []string{
		"stock", "mutual", "fund", "investment", "sip", "gold",
	}},
	// Other has no keywords: it can only be reached through the fallback
	// tiers, never by a direct keyword hit.
	{models.CategoryOther, nil},
}

// ClassifyByKeyword assigns a category to text using the local keyword
// tables. Categories are checked in declaration order and the first keyword
// hit wins. The second return value is false when no keyword matched; the
// caller is then expected to fall back to the remote tier.
func ClassifyByKeyword(text string) (models.Category, bool) {
	normalized := strings.ToLower(text)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				return entry.Category, true
			}
		}
	}

	return "", false
}
