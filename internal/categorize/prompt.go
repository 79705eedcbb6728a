package categorize

import (
	"fmt"
	"strings"

	"spendlyo/internal/models"
)

// buildPrompt constructs the single-turn categorization prompt shared by all
// remote providers. It embeds the closed category list and the same domain
// rules the keyword tier encodes, and demands a bare JSON object reply.
func buildPrompt(text string, amount int64) string {
	names := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		names[i] = string(c)
	}

	return fmt.Sprintf(`Categorize this expense for an Indian expense tracker.

Text: %q
Amount: ₹%d

Valid categories: %s

Rules:
- Food items eaten out (dosa, pizza, biryani, restaurant, cafe, dhaba) = Food
- Grocery shopping for cooking at home (rice, chawal, atta, dal, vegetables, milk, supermarket, dmart) = Groceries
- Clothing items (shirt, jeans, shoes, saree, kurta) = Clothes
- Trips, hotels, flights, vacations = Travel
- Daily transport (uber, ola, metro, petrol, bus, auto) = Transport
- Movies, netflix, games = Entertainment
- Medicine, doctor, hospital = Health
- Rent, electricity, water, internet, phone = Bill
- Income = Salary
- Stocks, mutual funds, gold, sip = Investment
- Return ONLY valid JSON: {"category": "Groceries", "note": "brief description"}

Output:`, text, amount, strings.Join(names, ", "))
}
