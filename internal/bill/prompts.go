package bill

import "fmt"

// extractPromptTextLimit caps how much receipt text goes into the combined
// extraction prompt.
const extractPromptTextLimit = 1500

// extractPrompt asks for merchant, amount, category, and date in a single
// strict-JSON round trip. One combined call is cheaper and more consistent
// than four separate ones for bill images.
func extractPrompt(text string) string {
	text = truncate(text, extractPromptTextLimit)

	return fmt.Sprintf(`Extract bill info. Return ONLY JSON, nothing else.

BILL TEXT:
%s

RULES:
- merchant: Store/restaurant name (MAX 25 chars, just the name, no address)
- amount: Final total (number only, after taxes, look for "Bill Total", "Grand Total", "Total Rs")
- category: One of: restaurants, food, drinks, transport, fuel, clothes, education, health, hotel, fun, personal, pets, others
- date: YYYY-MM-DD format or null

CATEGORY HINTS:
- restaurants: dine-in, menu items, FSSAI, Table No, kitchen, cafe, dhaba
- food: Zomato, Swiggy, grocery, supermarket

RESPOND WITH ONLY:
{"merchant":"Name","amount":123,"category":"restaurants","date":"2025-12-31"}`, text)
}
