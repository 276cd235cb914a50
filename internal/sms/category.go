package sms

// Category is one entry in the SMS transaction vocabulary. This is a
// deliberately separate closed set from the bill category labels: the two
// vocabularies coexist in the product and are not unified here.
type Category struct {
	ID   string
	Name string
}

// Other is the catch-all category and the validation fallback.
var Other = Category{ID: "other", Name: "Other"}

// OtherIncome is assigned to every credit-direction transaction; income
// categorization always goes to review. It carries no id: it lives outside
// the expense vocabulary below.
var OtherIncome = Category{Name: "Other Income"}

// Categories is the closed set the SMS classifier resolves into.
var Categories = []Category{
	{ID: "food_dining", Name: "Food & Dining"},
	{ID: "transportation", Name: "Transportation"},
	{ID: "shopping", Name: "Shopping"},
	{ID: "bills_utilities", Name: "Bills & Utilities"},
	{ID: "entertainment", Name: "Entertainment"},
	{ID: "healthcare", Name: "Healthcare"},
	{ID: "education", Name: "Education"},
	{ID: "groceries", Name: "Groceries"},
	{ID: "travel", Name: "Travel"},
	{ID: "personal_care", Name: "Personal Care"},
	{ID: "fuel", Name: "Fuel"},
	{ID: "rent", Name: "Rent"},
	{ID: "emi_loan", Name: "EMI/Loan"},
	{ID: "insurance", Name: "Insurance"},
	{ID: "investment", Name: "Investment"},
	Other,
}

// CategoryByID resolves an id against the closed set.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}

	return Category{}, false
}

// fallbackKeywords back the local tier: merchant-name substrings per
// category id, checked in order, first hit wins.
var fallbackKeywords = []struct {
	id       string
	keywords []string
}{
	{"food_dining", []string{"restaurant", "cafe", "food", "pizza", "burger", "zomato", "swiggy", "dominos", "mcdonald", "kfc", "starbucks"}},
	{"groceries", []string{"grocery", "supermarket", "market", "store", "dmart", "reliance", "bigbasket", "grofers"}},
	{"transportation", []string{"uber", "ola", "rapido", "metro", "transport", "taxi", "auto", "bus", "railway"}},
	{"fuel", []string{"petrol", "diesel", "fuel", "hp", "bharat", "iocl", "shell"}},
	{"bills_utilities", []string{"electricity", "water", "gas", "bill", "utility", "recharge", "broadband"}},
	{"entertainment", []string{"movie", "cinema", "netflix", "prime", "spotify", "hotstar", "bookmyshow"}},
	{"shopping", []string{"amazon", "flipkart", "myntra", "ajio", "shop", "mall", "store"}},
	{"healthcare", []string{"hospital", "clinic", "pharmacy", "medical", "doctor", "apollo", "fortis"}},
}
