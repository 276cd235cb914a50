package category

import "strings"

// Label is one of the closed set of bill expense categories. Classification
// always resolves to a member of this set, never an arbitrary string.
type Label string

const (
	Food        Label = "food"
	Restaurants Label = "restaurants"
	Drinks      Label = "drinks"
	Transport   Label = "transport"
	Fuel        Label = "fuel"
	Clothes     Label = "clothes"
	Education   Label = "education"
	Health      Label = "health"
	Hotel       Label = "hotel"
	Fun         Label = "fun"
	Personal    Label = "personal"
	Pets        Label = "pets"
	Tips        Label = "tips"
	Others      Label = "others"
)

// All lists every valid label. Note this is the data model's set: it includes
// tips, which the keyword table has no entries for.
var All = []Label{
	Food, Restaurants, Drinks, Transport, Fuel, Clothes,
	Education, Health, Hotel, Fun, Personal, Pets, Tips, Others,
}

// Parse case-folds s and reports whether it is a member of the closed set.
func Parse(s string) (Label, bool) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range All {
		if l == valid {
			return l, true
		}
	}

	return "", false
}

// Method records which strategy produced a classification, for audit and
// confidence purposes.
type Method string

const (
	MethodLLM                Method = "llm"
	MethodKeywords           Method = "keywords"
	MethodKeywordsRestaurant Method = "keywords-restaurant"
)

// Result pairs the chosen label with the strategy that chose it.
type Result struct {
	Category Label
	Method   Method
}
