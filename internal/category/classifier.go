package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Akarshakk/F-Buddy/internal/llm"
)

const (
	// restaurantShortCircuit is the restaurant sub-score at which the
	// keyword tier returns restaurants without scoring anything else.
	restaurantShortCircuit = 4

	// promptTextLimit caps how much receipt text is embedded in the prompt.
	promptTextLimit = 1500
)

// Classifier assigns a bill to one category label. It tries the LLM tier
// first and falls back to local keyword scoring, so classification succeeds
// even with no network dependency available.
type Classifier struct {
	completer llm.Completer
}

// NewClassifier builds a classifier. A nil completer disables the LLM tier;
// the keyword tier always works.
func NewClassifier(completer llm.Completer) *Classifier {
	return &Classifier{completer: completer}
}

// Classify returns a category for the given receipt text. It never fails:
// any LLM transport or parse problem is a tier miss, and the keyword tier
// always produces a member of the closed set (others at worst).
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	if c.completer != nil {
		if label, ok := c.classifyLLM(ctx, text); ok {
			return Result{Category: label, Method: MethodLLM}
		}
	}

	return ClassifyKeywords(text)
}

func (c *Classifier) classifyLLM(ctx context.Context, text string) (Label, bool) {
	resp, err := c.completer.Complete(ctx, classifyPrompt(text), llm.Options{
		Temperature: 0.1,
		MaxTokens:   20,
	})
	if err != nil {
		slog.Debug("llm categorization failed, falling back to keywords", "error", err)
		return "", false
	}

	label, ok := Parse(resp)
	if !ok {
		slog.Debug("llm returned invalid category", "response", resp)
		return "", false
	}

	return label, true
}

func classifyPrompt(text string) string {
	// Cut at a rune boundary so a multibyte character at the cap never turns
	// into garbage bytes in the prompt.
	if len(text) > promptTextLimit {
		cut := promptTextLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	return fmt.Sprintf(`You are a bill/receipt categorization expert. Analyze the following bill/receipt text and categorize it into EXACTLY ONE of these categories:
- food (groceries, food delivery like Zomato/Swiggy, fast food)
- restaurants (dine-in restaurants, cafes)
- drinks (bars, beverages, alcohol)
- transport (uber, ola, taxi, metro, flights, trains)
- fuel (petrol, diesel, gas stations)
- clothes (apparel, footwear, fashion)
- education (schools, courses, books, stationery)
- health (hospitals, medicines, pharmacy, gym)
- hotel (hotels, resorts, accommodation)
- fun (movies, entertainment, subscriptions, gaming)
- personal (salon, grooming, cosmetics)
- pets (pet food, vet, pet supplies)
- others (anything that doesn't fit above)

Bill/Receipt text:
"""
%s
"""

Respond with ONLY the category name in lowercase, nothing else.`, text)
}

// ClassifyKeywords is the local keyword tier. Exported so callers that never
// want a network call (and tests) can invoke it directly; Classify reaches it
// on any LLM miss.
func ClassifyKeywords(text string) Result {
	lower := strings.ToLower(text)

	restaurantScore := 0
	for _, indicator := range restaurantIndicators {
		if strings.Contains(lower, indicator) {
			restaurantScore += 2
		}
	}

	if restaurantScore >= restaurantShortCircuit {
		return Result{Category: Restaurants, Method: MethodKeywordsRestaurant}
	}

	best := Others
	maxScore := 0

	for _, entry := range keywordTable {
		score := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}

		if entry.label == Restaurants {
			score += restaurantScore
		}

		if score > maxScore {
			maxScore = score
			best = entry.label
		}
	}

	return Result{Category: best, Method: MethodKeywords}
}
