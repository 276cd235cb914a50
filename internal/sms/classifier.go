package sms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Akarshakk/F-Buddy/internal/llm"
)

// Classification is the SMS classifier's verdict. Confidence gates
// auto-save: below the review threshold the caller must ask the user.
type Classification struct {
	Category   Category
	Confidence float64
	Reasoning  string
}

// ReviewThreshold is the confidence below which a parsed transaction needs
// human confirmation before persisting.
const ReviewThreshold = 0.8

// Classifier categorizes SMS transactions: an LLM tier with an SMS-specific
// prompt and vocabulary, falling back to merchant-keyword matching.
type Classifier struct {
	completer llm.Completer
}

// NewClassifier builds a classifier. A nil completer disables the LLM tier.
func NewClassifier(completer llm.Completer) *Classifier {
	return &Classifier{completer: completer}
}

// Categorize never fails; any LLM problem lands in the keyword fallback.
func (c *Classifier) Categorize(ctx context.Context, merchant, fullText string) Classification {
	if c.completer != nil {
		if cls, ok := c.categorizeLLM(ctx, merchant, fullText); ok {
			return cls
		}
	}

	return FallbackCategorize(merchant)
}

func (c *Classifier) categorizeLLM(ctx context.Context, merchant, fullText string) (Classification, bool) {
	resp, err := c.completer.Complete(ctx, categorizePrompt(merchant, fullText), llm.Options{
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		slog.Debug("sms categorization call failed, using keyword fallback", "error", err)
		return Classification{}, false
	}

	obj, status := llm.ParseObject(resp)
	if status != llm.StatusOK {
		slog.Debug("sms categorization response unusable", "status", status)
		return Classification{}, false
	}

	cls := Classification{Category: Other, Confidence: 0.5}

	if id, ok := obj.String("id"); ok {
		if cat, known := CategoryByID(strings.ToLower(id)); known {
			cls.Category = cat
		}
	}

	if conf, ok := obj.Float("confidence"); ok {
		cls.Confidence = conf
	}

	if reason, ok := obj.String("reasoning"); ok {
		cls.Reasoning = reason
	}

	return cls, true
}

// FallbackCategorize matches the merchant name against the keyword table.
// Exported for the same reason as the bill keyword tier: deterministic,
// network-free classification on demand.
func FallbackCategorize(merchant string) Classification {
	lower := strings.ToLower(merchant)

	for _, entry := range fallbackKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				cat, _ := CategoryByID(entry.id)
				return Classification{
					Category:   cat,
					Confidence: 0.75,
					Reasoning:  "Keyword match",
				}
			}
		}
	}

	return Classification{
		Category:   Other,
		Confidence: 0.5,
		Reasoning:  "No match found",
	}
}

func categorizePrompt(merchant, fullText string) string {
	var b strings.Builder

	b.WriteString("You are a financial transaction categorizer. Analyze this transaction and categorize it accurately.\n\n")
	fmt.Fprintf(&b, "Merchant/Description: %s\n", merchant)
	fmt.Fprintf(&b, "Full SMS Text: %s\n\n", fullText)
	b.WriteString("Available Categories (return the exact category name and corresponding ID):\n")

	for i, c := range Categories {
		fmt.Fprintf(&b, "%d. %s (id: %q)\n", i+1, c.Name, c.ID)
	}

	b.WriteString(`
Respond ONLY with valid JSON in this exact format (no markdown, no extra text):
{
  "name": "category_name",
  "id": "category_id",
  "confidence": 0.95,
  "reasoning": "brief explanation"
}`)

	return b.String()
}
