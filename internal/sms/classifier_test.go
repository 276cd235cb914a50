package sms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akarshakk/F-Buddy/internal/llm"
	"github.com/Akarshakk/F-Buddy/internal/sms"
)

func TestCategoryByID(t *testing.T) {
	cat, ok := sms.CategoryByID("food_dining")
	assert.True(t, ok)
	assert.Equal(t, "Food & Dining", cat.Name)

	_, ok = sms.CategoryByID("no_such_category")
	assert.False(t, ok)
}

func TestFallbackCategorize(t *testing.T) {
	type testCase struct {
		name     string
		merchant string
		wantID   string
		wantConf float64
	}

	tests := []testCase{
		{name: "FoodApp", merchant: "Swiggy", wantID: "food_dining", wantConf: 0.75},
		{name: "RideHailing", merchant: "UBER INDIA", wantID: "transportation", wantConf: 0.75},
		{name: "Marketplace", merchant: "Amazon Pay", wantID: "shopping", wantConf: 0.75},
		{name: "NoMatch", merchant: "XK Traders", wantID: "other", wantConf: 0.5},
		{name: "Empty", merchant: "", wantID: "other", wantConf: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sms.FallbackCategorize(tt.merchant)

			assert.Equal(t, tt.wantID, got.Category.ID)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}

func TestClassifier_Categorize(t *testing.T) {
	type testCase struct {
		name      string
		completer llm.Completer
		wantID    string
		wantConf  float64
	}

	tests := []testCase{
		{
			name: "LLMVerdict",
			completer: llm.CompleterFunc(func(_ context.Context, _ string, _ llm.Options) (string, error) {
				return `{"name": "Groceries", "id": "groceries", "confidence": 0.92, "reasoning": "grocery store"}`, nil
			}),
			wantID:   "groceries",
			wantConf: 0.92,
		},
		{
			name: "UnknownIDBecomesOther",
			completer: llm.CompleterFunc(func(_ context.Context, _ string, _ llm.Options) (string, error) {
				return `{"id": "crypto", "confidence": 0.9}`, nil
			}),
			wantID:   "other",
			wantConf: 0.9,
		},
		{
			name: "MissingConfidenceDefaults",
			completer: llm.CompleterFunc(func(_ context.Context, _ string, _ llm.Options) (string, error) {
				return `{"id": "travel"}`, nil
			}),
			wantID:   "travel",
			wantConf: 0.5,
		},
		{
			name: "ErrorFallsBackToKeywords",
			completer: llm.CompleterFunc(func(_ context.Context, _ string, _ llm.Options) (string, error) {
				return "", errors.New("timeout")
			}),
			wantID:   "food_dining",
			wantConf: 0.75,
		},
		{
			name: "GarbageResponseFallsBack",
			completer: llm.CompleterFunc(func(_ context.Context, _ string, _ llm.Options) (string, error) {
				return "sure, happy to help!", nil
			}),
			wantID:   "food_dining",
			wantConf: 0.75,
		},
		{
			name:      "NilCompleter",
			completer: nil,
			wantID:    "food_dining",
			wantConf:  0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sms.NewClassifier(tt.completer)

			got := c.Categorize(context.Background(), "Dominos Pizza", "Rs 450 debited to Dominos Pizza via UPI")

			assert.Equal(t, tt.wantID, got.Category.ID)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}

func TestReviewThresholdGate(t *testing.T) {
	assert.Less(t, sms.FallbackCategorize("Swiggy").Confidence, float64(sms.ReviewThreshold))
}
