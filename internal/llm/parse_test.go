package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akarshakk/F-Buddy/internal/llm"
)

func TestParseObject(t *testing.T) {
	type testCase struct {
		name       string
		raw        string
		wantStatus llm.Status
	}

	tests := []testCase{
		{
			name:       "PlainObject",
			raw:        `{"amount": 250.5, "merchant": "Super Mart"}`,
			wantStatus: llm.StatusOK,
		},
		{
			name:       "FencedJSON",
			raw:        "```json\n{\"amount\": 99}\n```",
			wantStatus: llm.StatusOK,
		},
		{
			name:       "FencedNoLanguage",
			raw:        "```\n{\"amount\": 99}\n```",
			wantStatus: llm.StatusOK,
		},
		{
			name:       "ObjectInsideProse",
			raw:        "Here is the extraction:\n{\"amount\": 42}\nHope that helps!",
			wantStatus: llm.StatusOK,
		},
		{
			name:       "Empty",
			raw:        "",
			wantStatus: llm.StatusEmpty,
		},
		{
			name:       "WhitespaceOnly",
			raw:        "   \n\t ",
			wantStatus: llm.StatusEmpty,
		},
		{
			name:       "Malformed",
			raw:        `{"amount": }`,
			wantStatus: llm.StatusMalformed,
		},
		{
			name:       "NoObjectAtAll",
			raw:        "I could not find any transaction details.",
			wantStatus: llm.StatusMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, status := llm.ParseObject(tt.raw)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestObjectString(t *testing.T) {
	obj, status := llm.ParseObject(`{"merchant": " Super Mart ", "date": null, "blank": "  ", "amount": 5}`)
	require.Equal(t, llm.StatusOK, status)

	got, ok := obj.String("merchant")
	assert.True(t, ok)
	assert.Equal(t, "Super Mart", got)

	_, ok = obj.String("date")
	assert.False(t, ok, "null must report absent")

	_, ok = obj.String("blank")
	assert.False(t, ok, "whitespace-only must report absent")

	_, ok = obj.String("amount")
	assert.False(t, ok, "numbers are not strings")

	_, ok = obj.String("missing")
	assert.False(t, ok)
}

func TestObjectFloat(t *testing.T) {
	obj, status := llm.ParseObject(`{"a": 250.5, "b": "Rs. 1,234.50", "c": "N/A", "d": null, "e": "₹99"}`)
	require.Equal(t, llm.StatusOK, status)

	got, ok := obj.Float("a")
	assert.True(t, ok)
	assert.InDelta(t, 250.5, got, 0.001)

	got, ok = obj.Float("b")
	assert.True(t, ok)
	assert.InDelta(t, 1234.50, got, 0.001)

	_, ok = obj.Float("c")
	assert.False(t, ok)

	_, ok = obj.Float("d")
	assert.False(t, ok)

	got, ok = obj.Float("e")
	assert.True(t, ok)
	assert.InDelta(t, 99, got, 0.001)

	_, ok = obj.Float("missing")
	assert.False(t, ok)
}
