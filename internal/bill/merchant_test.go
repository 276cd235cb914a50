package bill_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akarshakk/F-Buddy/internal/bill"
)

func TestExtractMerchant(t *testing.T) {
	type testCase struct {
		name   string
		text   string
		want   string
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "TopLine",
			text:   "Super Mart\n12 MG Road\nTotal Rs 250",
			want:   "Super Mart",
			wantOK: true,
		},
		{
			name:   "SkipsPhoneAndDate",
			text:   "Tel: 08012345678\n15/01/2026\nAnand Sweets\nTotal 99",
			want:   "Anand Sweets",
			wantOK: true,
		},
		{
			name:   "StripsDecorationSymbols",
			text:   "== Coffee House ==\nitems below",
			want:   "Coffee House",
			wantOK: true,
		},
		{
			name:   "SkipsGSTLine",
			text:   "GSTIN 29ABCDE1234F1Z5\nGreen Grocers\n",
			want:   "Green Grocers",
			wantOK: true,
		},
		{
			name:   "BusinessKeywordFallback",
			text:   "12345\n67890\n111213\n141516\n171819\nRoyal Restaurant Pvt Ltd line\n",
			want:   "Royal Restaurant Pvt Ltd line",
			wantOK: true,
		},
		{
			name:   "RejectsNumericNoise",
			text:   "12345\n9998887776\n404\n",
			wantOK: false,
		},
		{
			name:   "Empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bill.ExtractMerchant(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.LessOrEqual(t, len(got), 30)
			}
		})
	}
}

func TestExtractMerchantMultibyteCap(t *testing.T) {
	// 33 bytes with a two-byte é straddling the 30-byte cap: the cut must
	// land on a rune boundary, never mid-character.
	line := "ABCDEFGHIJKLMNOPQRSTUVWXYZ ABé Z"

	got, ok := bill.ExtractMerchant(line + "\nTotal 99")

	require.True(t, ok)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ AB", got)
}

func TestExtractMerchantLengthCap(t *testing.T) {
	long := "Maharaja Bhavan Pure Veg Restaurant And Tiffin"
	got, ok := bill.ExtractMerchant(long + "\nTotal 99")

	assert.True(t, ok)
	assert.LessOrEqual(t, len(got), 30)
	assert.True(t, strings.HasPrefix(long, got))
}
