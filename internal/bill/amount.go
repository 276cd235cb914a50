package bill

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// minPlausibleTotal filters out line numbers, quantities, and pin codes when
// falling back to unlabelled numbers. A bill total below this is not worth
// guessing at.
const minPlausibleTotal = 10

// labelledPattern is one rule in the amount cascade. Guarded patterns carry a
// leading optional "sub" capture so a hit inside "Subtotal" can be rejected;
// RE2 has no lookbehind.
type labelledPattern struct {
	re      *regexp.Regexp
	guarded bool
}

// amountGroup returns the capture index that holds the number.
func (p labelledPattern) amountGroup() int {
	if p.guarded {
		return 2
	}

	return 1
}

// labelledTiers is the priority cascade for labelled amounts. Order encodes
// domain knowledge about Indian receipts: "Total Rs" phrasing is the most
// reliable signal, then explicit bill totals, then grand/net totals, then a
// bare "Total". Evaluated in sequence, first clean match wins, never voted.
var labelledTiers = [][]labelledPattern{
	// "Total Rs" / "Total RS"
	{
		{re: regexp.MustCompile(`(?i)(sub\s*)?total\s*rs\.?\s*[:\s]*₹?\s*([\d,]+(?:\.\d{2})?)`), guarded: true},
		{re: regexp.MustCompile(`(?i)(sub\s*)?total\s*rs\s*([\d,]+(?:\.\d{2})?)`), guarded: true},
	},
	// "Bill Total" / "Bill Total (Rounded)" / "Bill Amount"
	{
		{re: regexp.MustCompile(`(?i)bill\s*total\s*(?:\(rounded\))?[:\s]*[₹$]?\s*([\d,]+(?:\.\d{2})?)`)},
		{re: regexp.MustCompile(`(?i)bill\s*amount[:\s]*[₹$]?\s*([\d,]+(?:\.\d{2})?)`)},
		{re: regexp.MustCompile(`(?i)bill\s*total\s*(?:\(rounded\))?[:\s]*(?:rs\.?|inr)?\s*([\d,]+(?:\.\d{2})?)`)},
	},
	// "Grand Total" and friends
	{
		{re: regexp.MustCompile(`(?i)(?:grand\s*total|net\s*total|total\s*amount|net\s*amount|amount\s*payable|final\s*amount|amount\s*due)[:\s]*[₹$]?\s*([\d,]+(?:\.\d{2})?)`)},
		{re: regexp.MustCompile(`(?i)(?:grand\s*total|net\s*total|total\s*amount|net\s*amount|amount\s*payable|final\s*amount|amount\s*due)[:\s]*(?:rs\.?|inr)?\s*([\d,]+(?:\.\d{2})?)`)},
	},
	// Bare "Total", rejecting "Subtotal"/"Sub Total"
	{
		{re: regexp.MustCompile(`(?i)(sub\s*)?total[:\s]*[₹$]?\s*([\d,]+(?:\.\d{2})?)`), guarded: true},
		{re: regexp.MustCompile(`(?i)(sub\s*)?total[:\s]*(?:rs\.?|inr)?\s*([\d,]+(?:\.\d{2})?)`), guarded: true},
	},
}

var (
	trailingAmount = regexp.MustCompile(`[₹$]?\s*([\d,]+\.\d{2})`)
	subtotalAmount = regexp.MustCompile(`(?i)sub\s*total[:\s]*[₹$]?\s*([\d,]+(?:\.\d{2})?)`)
	decimalNumber  = regexp.MustCompile(`[\d,]+\.\d{2}`)
	plainNumber    = regexp.MustCompile(`[\d,]+`)
)

// ExtractAmount finds the payable total in receipt text. It walks the
// labelled cascade first, then scans the last lines for a trailing amount,
// then takes the subtotal as a pre-tax last resort, then the largest
// decimal-formatted number, then the largest plain number. Reports false
// when no tier fires; it never guesses below the plausibility floor.
func ExtractAmount(text string) (float64, bool) {
	for _, tier := range labelledTiers {
		for _, p := range tier {
			if v, ok := matchLabelled(p, text); ok {
				return v, true
			}
		}
	}

	// Totals usually sit near the bottom; scan the last 10 lines in reverse.
	lines := strings.Split(text, "\n")
	for i, seen := len(lines)-1, 0; i >= 0 && seen < 10; i, seen = i-1, seen+1 {
		m := trailingAmount.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}

		if v, ok := parseMoney(m[1]); ok && v > minPlausibleTotal {
			return v, true
		}
	}

	// Subtotal is pre-tax; only useful when nothing else matched.
	if m := subtotalAmount.FindStringSubmatch(text); m != nil {
		if v, ok := parseMoney(m[1]); ok {
			return v, true
		}
	}

	// Largest decimal-formatted number anywhere.
	if v, ok := largest(decimalNumber.FindAllString(text, -1), 0); ok {
		return v, true
	}

	// Largest plain number, filtered for plausibility.
	if v, ok := largest(plainNumber.FindAllString(text, -1), minPlausibleTotal); ok {
		return v, true
	}

	return 0, false
}

// matchLabelled returns the first occurrence of the pattern that is not a
// guarded "sub" hit.
func matchLabelled(p labelledPattern, text string) (float64, bool) {
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		if p.guarded && m[1] != "" {
			continue
		}

		if v, ok := parseMoney(m[p.amountGroup()]); ok {
			return v, true
		}
	}

	return 0, false
}

func largest(candidates []string, floor float64) (float64, bool) {
	best := 0.0
	found := false

	for _, c := range candidates {
		v, ok := parseMoney(c)
		if !ok || v <= floor {
			continue
		}

		if !found || v > best {
			best = v
			found = true
		}
	}

	return best, found
}

// parseMoney strips thousands separators and parses the remainder. Commas are
// never decimal separators on Indian receipts.
func parseMoney(s string) (float64, bool) {
	clean := strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	return d.InexactFloat64(), true
}
