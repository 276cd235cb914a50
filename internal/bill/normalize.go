package bill

import (
	"regexp"
	"strings"
)

// Recognition engines reliably confuse a handful of glyphs on receipt fonts.
// These rewrites fix the common cases before any extraction runs.
var (
	barsAsI      = regexp.MustCompile(`[|\\]`)
	oBeforeDigit = regexp.MustCompile(`[oO](\d)`)
	oAfterDigit  = regexp.MustCompile(`(\d)[oO]`)
	elBeforeNum  = regexp.MustCompile(`[lI](\d\d)`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw recognized text of common optical artifacts: vertical
// bars and backslashes become I, a letter O adjacent to a digit becomes 0,
// l or I in front of a number becomes 1, and whitespace is collapsed.
// Total function; empty in, empty out.
func Normalize(raw string) string {
	s := barsAsI.ReplaceAllString(raw, "I")
	s = oBeforeDigit.ReplaceAllString(s, "0$1")
	s = oAfterDigit.ReplaceAllString(s, "${1}0")
	s = elBeforeNum.ReplaceAllString(s, "1$1")
	s = spaceRuns.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
