package bill

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	merchantMaxLen   = 30
	merchantMinLen   = 3
	merchantScanTop  = 5
	keywordScanDepth = 10
)

// Lines that cannot be a merchant name: dates, contact details, tax IDs,
// list markers, URLs, addresses.
var merchantSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^\d{2}[/\-]\d{2}[/\-]\d{2,4}`),
	regexp.MustCompile(`(?i)^(tel|phone|mobile|fax|email|gstin|gst|fssai|address|date|time|invoice|bill\s*no)`),
	regexp.MustCompile(`(?i)^(no\.|sr\.|#|\*)`),
	regexp.MustCompile(`^\+?\d{10,}`),
	regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]\d{4}`),
	regexp.MustCompile(`(?i)^(www\.|http)`),
	regexp.MustCompile(`^\d+[,\s]\w+`),
	regexp.MustCompile(`(?i)^(road|street|lane|nagar|colony|sector|block)`),
}

var (
	leadingSymbols  = regexp.MustCompile(`^[*\-=#|\[\]]+`)
	trailingSymbols = regexp.MustCompile(`[*\-=#|\[\]]+$`)
)

// businessKeywords drive the fallback scan: a line naming a business type is
// probably the shop even when it failed the strict checks.
var businessKeywords = []string{
	"restaurant", "kitchen", "cafe", "hotel", "dhaba", "foods", "mart", "store", "shop",
}

// ExtractMerchant picks the merchant name out of receipt text. Receipts put
// the name near the top, so the first 5 non-blank lines are screened against
// the skip patterns and a mostly-letters check; failing that, the first 10
// lines are scanned for a business-type keyword. Never longer than 30
// characters. Reports false when nothing qualifies.
func ExtractMerchant(text string) (string, bool) {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	for i := 0; i < merchantScanTop && i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if len(line) < merchantMinLen || len(line) > 40 {
			continue
		}

		if skipLine(line) {
			continue
		}

		line = cleanMerchant(line)

		if letterRatio(line) > 0.5 && len(line) >= merchantMinLen && len(line) <= merchantMaxLen {
			return line, true
		}
	}

	for i := 0; i < keywordScanDepth && i < len(lines); i++ {
		lower := strings.ToLower(lines[i])
		for _, keyword := range businessKeywords {
			if strings.Contains(lower, keyword) {
				return truncate(strings.TrimSpace(lines[i]), merchantMaxLen), true
			}
		}
	}

	return "", false
}

func skipLine(line string) bool {
	for _, re := range merchantSkipPatterns {
		if re.MatchString(line) {
			return true
		}
	}

	return false
}

func cleanMerchant(line string) string {
	line = leadingSymbols.ReplaceAllString(line, "")
	line = trailingSymbols.ReplaceAllString(line, "")
	line = spaceRuns.ReplaceAllString(line, " ")
	line = strings.TrimSpace(line)

	return truncate(line, merchantMaxLen)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return strings.TrimSpace(s[:n])
}

// letterRatio is the share of alphabetic characters in the line. Merchant
// names are mostly letters; item rows and IDs are not.
func letterRatio(line string) float64 {
	if line == "" {
		return 0
	}

	letters := 0
	for _, r := range line {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}

	return float64(letters) / float64(len(line))
}
