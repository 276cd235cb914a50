package bill

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Labelled dates are the most trustworthy: receipts print "Date:" or "Dt:"
// next to the real bill date, while unlabelled digit triples might be
// anything (invoice numbers, item codes).
var labelledDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:bill\s*)?date\s*[:\-]?\s*(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
	regexp.MustCompile(`(?i)(?:bill\s*)?dt\s*[:\-]?\s*(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
	regexp.MustCompile(`(?i)(?:invoice\s*)?date\s*[:\-]?\s*(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	dayMonthName = regexp.MustCompile(`(?i)(\d{1,2})[\s\-]*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s\-,]*(\d{2,4})`)
	monthNameDay = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s\-]*(\d{1,2})[\s\-,]*(\d{2,4})`)
)

// Unlabelled triples, disambiguated by which token is 4 digits long.
var genericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})`), // DD/MM/YYYY
	regexp.MustCompile(`(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`), // YYYY/MM/DD
	regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})`), // DD/MM/YY
}

// ExtractDate finds the bill date and returns it as YYYY-MM-DD. Cascade:
// labelled dates, then month-name forms, then generic digit triples. Reports
// false on no match; the caller defaults to the current date.
func ExtractDate(text string) (string, bool) {
	for _, re := range labelledDatePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return formatDate(m[3], m[2], m[1]), true
		}
	}

	if m := dayMonthName.FindStringSubmatch(text); m != nil {
		month := monthNumbers[strings.ToLower(m[2])[:3]]
		return formatDate(m[3], strconv.Itoa(month), m[1]), true
	}

	if m := monthNameDay.FindStringSubmatch(text); m != nil {
		month := monthNumbers[strings.ToLower(m[1])[:3]]
		return formatDate(m[3], strconv.Itoa(month), m[2]), true
	}

	for _, re := range genericDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		if len(m[1]) == 4 {
			return formatDate(m[1], m[2], m[3]), true
		}

		return formatDate(m[3], m[2], m[1]), true
	}

	return "", false
}

// formatDate zero-pads day and month and expands 2-digit years with a "20"
// prefix.
func formatDate(year, month, day string) string {
	if len(year) == 2 {
		year = "20" + year
	}

	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
