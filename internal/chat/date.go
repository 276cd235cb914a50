// Package chat resolves natural-language date references from
// conversational transaction entry into concrete dates.
package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var daysAgoPattern = regexp.MustCompile(`(?i)(\d+)\s+days?\s+ago`)

// absoluteLayouts are tried in order when the phrase is not relative.
var absoluteLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"02/01/06",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseRelativeDate resolves phrases like "today", "yesterday", "last week"
// or "3 days ago" against now, falling back to absolute date layouts. Phrases
// it cannot resolve yield now, so conversational entry always lands on a
// usable date.
func ParseRelativeDate(s string, now time.Time) time.Time {
	phrase := strings.ToLower(strings.TrimSpace(s))

	switch phrase {
	case "", "today", "now":
		return now
	case "yesterday":
		return now.AddDate(0, 0, -1)
	case "day before yesterday":
		return now.AddDate(0, 0, -2)
	case "last week":
		return now.AddDate(0, 0, -7)
	case "last month":
		return now.AddDate(0, -1, 0)
	}

	if m := daysAgoPattern.FindStringSubmatch(phrase); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, -days)
		}
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}

	return now
}
