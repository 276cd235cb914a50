package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Akarshakk/F-Buddy/internal/chat"
)

func TestParseRelativeDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		in   string
		want time.Time
	}

	tests := []testCase{
		{name: "Today", in: "today", want: now},
		{name: "Now", in: "now", want: now},
		{name: "Empty", in: "", want: now},
		{name: "Yesterday", in: "yesterday", want: now.AddDate(0, 0, -1)},
		{name: "CaseInsensitive", in: "  Yesterday ", want: now.AddDate(0, 0, -1)},
		{name: "DayBeforeYesterday", in: "day before yesterday", want: now.AddDate(0, 0, -2)},
		{name: "LastWeek", in: "last week", want: now.AddDate(0, 0, -7)},
		{name: "LastMonth", in: "last month", want: now.AddDate(0, -1, 0)},
		{name: "DaysAgo", in: "3 days ago", want: now.AddDate(0, 0, -3)},
		{name: "OneDayAgo", in: "1 day ago", want: now.AddDate(0, 0, -1)},
		{name: "ISODate", in: "2026-01-10", want: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "SlashDate", in: "10/01/2026", want: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "MonthName", in: "10 Jan 2026", want: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Unresolvable", in: "whenever", want: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chat.ParseRelativeDate(tt.in, now))
		})
	}
}
