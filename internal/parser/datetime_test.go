package parser

import (
	"testing"
	"time"
)

func TestExtractDateWritten(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct{ text, want string }{
		{"Saturday, March 15, 2025", "2025-03-15"},
		{"on january 5", "2025-01-05"}, // missing year defaults to reference year
		{"Date: Sep 9, 2026", "2026-09-09"},
		{"Friday Oct 31 2025", "2025-10-31"},
		{"no date here", ""},
	}
	for _, c := range cases {
		if got := extractDate(c.text, ref); got != c.want {
			t.Errorf("extractDate(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractDateNumericFallback(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct{ text, want string }{
		{"save the date 3/15/2025", "2025-03-15"},
		{"7-4-25", "2025-07-04"}, // month first, US convention
		{"12/31/99", "2099-12-31"},
		{"meet 9/9/999 ok", ""}, // 3-digit year, dropped
		{"due 10/1/2025.", "2025-10-01"},
	}
	for _, c := range cases {
		if got := extractDate(c.text, ref); got != c.want {
			t.Errorf("extractDate(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractTimesRange(t *testing.T) {
	cases := []struct{ text, start, end string }{
		{"10:00am - 2:00pm", "10:00", "14:00"},
		{"10:00 - 2:00", "10:00", "14:00"}, // asymmetric am/pm default
		{"6:30pm to 9:00pm", "18:30", "21:00"},
		{"8:00 to 11:00am", "08:00", "11:00"},
		{"no times", "", ""},
	}
	for _, c := range cases {
		start, end := extractTimes(c.text)
		if start != c.start || end != c.end {
			t.Errorf("extractTimes(%q) = %q, %q; want %q, %q", c.text, start, end, c.start, c.end)
		}
	}
}

func TestExtractTimesStartOnly(t *testing.T) {
	start, end := extractTimes("doors open, start: 7:00pm")
	if start != "19:00" {
		t.Errorf("start = %q", start)
	}
	if end != "21:00" {
		t.Errorf("end = %q, want start plus two hours", end)
	}

	// wrap past midnight
	start, end = extractTimes("begin 11:00pm")
	if start != "23:00" || end != "01:00" {
		t.Errorf("late start = %q-%q, want 23:00-01:00", start, end)
	}
}

func TestExtractDeadline(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct{ text, want string }{
		{"Register by March 1, 2025", "2025-03-01"},
		{"Deadline: Feb 28", "2025-02-28"},
		{"last date April 10 2025", "2025-04-10"},
		{"nothing due", ""},
	}
	for _, c := range cases {
		if got := extractDeadline(c.text, ref); got != c.want {
			t.Errorf("extractDeadline(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}
