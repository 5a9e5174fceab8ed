package parser

import (
	"testing"
	"time"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		clock, meridiem, want string
	}{
		{"12:00", "am", "00:00"},
		{"12:00", "pm", "12:00"},
		{"1:30", "pm", "13:30"},
		{"10:00", "am", "10:00"},
		{"11:59", "PM", "23:59"},
		{"9:05", "AM", "09:05"},
		{"7:45", "", "07:45"},
		{"13:30", "", "13:30"}, // already 24-hour, no meridiem leaves it alone
		{"25:00", "am", ""},    // out of range is dropped, not emitted
		{"nope", "pm", ""},
	}
	for _, c := range cases {
		if got := to24Hour(c.clock, c.meridiem); got != c.want {
			t.Errorf("to24Hour(%q, %q) = %q, want %q", c.clock, c.meridiem, got, c.want)
		}
	}
}

func TestMonthNumberTable(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"jan", "01", true},
		{"January", "01", true},
		{"SEPTEMBER", "09", true},
		{"sep", "09", true},
		{"may", "05", true},
		{"dec", "12", true},
		{"octember", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := monthNumber(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("monthNumber(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestExpandYear(t *testing.T) {
	ref := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := expandYear("25", ref); got != "2025" {
		t.Errorf("expandYear(25) = %q", got)
	}
	if got := expandYear("99", ref); got != "2099" {
		t.Errorf("expandYear(99) = %q, century prefix has no pivot", got)
	}
	if got := expandYear("2031", ref); got != "2031" {
		t.Errorf("expandYear(2031) = %q", got)
	}
}

func TestPlusTwoHours(t *testing.T) {
	cases := []struct{ in, want string }{
		{"09:30", "11:30"},
		{"22:15", "00:15"},
		{"23:00", "01:00"},
		{"bad", ""},
	}
	for _, c := range cases {
		if got := plusTwoHours(c.in); got != c.want {
			t.Errorf("plusTwoHours(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
