package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNumbers maps English month names and their 3-letter abbreviations to
// two-digit month strings.
var monthNumbers = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// monthNumber resolves a month name case-insensitively. ok is false for
// anything outside the table; callers must drop the whole date on a miss
// rather than emit a malformed value.
func monthNumber(name string) (string, bool) {
	m, ok := monthNumbers[strings.ToLower(name)]
	return m, ok
}

// to24Hour converts an H:MM or HH:MM clock reading plus an am/pm token into
// zero-padded 24-hour HH:MM. pm adds 12 below noon; 12am becomes 00.
// Returns "" when the clock reading is unparseable or out of range.
func to24Hour(clock, meridiem string) string {
	hh, mm, ok := splitClock(clock)
	if !ok {
		return ""
	}
	switch strings.ToLower(meridiem) {
	case "pm":
		if hh < 12 {
			hh += 12
		}
	case "am":
		if hh == 12 {
			hh = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// plusTwoHours synthesizes an end time two hours after start, wrapping at
// midnight.
func plusTwoHours(start string) string {
	hh, mm, ok := splitClock(start)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", (hh+2)%24, mm)
}

func splitClock(clock string) (hh, mm int, ok bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, 0, false
	}
	return hh, mm, true
}

// expandYear turns a 2-digit year into 4 digits using the reference date's
// century. Known limitation: no pivoting near century boundaries.
func expandYear(year string, ref time.Time) string {
	if len(year) == 2 {
		century := strconv.Itoa(ref.Year())[:2]
		return century + year
	}
	return year
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
