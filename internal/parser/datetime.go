package parser

import (
	"regexp"
	"strconv"
	"time"
)

// monthDayYearPattern matches a textual month name, a numeric day, and an
// optional 4-digit year. Shared between the date and deadline extractors.
const monthDayYearPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)[.\s]+([0-9]{1,2})(?:[,.\s]+([0-9]{4}))?`

var (
	reWrittenDate = regexp.MustCompile(`(?i)(?:on|date|saturday|sunday|monday|tuesday|wednesday|thursday|friday)[:,\s]*` + monthDayYearPattern)
	reNumericDate = regexp.MustCompile(`([0-9]{1,2})[/\-]([0-9]{1,2})[/\-]([0-9]{2,4})`)

	reTimeRange = regexp.MustCompile(`(?i)([0-9]{1,2}:[0-9]{2})\s*(am|pm)?(?:\s*-\s*|\s+to\s+)([0-9]{1,2}:[0-9]{2})\s*(am|pm)?`)
	reStartTime = regexp.MustCompile(`(?i)(?:start|begin|from)[:\s]*([0-9]{1,2}:[0-9]{2})\s*(am|pm)?`)
)

// dateRule pairs a pattern with its normalizer. Rules are evaluated in order
// until one matches; appending a new fallback tier is a one-line change.
type dateRule struct {
	re    *regexp.Regexp
	build func(m []string, ref time.Time) string
}

var dateRules = []dateRule{
	{reWrittenDate, buildWrittenDate},
	{reNumericDate, buildNumericDate},
}

// extractDate walks the rule chain and returns the first canonical
// YYYY-MM-DD date, or "" when nothing matches. A rule that matches but fails
// to normalize drops the field entirely instead of falling through.
func extractDate(text string, ref time.Time) string {
	for _, r := range dateRules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return r.build(m, ref)
		}
	}
	return ""
}

// buildWrittenDate expects groups (month name, day, optional year). A missing
// year defaults to the reference year.
func buildWrittenDate(m []string, ref time.Time) string {
	month, ok := monthNumber(m[1])
	if !ok {
		return ""
	}
	year := m[3]
	if year == "" {
		year = strconv.Itoa(ref.Year())
	}
	return year + "-" + month + "-" + pad2(m[2])
}

// buildNumericDate reads part1/part2 as month/day. US convention, fixed
// policy; do not localize. Years must be 2 or 4 digits; anything else
// cannot expand to a canonical year, so the field is dropped.
func buildNumericDate(m []string, ref time.Time) string {
	if len(m[3]) != 2 && len(m[3]) != 4 {
		return ""
	}
	return expandYear(m[3], ref) + "-" + pad2(m[1]) + "-" + pad2(m[2])
}

// extractTimes returns canonical 24-hour start and end times. A lone start
// time gets a synthesized end two hours later. A missing meridiem defaults
// to am on the start side and pm on the end side: flyers write "10:00 -
// 2:00" meaning a morning-to-afternoon window.
func extractTimes(text string) (start, end string) {
	if m := reTimeRange.FindStringSubmatch(text); m != nil {
		start = to24Hour(m[1], defaultMeridiem(m[2], "am"))
		end = to24Hour(m[3], defaultMeridiem(m[4], "pm"))
		if start == "" || end == "" {
			return "", ""
		}
		return start, end
	}
	if m := reStartTime.FindStringSubmatch(text); m != nil {
		start = to24Hour(m[1], defaultMeridiem(m[2], "am"))
		if start == "" {
			return "", ""
		}
		return start, plusTwoHours(start)
	}
	return "", ""
}

func defaultMeridiem(token, fallback string) string {
	if token == "" {
		return fallback
	}
	return token
}
