package parser

import (
	"regexp"
	"strings"
	"time"
)

var (
	reFee      = regexp.MustCompile(`(?i)(?:fee|cost|price|entry)[:\s]*\$?([0-9]+)(?:\s*per\s+([a-z]+))?`)
	reDeadline = regexp.MustCompile(`(?i)(?:deadline|last date|register by)[:\s]*` + monthDayYearPattern)

	reRegistrationLink = regexp.MustCompile(`(?i)(?:register|registration)[^:]*:?\s*(https?://[^\s]+)`)
	reAnyURL           = regexp.MustCompile(`(?i)https?://[^\s]+`)
)

// extractFee renders a matched amount as "$<amount> per <unit>". The source
// currency symbol and any separators are discarded; a missing unit means
// per person.
func extractFee(text string) string {
	m := reFee.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	unit := m[2]
	if unit == "" {
		unit = "person"
	}
	return "$" + m[1] + " per " + unit
}

// extractDeadline reuses the written month/day/year normalizer behind its
// own lead-in keyword set.
func extractDeadline(text string, ref time.Time) string {
	if m := reDeadline.FindStringSubmatch(text); m != nil {
		return buildWrittenDate(m, ref)
	}
	return ""
}

// extractRegistrationLink prefers a URL introduced by a registration
// lead-in, then falls back to the first bare URL anywhere in the text.
func extractRegistrationLink(text string) string {
	if m := reRegistrationLink.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(reAnyURL.FindString(text))
}
