package parser

import (
	"regexp"
	"strings"
)

var (
	reVenue          = regexp.MustCompile(`(?im)(?:venue|location|place)[:\s]*([^\n,]+?)\s*(?:,|$)`)
	reAddressLabeled = regexp.MustCompile(`(?i)(?:address|location|place)[:\s]*(?:[^,\n]+),?\s*([A-Za-z0-9\s,.]+[A-Za-z]+,\s*[A-Z]{2}\s*[0-9]{5})`)
	reCityStateZip   = regexp.MustCompile(`(?i)([A-Za-z0-9\s,.]+[A-Za-z]+,\s*[A-Z]{2}\s*[0-9]{5})`)
)

// extractVenue takes the text after a venue lead-in up to the next comma or
// line end.
func extractVenue(text string) string {
	if m := reVenue.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractAddress tries a labeled segment ending in a City, ST ZIP suffix
// first, then scans the whole text for any such shape. Independent of the
// venue extractor; the two share no match state.
func extractAddress(text string) string {
	if m := reAddressLabeled.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reCityStateZip.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
