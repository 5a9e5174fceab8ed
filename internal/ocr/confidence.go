package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b|\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`)
	reTimeish  = regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(am|pm)?\b`)
	reReachish = regexp.MustCompile(`https?://\S+|www\.\S+|\b\d{3}[\s\-.]?\d{3}[\s\-.]?\d{4}\b`)
)

func hasDatePattern(s string) bool    { return reDateish.MatchString(s) }
func hasTimePattern(s string) bool    { return reTimeish.MatchString(s) }
func hasContactPattern(s string) bool { return reReachish.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common flyer artifacts
	// (date-ish, time-ish, URL/phone-ish). Each adds a fixed bump.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasTimePattern(txtL) {
		score += 0.15
	}
	if hasContactPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
