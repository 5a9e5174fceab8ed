package parser

import (
	"regexp"
	"strings"

	"github.com/eventsnap/eventsnap/constants"
)

// categoryKeywords is the fixed sub-category vocabulary, searched in list
// order. Each keyword may carry a trailing numeric level token in the text
// ("Men's Doubles Level 4 & 5").
var categoryKeywords = []string{
	"men's doubles", "women's doubles", "mixed doubles", "singles",
	"junior", "senior", "pro", "amateur", "recreational", "league",
	"tournament", "championship", "competition",
}

var categoryPatterns = compileCategoryPatterns()

func compileCategoryPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(categoryKeywords))
	for i, kw := range categoryKeywords {
		out[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) + `[\s,]*(?:level)?[\s:]*(\d+)?(?:[\s&]+(\d+))?`)
	}
	return out
}

// extractCategories collects every keyword hit, trims a trailing comma,
// uppercases the first letter, and deduplicates while preserving discovery
// order.
func extractCategories(text string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, re := range categoryPatterns {
		for _, m := range re.FindAllString(text, -1) {
			label := strings.TrimSpace(m)
			label = strings.TrimSpace(strings.TrimSuffix(label, ","))
			if label == "" {
				continue
			}
			label = strings.ToUpper(label[:1]) + label[1:]
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}

// Classifier keyword groups, evaluated in this exact order; the first group
// that matches wins. Reordering changes results on texts that hit more than
// one group, so the order is frozen.
var (
	sportTerms       = []string{"pickleball", "tennis", "basketball", "soccer", "tournament"}
	culturalTerms    = []string{"music", "dance", "art", "exhibition", "cultural"}
	fundraisingTerms = []string{"charity", "fundraiser", "donation", "benefit"}
	educationTerms   = []string{"class", "workshop", "seminar", "education"}
)

// classify picks the coarse label from the lower-cased text. Sports also
// fires when a discovered sub-category mentions doubles or singles, so
// bracket-style flyers with no sport name still land in Sports. No match at
// all defaults to Sports.
func classify(text string, categories []string) constants.Category {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, sportTerms) || hasDivisionLabel(categories):
		return constants.Sports
	case containsAny(lower, culturalTerms):
		return constants.Cultural
	case containsAny(lower, fundraisingTerms):
		return constants.Fundraising
	case containsAny(lower, educationTerms):
		return constants.Education
	}
	return constants.Sports
}

func hasDivisionLabel(categories []string) bool {
	for _, c := range categories {
		lc := strings.ToLower(c)
		if strings.Contains(lc, "doubles") || strings.Contains(lc, "singles") {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
