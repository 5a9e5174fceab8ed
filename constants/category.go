package constants

import (
	"strings"
)

// Category is the coarse event label. Exactly one is assigned per event.
type Category string

const (
	Sports      Category = "Sports"
	Cultural    Category = "Cultural"
	Education   Category = "Education"
	Fundraising Category = "Fundraising"
	Other       Category = "Other"
)

var allCategories = []Category{
	Sports,
	Cultural,
	Education,
	Fundraising,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form input onto the fixed enumeration. Unknown
// input lands in Other with ok=false.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"sport":       Sports,
		"athletics":   Sports,
		"arts":        Cultural,
		"culture":     Cultural,
		"charity":     Fundraising,
		"fundraiser":  Fundraising,
		"educational": Education,
		"workshop":    Education,
		"class":       Education,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
