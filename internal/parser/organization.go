package parser

import (
	"regexp"
	"strings"
)

var (
	reOrganizedBy = regexp.MustCompile(`(?i)(?:organized by|presented by|host(?:ed)? by)[:\s]*([A-Za-z\s]+)`)
	reOrgSuffix   = regexp.MustCompile(`([A-Z][A-Za-z\s]+(?:Association|Foundation|Society|Club))`)
)

// orgSuffixWords gates the fallback scan: the case-sensitive regex only runs
// when one of these literals is present.
var orgSuffixWords = []string{"Association", "Foundation", "Society", "Club"}

func extractOrganization(text string) string {
	if m := reOrganizedBy.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, w := range orgSuffixWords {
		if strings.Contains(text, w) {
			if m := reOrgSuffix.FindStringSubmatch(text); m != nil {
				return strings.TrimSpace(m[1])
			}
			break
		}
	}
	return ""
}
