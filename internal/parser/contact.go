package parser

import (
	"regexp"
	"strings"
)

var (
	reContact = regexp.MustCompile(`(?i)(?:contact|info|details)[^:]*:?\s*([A-Za-z\s]+)(?:[,:\s]+|\()([0-9()\-\s.+]+)`)
	// NNN sep NNN sep NNNN, separators space/dash/dot or absent.
	rePhone           = regexp.MustCompile(`[0-9]{3}[\s\-.]?[0-9]{3}[\s\-.]?[0-9]{4}`)
	reNameBeforePhone = regexp.MustCompile(`([A-Z][A-Za-z\s]{2,})[,\s]*$`)
)

// extractContact fills the first contact slot only; the second slot is left
// for manual entry. The fallback finds a bare phone number and walks
// backward for a capitalized word run to use as the name.
func extractContact(text string) (name, phone string) {
	if m := reContact.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	loc := rePhone.FindStringIndex(text)
	if loc == nil {
		return "", ""
	}
	phone = text[loc[0]:loc[1]]
	if m := reNameBeforePhone.FindStringSubmatch(text[:loc[0]]); m != nil {
		name = strings.TrimSpace(m[1])
	}
	return name, phone
}
