// Package parser is the heuristic field-extraction engine: it turns one
// free-form OCR text blob into a partial event record. Extraction is pure
// regex-level pattern matching with no I/O and no state between calls, and
// it degrades gracefully: every field is optional and a failure on one
// field never blocks another.
package parser

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

var (
	reTitleAnchored = regexp.MustCompile(`(?m)^\s*([A-Z][A-Za-z\s]+(?:LEAGUE|Tournament|Festival|Conference|Gala|Event|Championship|Competition|Concert))`)
	reTitleLoose    = regexp.MustCompile(`(?i)([A-Z][A-Za-z\s]{2,}(?:League|Tournament|Festival|Conference|Gala|Event|Championship|Competition|Concert))`)
	reSponsor       = regexp.MustCompile(`(?i)(?:sponsor|presented by)[:\s]*([A-Za-z\s]+)`)
)

// Parser runs the extraction pipeline. Zero value is unusable; construct
// with New.
type Parser struct {
	ref    time.Time
	logger *slog.Logger
}

type Option func(*Parser)

// WithReferenceDate pins the date used when a flyer omits the year. Callers
// that need reproducible output must set it; otherwise each Parse reads the
// wall clock.
func WithReferenceDate(t time.Time) Option {
	return func(p *Parser) { p.ref = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Parse runs every field extractor over the raw text and assembles the
// partial record. It never fails: empty or garbage input yields a record
// with only the default category set.
func (p *Parser) Parse(text string) Fields {
	ref := p.ref
	if ref.IsZero() {
		ref = time.Now()
	}

	f := Fields{}
	f.Title = extractTitle(text)
	f.Date = extractDate(text, ref)
	f.StartTime, f.EndTime = extractTimes(text)
	f.Venue = extractVenue(text)
	f.Address = extractAddress(text)
	f.Fee = extractFee(text)
	f.RegistrationDeadline = extractDeadline(text, ref)
	f.RegistrationLink = extractRegistrationLink(text)
	f.ContactName1, f.ContactPhone1 = extractContact(text)
	f.Organization = extractOrganization(text)
	f.Notes = extractNotes(text)
	f.Categories = extractCategories(text)
	f.Category = string(classify(text, f.Categories))

	p.logger.Debug("flyer text parsed",
		"filled_fields", f.FilledCount(),
		"sub_categories", len(f.Categories),
		"category", f.Category,
	)
	return f
}

// extractTitle prefers a line-anchored heading ending in a known event noun,
// then falls back to a looser case-insensitive scan anywhere in the text.
func extractTitle(text string) string {
	if m := reTitleAnchored.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reTitleLoose.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractNotes currently records only a sponsor attribution sentence.
func extractNotes(text string) string {
	if m := reSponsor.FindStringSubmatch(text); m != nil {
		return "Sponsor: " + strings.TrimSpace(m[1])
	}
	return ""
}
