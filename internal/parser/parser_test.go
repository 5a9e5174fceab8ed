package parser

import (
	"reflect"
	"testing"
	"time"
)

var testRef = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func newTestParser() *Parser {
	return New(WithReferenceDate(testRef))
}

func TestParseFullFlyer(t *testing.T) {
	text := `SPRING PICKLEBALL LEAGUE

Join us on Saturday, March 15, 2025
10:00am - 2:00pm

Venue: Community Center, 123 Main St, Springfield, IL 62701
Fee: $25 per Team
Register by March 1, 2025
Registration: https://example.org/register

Men's Doubles Level 4
Women's Doubles

Contact: Jane Doe, 555-123-4567
Organized by Springfield Pickleball Association`

	f := newTestParser().Parse(text)

	if f.Title != "SPRING PICKLEBALL LEAGUE" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Date != "2025-03-15" {
		t.Errorf("date = %q, want 2025-03-15", f.Date)
	}
	if f.StartTime != "10:00" || f.EndTime != "14:00" {
		t.Errorf("times = %q-%q, want 10:00-14:00", f.StartTime, f.EndTime)
	}
	if f.Venue != "Community Center" {
		t.Errorf("venue = %q", f.Venue)
	}
	if len(f.Address) < 5 || f.Address[len(f.Address)-5:] != "62701" {
		t.Errorf("address = %q, want City, ST ZIP suffix", f.Address)
	}
	if f.Fee != "$25 per Team" {
		t.Errorf("fee = %q", f.Fee)
	}
	if f.RegistrationDeadline != "2025-03-01" {
		t.Errorf("deadline = %q", f.RegistrationDeadline)
	}
	if f.RegistrationLink != "https://example.org/register" {
		t.Errorf("link = %q", f.RegistrationLink)
	}
	if f.ContactName1 != "Jane Doe" || f.ContactPhone1 != "555-123-4567" {
		t.Errorf("contact = %q / %q", f.ContactName1, f.ContactPhone1)
	}
	if f.Organization != "Springfield Pickleball Association" {
		t.Errorf("organization = %q", f.Organization)
	}
	if f.Category != "Sports" {
		t.Errorf("category = %q", f.Category)
	}
}

func TestParseEmptyInput(t *testing.T) {
	f := newTestParser().Parse("")

	if f.FilledCount() != 0 {
		t.Errorf("expected no filled fields, got %d", f.FilledCount())
	}
	if f.Category != "Sports" {
		t.Errorf("category = %q, want default Sports", f.Category)
	}
	if f.Categories == nil || len(f.Categories) != 0 {
		t.Errorf("categories = %#v, want empty non-nil slice", f.Categories)
	}
}

func TestParseIdempotent(t *testing.T) {
	text := "Workshop on June 3 from 9:30am. Fee: $10. Contact info: Bob Smith (555) 987-6543"
	p := newTestParser()
	first := p.Parse(text)
	second := p.Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parse differs:\n%+v\n%+v", first, second)
	}
}

func TestParseNoRecognizableFields(t *testing.T) {
	f := newTestParser().Parse("lorem ipsum dolor sit amet qwertyuiop")
	if f.Date != "" || f.StartTime != "" || f.EndTime != "" || f.Venue != "" {
		t.Errorf("expected absent date/time/venue, got %+v", f)
	}
	if f.Category != "Sports" {
		t.Errorf("category = %q, want default Sports", f.Category)
	}
}

func TestParseAdversarialInput(t *testing.T) {
	// OCR garbage must never panic or produce malformed canonical values.
	inputs := []string{
		"::::",
		"99/99/99",
		"venue:",
		"fee: $",
		"25:99 - 26:00",
		"on Octember 45, 20256",
		"\x00\x01\x02",
		"Contact: ,",
	}
	p := newTestParser()
	for _, in := range inputs {
		f := p.Parse(in)
		if f.Date != "" && len(f.Date) != 10 {
			t.Errorf("input %q: malformed date %q", in, f.Date)
		}
		if f.StartTime != "" && len(f.StartTime) != 5 {
			t.Errorf("input %q: malformed start time %q", in, f.StartTime)
		}
	}
}

func TestExtractTitleLoose(t *testing.T) {
	// The loose pattern is case-insensitive and leftmost: it captures from the
	// first letter it can anchor on.
	f := newTestParser().Parse("come to the spring music festival downtown")
	if f.Title != "come to the spring music festival" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Category != "Cultural" {
		t.Errorf("category = %q, want Cultural", f.Category)
	}
}

func TestExtractNotesSponsor(t *testing.T) {
	f := newTestParser().Parse("Sponsor: Acme Sporting Goods")
	if f.Notes != "Sponsor: Acme Sporting Goods" {
		t.Errorf("notes = %q", f.Notes)
	}
}

func TestContactFallbackBarePhone(t *testing.T) {
	f := newTestParser().Parse("Questions? Mary Johnson 555.321.9876 anytime")
	if f.ContactPhone1 != "555.321.9876" {
		t.Errorf("phone = %q", f.ContactPhone1)
	}
	if f.ContactName1 != "Mary Johnson" {
		t.Errorf("name = %q", f.ContactName1)
	}
	if f.ContactName2 != "" || f.ContactTitle2 != "" {
		t.Errorf("second contact slot must stay empty, got %q / %q", f.ContactName2, f.ContactTitle2)
	}
}

func TestOrganizationSuffixFallback(t *testing.T) {
	f := newTestParser().Parse("Proceeds benefit: Greenwood Youth Foundation")
	if f.Organization != "Greenwood Youth Foundation" {
		t.Errorf("organization = %q", f.Organization)
	}
}

func TestRegistrationLinkFallbackBareURL(t *testing.T) {
	f := newTestParser().Parse("more details at http://flyers.example.com/spring")
	if f.RegistrationLink != "http://flyers.example.com/spring" {
		t.Errorf("link = %q", f.RegistrationLink)
	}
}

func TestFeeDefaultsUnitToPerson(t *testing.T) {
	f := newTestParser().Parse("Entry $15 at the door")
	if f.Fee != "$15 per person" {
		t.Errorf("fee = %q", f.Fee)
	}
}
