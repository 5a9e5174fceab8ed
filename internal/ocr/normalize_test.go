package ocr

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	in := "SPRING  LEAGUE\r\n\r\n\r\n\r\nDate:\tMarch 15   \nVenue: Community Center  "
	got := Normalize(in)
	want := "SPRING LEAGUE\n\nDate: March 15\nVenue: Community Center"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeDigitArtifacts(t *testing.T) {
	if got := Normalize("Join us in 2o25"); got != "Join us in 2025" {
		t.Errorf("got %q", got)
	}
	// letter O inside words stays
	if got := Normalize("DOOR prizes"); got != "DOOR prizes" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("got %q", got)
	}
}
