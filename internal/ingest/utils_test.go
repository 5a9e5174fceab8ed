package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"pdf", true},
		{".pdf", true},
		{"JPG", true},
		{".HEIC", true},
		{"webp", true},
		{"docx", false},
		{"txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/flyers/.DS_Store", true},
		{".hidden", true},
		{"/flyers/spring-open.pdf", false},
		{"/flyers/.cache/tournament.png", false},
	}
	for _, tt := range tests {
		if got := IsHidden(tt.path); got != tt.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
