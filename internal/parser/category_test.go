package parser

import "testing"

func TestExtractCategoriesWithLevels(t *testing.T) {
	text := "Brackets: Men's Doubles Level 4 & 5, Mixed Doubles, Singles"
	got := extractCategories(text)

	want := []string{"Men's Doubles Level 4 & 5", "Mixed Doubles", "Singles"}
	for _, w := range want {
		if !containsLabel(got, w) {
			t.Errorf("categories %v missing %q", got, w)
		}
	}
}

func TestExtractCategoriesDeduplicates(t *testing.T) {
	got := extractCategories("tournament rules for the tournament: Tournament play")
	n := 0
	for _, c := range got {
		if c == "Tournament" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("want exactly one Tournament label, got %v", got)
	}
}

func TestExtractCategoriesOrder(t *testing.T) {
	got := extractCategories("Men's Doubles Level 4 and Women's Doubles")
	if len(got) < 2 {
		t.Fatalf("got %v", got)
	}
	mi, wi := indexOfLabel(got, "Men's Doubles Level 4"), indexOfLabel(got, "Women's Doubles")
	if mi < 0 || wi < 0 || mi > wi {
		t.Errorf("discovery order wrong: %v", got)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"pickleball open play", "Sports"},
		{"annual charity gala", "Fundraising"},
		{"watercolor art exhibition", "Cultural"},
		{"beginner woodworking workshop", "Education"},
		// cultural outranks fundraising when both match
		{"charity concert with live music", "Cultural"},
		// sports outranks everything
		{"tennis fundraiser workshop", "Sports"},
		{"see you there", "Sports"}, // default
	}
	for _, c := range cases {
		if got := string(classify(c.text, nil)); got != c.want {
			t.Errorf("classify(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestClassifyDivisionFallback(t *testing.T) {
	// No sport keyword anywhere, only bracket-style division labels.
	text := "Men's Doubles Level 4 and Women's Doubles"
	cats := extractCategories(text)
	if got := classify(text, cats); got != "Sports" {
		t.Errorf("classify = %q, want Sports via doubles fallback", got)
	}

	if got := classify("quiet afternoon", []string{"Singles"}); got != "Sports" {
		t.Errorf("classify = %q, want Sports via singles label", got)
	}
}

func containsLabel(labels []string, want string) bool {
	return indexOfLabel(labels, want) >= 0
}

func indexOfLabel(labels []string, want string) int {
	for i, l := range labels {
		if l == want {
			return i
		}
	}
	return -1
}

func TestClassifyOutputAlwaysEnumerated(t *testing.T) {
	valid := map[string]bool{"Sports": true, "Cultural": true, "Education": true, "Fundraising": true, "Other": true}
	inputs := []string{"", "random", "music and tennis", "charity class", "\n\n"}
	for _, in := range inputs {
		if got := string(classify(in, nil)); !valid[got] {
			t.Errorf("classify(%q) = %q, not an enumerated label", in, got)
		}
	}
}
