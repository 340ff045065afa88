package locate

import (
	"strings"
	"testing"
)

var sampleMarkup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">
<g><rect x="10" y="10" width="120" height="60"/>
<text x="70" y="40">Start</text></g>
<g><rect x="200" y="10" width="120" height="60"/>
<text x="260" y="40">Data <tspan>Store</tspan></text></g>
<text x="70" y="200">` + strings.Repeat("all the node text concatenated\n", 10) + `</text>
</svg>`

func TestTextSpans(t *testing.T) {
	spans := TextSpans(sampleMarkup)
	if len(spans) != 3 {
		t.Fatalf("Expected 3 text spans, got %d", len(spans))
	}
	if spans[0].Content != "Start" || spans[0].X != 70 || spans[0].Y != 40 {
		t.Errorf("First span = %+v", spans[0])
	}
	if CollapseWhitespace(spans[1].Content) != "Data Store" {
		t.Errorf("Nested tspan content not aggregated: %q", spans[1].Content)
	}
}

func TestLabelAt(t *testing.T) {
	if got := LabelAt(sampleMarkup, 75, 45); got != "Start" {
		t.Errorf(`LabelAt near first node = %q, expected "Start"`, got)
	}
	if got := LabelAt(sampleMarkup, 255, 38); got != "Data Store" {
		t.Errorf(`LabelAt near second node = %q, expected "Data Store"`, got)
	}

	// The long concatenated run is not label-shaped, so a click near it
	// falls through to the nearest real label instead.
	if got := LabelAt(sampleMarkup, 70, 200); got == "" || len(got) > MaxLabelChars {
		t.Errorf("Click near oversized text returned %q", got)
	}

	if got := LabelAt("<svg></svg>", 10, 10); got != "" {
		t.Errorf("Markup without text should yield no label, got %q", got)
	}
}

func TestIsLabelShaped(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"short", "Start", true},
		{"exactly 120 chars", strings.Repeat("a", 120), true},
		{"long but few lines", strings.Repeat("a", 200) + "\n" + strings.Repeat("b", 200), true},
		{"long and many lines", strings.Repeat(strings.Repeat("x", 40)+"\n", 5), false},
	}

	for _, test := range tests {
		if got := IsLabelShaped(test.text); got != test.expected {
			t.Errorf("%s: IsLabelShaped = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"  Start  ", "Start"},
		{"Data\n\t Store", "Data Store"},
		{"one two", "one two"},
		{"\n\t ", ""},
	}

	for _, test := range tests {
		if got := CollapseWhitespace(test.in); got != test.expected {
			t.Errorf("CollapseWhitespace(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}

func TestMatchRange(t *testing.T) {
	source := "flow: {\n  A[Start] -> B[Stop]\n}\n"

	start, end, ok := MatchRange(source, "Start")
	if !ok {
		t.Fatal("Expected a match for Start")
	}
	if source[start:end] != "Start" {
		t.Errorf("Range covers %q, expected exactly the matched substring", source[start:end])
	}

	// Case-insensitive fallback.
	start, end, ok = MatchRange(source, "start")
	if !ok {
		t.Fatal("Expected a case-insensitive match for start")
	}
	if !strings.EqualFold(source[start:end], "start") {
		t.Errorf("Fallback range covers %q", source[start:end])
	}

	// Case-sensitive match wins over an earlier case-insensitive one.
	src2 := "start here then A[Start]"
	start, end, ok = MatchRange(src2, "Start")
	if !ok || src2[start:end] != "Start" {
		t.Errorf("Expected exact-case match to win, got %q", src2[start:end])
	}

	// Whitespace in the label is collapsed before searching.
	if _, _, ok := MatchRange(source, "  Start \n"); !ok {
		t.Error("Expected collapsed label to match")
	}

	if _, _, ok := MatchRange(source, "Absent"); ok {
		t.Error("Expected no match for absent label")
	}
	if _, _, ok := MatchRange(source, "   "); ok {
		t.Error("Expected no match for blank label")
	}
}
