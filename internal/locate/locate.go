// Package locate maps a double-click in the rendered preview back to the
// diagram source: it finds the label text nearest the clicked point and
// searches for it in the source. This is a best-effort convenience; when
// nothing matches, callers do nothing.
package locate

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Label-shaped means short enough to plausibly be a single node or edge
// label, so clicking near a large graphic never selects the diagram's entire
// concatenated text.
const (
	MaxLabelChars = 120
	MaxLabelLines = 3
)

// maxTextDepth bounds how deep nested text containers are walked when
// aggregating a label's content.
const maxTextDepth = 8

// TextSpan is one text run in the rendered markup with its anchor point.
type TextSpan struct {
	X, Y    float64
	Content string
}

// TextSpans extracts the text runs of SVG markup. Nested spans inherit the
// enclosing text element's anchor unless they carry their own coordinates.
func TextSpans(markup string) []TextSpan {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false

	var spans []TextSpan
	for {
		tok, err := dec.Token()
		if err == io.EOF || err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "text" {
			continue
		}

		span := TextSpan{X: attrFloat(start, "x"), Y: attrFloat(start, "y")}
		span.Content = collectText(dec, start.Name.Local, 0)
		if strings.TrimSpace(span.Content) != "" {
			spans = append(spans, span)
		}
	}
	return spans
}

// collectText aggregates character data until the matching end element,
// descending into nested containers up to maxTextDepth.
func collectText(dec *xml.Decoder, name string, depth int) string {
	if depth > maxTextDepth {
		return ""
	}

	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			b.WriteString(collectText(dec, t.Name.Local, depth+1))
		case xml.EndElement:
			if t.Name.Local == name {
				return b.String()
			}
		}
	}
	return b.String()
}

func attrFloat(el xml.StartElement, name string) float64 {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			if v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64); err == nil {
				return v
			}
		}
	}
	return 0
}

// LabelAt returns the label-shaped text run nearest to the given point in the
// markup's coordinate space, whitespace-collapsed. Returns "" when the markup
// has no usable label.
func LabelAt(markup string, x, y float64) string {
	best := ""
	bestDist := 0.0
	for _, span := range TextSpans(markup) {
		label := CollapseWhitespace(span.Content)
		if label == "" || !IsLabelShaped(span.Content) {
			continue
		}
		dx, dy := span.X-x, span.Y-y
		dist := dx*dx + dy*dy
		if best == "" || dist < bestDist {
			best = label
			bestDist = dist
		}
	}
	return best
}

// IsLabelShaped reports whether text is short enough to be a label: at most
// MaxLabelChars characters or at most MaxLabelLines lines.
func IsLabelShaped(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= MaxLabelChars {
		return true
	}
	return strings.Count(trimmed, "\n")+1 <= MaxLabelLines
}

// CollapseWhitespace trims text and collapses internal whitespace runs to
// single spaces.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// MatchRange finds label as a literal substring of source, first case
// sensitively and then case insensitively. The returned range is in bytes;
// ok is false when the label does not occur at all.
func MatchRange(source, label string) (start, end int, ok bool) {
	label = CollapseWhitespace(label)
	if label == "" {
		return 0, 0, false
	}

	if i := strings.Index(source, label); i >= 0 {
		return i, i + len(label), true
	}

	lowerSource := strings.ToLower(source)
	lowerLabel := strings.ToLower(label)
	if i := strings.Index(lowerSource, lowerLabel); i >= 0 {
		return i, i + len(lowerLabel), true
	}

	return 0, 0, false
}
