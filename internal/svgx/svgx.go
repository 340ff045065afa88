// Package svgx holds small helpers for working with SVG markup produced by
// the render engine: normalizing it into strict XML and reading its intrinsic
// pixel size.
package svgx

import (
	"encoding/xml"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Default intrinsic size when markup declares neither a viewBox nor usable
// width/height attributes.
const (
	DefaultIntrinsicWidth  = 800.0
	DefaultIntrinsicHeight = 600.0
)

// voidElementRe matches HTML void elements written without a closing slash.
// Quoted attribute values may contain '>' and must not terminate the match.
var voidElementRe = regexp.MustCompile(
	`(?i)<(br|hr|img|input|area|base|col|embed|link|meta|param|source|track|wbr)\b((?:[^<>"']|"[^"]*"|'[^']*')*)>`)

// Sanitize rewrites HTML-flavored void elements into XML self-closing form.
// The engine emits markdown-derived fragments (line breaks, images) the HTML
// way; the result is injected inline and re-parsed as strict XML by the
// export path, so both consumers need well-formed input.
func Sanitize(markup string) string {
	return voidElementRe.ReplaceAllStringFunc(markup, func(m string) string {
		sub := voidElementRe.FindStringSubmatch(m)
		attrs := sub[2]
		if strings.HasSuffix(strings.TrimSpace(attrs), "/") {
			return m
		}
		return "<" + sub[1] + attrs + "/>"
	})
}

// IntrinsicSize reports the natural pixel dimensions of SVG markup, preferring
// the root viewBox and falling back to explicit width/height attributes.
// Unparseable or non-positive declarations yield the 800x600 default.
func IntrinsicSize(markup string) (w, h float64) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if err == io.EOF || err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			break
		}

		var viewBox, width, height string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "viewBox":
				viewBox = attr.Value
			case "width":
				width = attr.Value
			case "height":
				height = attr.Value
			}
		}

		if w, h, ok := sizeFromViewBox(viewBox); ok {
			return w, h
		}
		wv, wok := parseLength(width)
		hv, hok := parseLength(height)
		if wok && hok {
			return wv, hv
		}
		break
	}

	return DefaultIntrinsicWidth, DefaultIntrinsicHeight
}

func sizeFromViewBox(viewBox string) (w, h float64, ok bool) {
	fields := strings.FieldsFunc(viewBox, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(fields[2], 64)
	h, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// parseLength reads a CSS-style length, tolerating a trailing unit suffix
// such as "px" or "pt". Percent lengths carry no intrinsic size.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0, false
	}
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
