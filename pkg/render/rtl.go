package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// visual reorders a logical-order string into visual order for a layout
// engine that places glyphs strictly left to right: right-to-left runs are
// emitted reversed, in the paragraph's computed run order. Strings without
// RTL runes pass through untouched. Joining-form shaping is out of scope.
func visual(s string) string {
	if !hasRTL(s) {
		return s
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return s
	}
	ordering, err := p.Order()
	if err != nil {
		return s
	}
	var b strings.Builder
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = reverseRunes(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func hasRTL(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Hebrew, r) {
			return true
		}
	}
	return false
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
