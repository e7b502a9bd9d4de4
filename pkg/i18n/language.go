// Package i18n defines the invoice languages, the render-language
// selection, and the localized label table used by the section builders.
package i18n

import (
	"errors"
	"fmt"
)

// Language identifies one of the supported invoice languages.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// RTL reports whether the language is laid out right to left.
func (l Language) RTL() bool { return l == Arabic }

// Selection is the render-language choice: a single language or a
// bilingual document. It is a closed variant; the assembler switches over
// it exhaustively, so adding a language later is a compile-visible change.
type Selection interface{ isSelection() }

// Single renders one full document in one language.
type Single struct{ Lang Language }

// Bilingual renders the English document, a page break, then the Arabic one.
type Bilingual struct{}

func (Single) isSelection()    {}
func (Bilingual) isSelection() {}

// ErrUnknownSelection is returned for a language selector outside
// {ar, en, both}.
var ErrUnknownSelection = errors.New("unknown language selection")

// ParseSelection maps the wire values "ar", "en" and "both" onto a
// Selection. The empty string defaults to English.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "", "en":
		return Single{Lang: English}, nil
	case "ar":
		return Single{Lang: Arabic}, nil
	case "both":
		return Bilingual{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelection, s)
	}
}
