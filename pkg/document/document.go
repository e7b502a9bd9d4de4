// Package document describes a printable document as a layout-engine-
// agnostic node tree: styled text runs, tables with per-cell alignment and
// shading, horizontal rules, spacers, and explicit page breaks. The tree
// carries page-level settings and a registry of named text styles; a
// rendering backend walks it to produce the final artifact.
package document

// Alignment is a horizontal text alignment.
type Alignment string

const (
	AlignLeft   Alignment = "L"
	AlignCenter Alignment = "C"
	AlignRight  Alignment = "R"
)

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Font specifies a font face. An empty Family means the document's active
// family, chosen by the renderer.
type Font struct {
	Family string
	Style  string // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64
}

// Style is a named text style registered on the Document.
type Style struct {
	Font  Font
	Color *Color
}

// PageSettings carries page size and uniform margins (mm).
type PageSettings struct {
	Size   string
	Margin float64
}

// Node is one visual element of the document.
type Node interface{ node() }

// Text is a single styled text run occupying its own line.
type Text struct {
	Content string
	Style   string // named style; empty uses the document default
	Align   Alignment
	Color   *Color // overrides the style color
}

// Column defines one table column: a relative width weight and the
// default alignment for its cells.
type Column struct {
	Width float64
	Align Alignment
}

// Cell is one table cell. TopBorder draws a rule above the cell even when
// the table itself is borderless.
type Cell struct {
	Content   string
	Style     string
	Align     Alignment // overrides the column alignment when set
	Color     *Color
	TopBorder bool
}

// Table lays out a header row and data rows over weighted columns.
// HeaderFill shades the header row only; ZebraFill shades alternating
// data rows, with the header row excluded from the alternation.
type Table struct {
	Columns    []Column
	Header     []Cell
	Rows       [][]Cell
	HeaderFill *Color
	ZebraFill  *Color
	Borders    bool
}

// Rule is a horizontal line across the content width.
type Rule struct {
	Thickness float64
	Color     *Color
}

// Spacer is vertical whitespace of the given height (mm).
type Spacer struct {
	Height float64
}

// PageBreak forces the following content onto a new page.
type PageBreak struct{}

func (Text) node()      {}
func (Table) node()     {}
func (Rule) node()      {}
func (Spacer) node()    {}
func (PageBreak) node() {}

// Document is the full assembled tree plus its page settings and the
// named text styles referenced by the nodes.
type Document struct {
	Page    PageSettings
	Styles  map[string]Style
	Content []Node
}
