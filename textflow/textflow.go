// Package textflow turns content lines into paragraphs. Hierarchy is encoded
// in the lines themselves by leading spaces and this package is the only place
// which interprets it.
package textflow

import (
	"strings"
	"unicode"

	"pptgen/shape"
	"pptgen/style"
)

const (
	// leading spaces needed to reach depth 1 and 2
	nestedPrefix     = 2
	deepNestedPrefix = 4

	// MaxDepth is the deepest hierarchy level a line could have.
	MaxDepth = 2
)

// Line is a single content line with hierarchy depth derived from its raw form.
type Line struct {
	Raw   string
	Text  string
	Depth int
}

// DepthOf returns hierarchy depth encoded by leading spaces of raw text: fewer
// than two spaces is 0, two or three is 1, four and more is 2.
func DepthOf(raw string) int {
	n := 0
	for n < len(raw) && raw[n] == ' ' {
		n++
	}
	switch {
	case n >= deepNestedPrefix:
		return 2
	case n >= nestedPrefix:
		return 1
	default:
		return 0
	}
}

// ParseLine derives depth and strips leading whitespace.
func ParseLine(raw string) Line {
	return Line{
		Raw:   raw,
		Text:  strings.TrimLeftFunc(raw, unicode.IsSpace),
		Depth: DepthOf(raw),
	}
}

// ParseLines is ParseLine for every element, order is preserved.
func ParseLines(raw []string) []Line {
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, ParseLine(r))
	}
	return lines
}

// Level is bullet level of the line. Both nested depths share level 1 and
// differ only in font size.
func (l Line) Level() int {
	if l.Depth > 0 {
		return 1
	}
	return 0
}

// Blank reports whether line renders as an empty paragraph.
func (l Line) Blank() bool {
	return l.Text == ""
}

// Profile defines how lines of a particular text frame look.
type Profile struct {
	Sizes      [MaxDepth + 1]shape.Size // per depth
	SpaceAfter shape.Size
	IndentStep shape.EMU // left margin added per level
	Align      shape.Align
	Bold       bool
	Color      style.ColorName
	Font       style.FontName
}

var (
	// ContentProfile is used by single column body text.
	ContentProfile = Profile{
		Sizes:      [MaxDepth + 1]shape.Size{shape.Pt(20), shape.Pt(18), shape.Pt(16)},
		SpaceAfter: shape.Pt(6),
		IndentStep: shape.Inches(0.5),
		Color:      style.NeutralDark,
		Font:       style.Body,
	}

	// ColumnProfile is used by each column of two column slides.
	ColumnProfile = Profile{
		Sizes:      [MaxDepth + 1]shape.Size{shape.Pt(16), shape.Pt(14), shape.Pt(12)},
		IndentStep: shape.Inches(0.3),
		Color:      style.NeutralDark,
		Font:       style.Body,
	}

	// MembersProfile is used by attribution block of a title slide.
	MembersProfile = Profile{
		Sizes: [MaxDepth + 1]shape.Size{shape.Pt(16), shape.Pt(16), shape.Pt(16)},
		Align: shape.AlignCenter,
		Color: style.White,
		Font:  style.Body,
	}
)

// TextStyle returns run style for given depth.
func (p Profile) TextStyle(depth int) shape.TextStyle {
	depth = max(0, min(depth, MaxDepth))
	return shape.TextStyle{
		Size:  p.Sizes[depth],
		Bold:  p.Bold,
		Color: p.Color,
		Font:  p.Font,
	}
}

// LayoutLines produces exactly one paragraph per line. Blank lines become
// empty paragraphs of their depth size so vertical spacing is preserved.
func LayoutLines(lines []Line, p Profile) []shape.Paragraph {
	paragraphs := make([]shape.Paragraph, 0, len(lines))
	for _, l := range lines {
		st := p.TextStyle(l.Depth)
		props := shape.ParagraphProps{
			Level:      l.Level(),
			Indent:     shape.EMU(l.Level()) * p.IndentStep,
			Align:      p.Align,
			SpaceAfter: p.SpaceAfter,
		}
		if l.Blank() {
			paragraphs = append(paragraphs, shape.NewParagraph(props, st))
			continue
		}
		paragraphs = append(paragraphs, shape.NewParagraph(props, st, shape.NewRun(l.Text, st)))
	}
	return paragraphs
}
