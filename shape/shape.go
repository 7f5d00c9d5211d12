// Package shape defines immutable values slides are rendered into: positioned
// shapes with solid fills or text frames, paragraphs and runs. Values are
// complete when constructed and expose only read accessors.
package shape

import (
	"math"
	"slices"
	"strings"

	"pptgen/style"
)

// EMU is English Metric Unit, 914400 per inch.
type EMU int64

const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Inches converts inches to EMU.
func Inches(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerInch)))
}

// Points converts points to EMU.
func Points(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerPoint)))
}

// Size is font size or spacing in hundredths of a point.
type Size int

// Pt converts points to Size.
func Pt(v float64) Size {
	return Size(math.Round(v * 100))
}

// Points returns size in points.
func (s Size) Points() float64 {
	return float64(s) / 100
}

// Rect is an absolute position on the slide canvas.
type Rect struct {
	X, Y, CX, CY EMU
}

// Align is horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how run text looks.
type TextStyle struct {
	Size  Size
	Bold  bool
	Color style.ColorName
	Font  style.FontName
}

// Run is a piece of text with single style.
type Run struct {
	text  string
	style TextStyle
}

func NewRun(text string, st TextStyle) Run {
	return Run{text: text, style: st}
}

func (r Run) Text() string     { return r.text }
func (r Run) Style() TextStyle { return r.style }

// Paragraph is an ordered sequence of runs. Paragraph without runs is an
// empty line which still occupies vertical space of its end style size.
type Paragraph struct {
	level      int
	indent     EMU
	align      Align
	spaceAfter Size
	end        TextStyle
	runs       []Run
}

// ParagraphProps are layout properties of a paragraph.
type ParagraphProps struct {
	Level      int
	Indent     EMU
	Align      Align
	SpaceAfter Size
}

// NewParagraph creates paragraph, end style is used for end of paragraph mark
// and gives empty paragraphs their height.
func NewParagraph(props ParagraphProps, end TextStyle, runs ...Run) Paragraph {
	return Paragraph{
		level:      props.Level,
		indent:     props.Indent,
		align:      props.Align,
		spaceAfter: props.SpaceAfter,
		end:        end,
		runs:       slices.Clone(runs),
	}
}

func (p Paragraph) Level() int          { return p.level }
func (p Paragraph) Indent() EMU         { return p.indent }
func (p Paragraph) Align() Align        { return p.align }
func (p Paragraph) SpaceAfter() Size    { return p.spaceAfter }
func (p Paragraph) EndStyle() TextStyle { return p.end }
func (p Paragraph) Runs() []Run         { return slices.Clone(p.runs) }
func (p Paragraph) IsEmpty() bool       { return len(p.runs) == 0 }

// Text returns concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// TextFrame holds paragraphs of a text box.
type TextFrame struct {
	wrap       bool
	paragraphs []Paragraph
}

// NewTextFrame creates text frame, wrap requests word wrapping at box width.
func NewTextFrame(wrap bool, paragraphs ...Paragraph) TextFrame {
	return TextFrame{wrap: wrap, paragraphs: slices.Clone(paragraphs)}
}

func (f TextFrame) Wrap() bool              { return f.wrap }
func (f TextFrame) Paragraphs() []Paragraph { return slices.Clone(f.paragraphs) }
func (f TextFrame) Len() int                { return len(f.paragraphs) }

// Shape is a positioned rectangle with either solid fill or text frame.
type Shape struct {
	name string
	rect Rect
	fill style.ColorName
	text *TextFrame
}

// NewFill creates solid filled rectangle.
func NewFill(name string, r Rect, color style.ColorName) Shape {
	return Shape{name: name, rect: r, fill: color}
}

// NewTextBox creates text box without fill.
func NewTextBox(name string, r Rect, frame TextFrame) Shape {
	return Shape{name: name, rect: r, text: &frame}
}

func (s Shape) Name() string { return s.name }
func (s Shape) Rect() Rect   { return s.rect }

// Fill returns fill color, if shape has one.
func (s Shape) Fill() (style.ColorName, bool) {
	return s.fill, s.fill != ""
}

// Text returns text frame, if shape has one.
func (s Shape) Text() (TextFrame, bool) {
	if s.text == nil {
		return TextFrame{}, false
	}
	return *s.text, true
}

// Tree is ordered list of shapes of a single slide, first shape is at the
// bottom of z-order.
type Tree []Shape

// TextFrames returns text frames of the tree in z-order.
func (t Tree) TextFrames() []TextFrame {
	var frames []TextFrame
	for _, s := range t {
		if f, ok := s.Text(); ok {
			frames = append(frames, f)
		}
	}
	return frames
}
