// Package deck is in-memory content model of a presentation: canvas, document
// metadata and ordered, append only list of validated slides.
package deck

import (
	"fmt"
	"slices"
	"strings"

	"pptgen/textflow"
	"pptgen/utils/debug"
)

// Default canvas is 10 x 7.5 inches.
const (
	DefaultWidth  int64 = 9144000
	DefaultHeight int64 = 6858000
)

// Metadata goes into document properties of the package.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

// SlideRef is 1-based position of a slide in the deck.
type SlideRef int

// Deck owns its slides exclusively, callers get copies.
type Deck struct {
	width, height int64
	meta          Metadata
	slides        []Slide
	err           error
}

// Option configures new deck.
type Option func(*Deck)

// WithCanvas sets slide size in EMU.
func WithCanvas(width, height int64) Option {
	return func(d *Deck) {
		d.width, d.height = width, height
	}
}

// WithMetadata sets document properties.
func WithMetadata(m Metadata) Option {
	return func(d *Deck) {
		d.meta = m
	}
}

// New creates empty deck. Invalid options are reported by Err and make every
// AddSlide fail.
func New(opts ...Option) *Deck {
	d := &Deck{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(d)
	}
	if d.width <= 0 || d.height <= 0 {
		d.err = &ValidationError{Field: "canvas", Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", d.width, d.height)}
	}
	return d
}

// Err returns deck level validation error, if any.
func (d *Deck) Err() error {
	return d.err
}

// AddSlide validates slide and appends a copy of it to the deck.
func (d *Deck) AddSlide(s Slide) (SlideRef, error) {
	if d.err != nil {
		return 0, d.err
	}
	num := len(d.slides) + 1
	if s == nil {
		return 0, &ValidationError{Slide: num, Field: "slide", Reason: "is nil"}
	}
	if !s.Kind().IsValid() {
		return 0, &ValidationError{Slide: num, Field: "kind", Reason: fmt.Sprintf("unsupported %s", s.Kind())}
	}
	if err := s.validate(num); err != nil {
		return 0, err
	}
	d.slides = append(d.slides, s.clone())
	return SlideRef(num), nil
}

// AddTitle appends title slide, member lines are parsed from raw text.
func (d *Deck) AddTitle(title, subtitle string, members []string, footer, notes string) (SlideRef, error) {
	return d.AddSlide(&TitleSlide{
		Title:    title,
		Subtitle: subtitle,
		Members:  textflow.ParseLines(members),
		Footer:   footer,
		Notes:    notes,
	})
}

// AddContent appends single column slide.
func (d *Deck) AddContent(title string, body []string, notes string) (SlideRef, error) {
	return d.AddSlide(&ContentSlide{
		Title: title,
		Body:  textflow.ParseLines(body),
		Notes: notes,
	})
}

// AddTwoColumn appends two column slide.
func (d *Deck) AddTwoColumn(title string, left, right []string, notes string) (SlideRef, error) {
	return d.AddSlide(&TwoColumnSlide{
		Title: title,
		Left:  textflow.ParseLines(left),
		Right: textflow.ParseLines(right),
		Notes: notes,
	})
}

// Slides returns copy of slides in insertion order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, 0, len(d.slides))
	for _, s := range d.slides {
		out = append(out, s.clone())
	}
	return out
}

// Slide returns copy of the referenced slide.
func (d *Deck) Slide(ref SlideRef) (Slide, bool) {
	if ref < 1 || int(ref) > len(d.slides) {
		return nil, false
	}
	return d.slides[ref-1].clone(), true
}

func (d *Deck) Len() int {
	return len(d.slides)
}

// Canvas returns slide width and height in EMU.
func (d *Deck) Canvas() (int64, int64) {
	return d.width, d.height
}

func (d *Deck) Metadata() Metadata {
	return d.meta
}

// HasNotes reports whether any slide carries speaker notes.
func (d *Deck) HasNotes() bool {
	return slices.ContainsFunc(d.slides, func(s Slide) bool {
		return strings.TrimSpace(s.SpeakerNotes()) != ""
	})
}

// String dumps deck as indented tree, used in debug reports.
func (d *Deck) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Deck %dx%d, %d slides", d.width, d.height, len(d.slides))
	tw.TextBlock(1, "Title", d.meta.Title)
	tw.TextBlock(1, "Author", d.meta.Author)
	tw.TextBlock(1, "Subject", d.meta.Subject)
	for i, s := range d.slides {
		tw.Line(1, "Slide %d [%s]", i+1, s.Kind())
		tw.TextBlock(2, "Title", s.Heading())
		switch v := s.(type) {
		case *TitleSlide:
			tw.TextBlock(2, "Subtitle", v.Subtitle)
			tw.Lines(2, "Members", formatLines(v.Members))
			tw.TextBlock(2, "Footer", v.Footer)
		case *ContentSlide:
			tw.Lines(2, "Body", formatLines(v.Body))
		case *TwoColumnSlide:
			tw.Lines(2, "Left", formatLines(v.Left))
			tw.Lines(2, "Right", formatLines(v.Right))
		}
		tw.TextBlock(2, "Notes", s.SpeakerNotes())
	}
	return tw.String()
}

func formatLines(lines []textflow.Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, fmt.Sprintf("(%d) %s", l.Depth, l.Text))
	}
	return out
}
