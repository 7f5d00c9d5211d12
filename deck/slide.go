package deck

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"pptgen/textflow"
)

// Slide is one of TitleSlide, ContentSlide or TwoColumnSlide.
type Slide interface {
	Kind() Kind
	Heading() string
	SpeakerNotes() string

	validate(num int) error
	clone() Slide
}

// TitleSlide opens the deck.
type TitleSlide struct {
	Title    string
	Subtitle string
	Members  []textflow.Line // attribution block, optional
	Footer   string          // caption at the bottom, optional
	Notes    string
}

// ContentSlide has title bar and single body frame.
type ContentSlide struct {
	Title string
	Body  []textflow.Line
	Notes string
}

// TwoColumnSlide has title bar and two independent frames.
type TwoColumnSlide struct {
	Title string
	Left  []textflow.Line
	Right []textflow.Line
	Notes string
}

func (s *TitleSlide) Kind() Kind           { return KindTitle }
func (s *TitleSlide) Heading() string      { return s.Title }
func (s *TitleSlide) SpeakerNotes() string { return s.Notes }

func (s *ContentSlide) Kind() Kind           { return KindContent }
func (s *ContentSlide) Heading() string      { return s.Title }
func (s *ContentSlide) SpeakerNotes() string { return s.Notes }

func (s *TwoColumnSlide) Kind() Kind           { return KindTwoColumn }
func (s *TwoColumnSlide) Heading() string      { return s.Title }
func (s *TwoColumnSlide) SpeakerNotes() string { return s.Notes }

func (s *TitleSlide) validate(num int) error {
	if err := validateTitle(num, s.Title); err != nil {
		return err
	}
	return validateLines(num, "members", s.Members)
}

func (s *ContentSlide) validate(num int) error {
	if err := validateTitle(num, s.Title); err != nil {
		return err
	}
	if len(s.Body) == 0 {
		return &ValidationError{Slide: num, Field: "body", Reason: "content slide must have at least one line"}
	}
	if err := validateLines(num, "body", s.Body); err != nil {
		return err
	}
	return requireText(num, "body", s.Body)
}

func (s *TwoColumnSlide) validate(num int) error {
	if err := validateTitle(num, s.Title); err != nil {
		return err
	}
	if len(s.Left) == 0 {
		return &ValidationError{Slide: num, Field: "left", Reason: "column must have at least one line"}
	}
	if len(s.Right) == 0 {
		return &ValidationError{Slide: num, Field: "right", Reason: "column must have at least one line"}
	}
	if err := validateLines(num, "left", s.Left); err != nil {
		return err
	}
	if err := validateLines(num, "right", s.Right); err != nil {
		return err
	}
	if err := requireText(num, "left", s.Left); err != nil {
		return err
	}
	return requireText(num, "right", s.Right)
}

func (s *TitleSlide) clone() Slide {
	c := *s
	c.Members = slices.Clone(s.Members)
	return &c
}

func (s *ContentSlide) clone() Slide {
	c := *s
	c.Body = slices.Clone(s.Body)
	return &c
}

func (s *TwoColumnSlide) clone() Slide {
	c := *s
	c.Left = slices.Clone(s.Left)
	c.Right = slices.Clone(s.Right)
	return &c
}

func validateTitle(num int, title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Slide: num, Field: "title", Reason: "must not be blank"}
	}
	return nil
}

// validateLines makes sure hand built lines agree with what parsing their
// raw text would produce and carry only characters a text run could store.
func validateLines(num int, field string, lines []textflow.Line) error {
	for i, l := range lines {
		if r, ok := illegalRune(l.Raw); ok {
			return &ValidationError{
				Slide:  num,
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: fmt.Sprintf("line %q contains character %U which could not be stored", l.Raw, r),
			}
		}
		want := textflow.ParseLine(l.Raw)
		if l.Depth != want.Depth {
			return &ValidationError{
				Slide:  num,
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: fmt.Sprintf("indent level %d inconsistent with %q (level %d)", l.Depth, l.Raw, want.Depth),
			}
		}
		if l.Text != want.Text {
			return &ValidationError{
				Slide:  num,
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: fmt.Sprintf("text %q does not match line %q", l.Text, l.Raw),
			}
		}
	}
	return nil
}

// requireText rejects frames where every line renders as an empty paragraph.
func requireText(num int, field string, lines []textflow.Line) error {
	for _, l := range lines {
		if !l.Blank() {
			return nil
		}
	}
	return &ValidationError{Slide: num, Field: field, Reason: "has no renderable content"}
}

// illegalRune finds first rune XML 1.0 text could not carry, control
// characters are refused as well.
func illegalRune(s string) (rune, bool) {
	for i, r := range s {
		switch {
		case r == utf8.RuneError:
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return r, true
			}
		case unicode.IsControl(r), r == 0xFFFE, r == 0xFFFF:
			return r, true
		}
	}
	return 0, false
}
