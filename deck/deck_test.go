package deck

import (
	"errors"
	"strings"
	"testing"

	"pptgen/textflow"
)

func TestAddContent_EmptyBody(t *testing.T) {
	d := New()
	_, err := d.AddContent("Z", nil, "")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Slide != 1 || verr.Field != "body" {
		t.Errorf("unexpected error details: %+v", verr)
	}
	if d.Len() != 0 {
		t.Errorf("invalid slide must not be added, deck has %d slides", d.Len())
	}
}

func TestAddSlide_Validation(t *testing.T) {
	tests := []struct {
		name  string
		slide Slide
		field string
	}{
		{"nil slide", nil, "slide"},
		{"blank title", &ContentSlide{Title: "  ", Body: textflow.ParseLines([]string{"a"})}, "title"},
		{"empty left column", &TwoColumnSlide{Title: "T", Right: textflow.ParseLines([]string{"a"})}, "left"},
		{"empty right column", &TwoColumnSlide{Title: "T", Left: textflow.ParseLines([]string{"a"})}, "right"},
		{"depth mismatch", &ContentSlide{Title: "T", Body: []textflow.Line{{Raw: "  Mid", Text: "Mid", Depth: 0}}}, "body[0]"},
		{"text mismatch", &ContentSlide{Title: "T", Body: []textflow.Line{{Raw: "Top", Text: "Other", Depth: 0}}}, "body[0]"},
		{"blank only body", &ContentSlide{Title: "T", Body: textflow.ParseLines([]string{"", "   "})}, "body"},
		{"single empty line", &ContentSlide{Title: "T", Body: textflow.ParseLines([]string{""})}, "body"},
		{"blank only right column", &TwoColumnSlide{Title: "T", Left: textflow.ParseLines([]string{"x"}), Right: textflow.ParseLines([]string{""})}, "right"},
		{"blank only left column", &TwoColumnSlide{Title: "T", Left: textflow.ParseLines([]string{" "}), Right: textflow.ParseLines([]string{"x"})}, "left"},
		{"vertical tab", &ContentSlide{Title: "T", Body: textflow.ParseLines([]string{"ok", "a\x0bb"})}, "body[1]"},
		{"nul in column", &TwoColumnSlide{Title: "T", Left: textflow.ParseLines([]string{"x"}), Right: textflow.ParseLines([]string{"\x00"})}, "right[0]"},
		{"invalid utf8", &ContentSlide{Title: "T", Body: textflow.ParseLines([]string{"a\xffb"})}, "body[0]"},
		{"control in member", &TitleSlide{Title: "T", Members: textflow.ParseLines([]string{"A\x1b"})}, "members[0]"},
		{"member depth mismatch", &TitleSlide{Title: "T", Members: []textflow.Line{{Raw: "A", Text: "A", Depth: 2}}}, "members[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			_, err := d.AddSlide(tt.slide)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestAddSlide_OrderAndRefs(t *testing.T) {
	d := New(WithMetadata(Metadata{Title: "Deck"}))

	refs := make([]SlideRef, 0, 3)
	for _, add := range []func() (SlideRef, error){
		func() (SlideRef, error) { return d.AddTitle("X", "Y", []string{"A", "B"}, "", "") },
		func() (SlideRef, error) { return d.AddContent("Z", []string{"Top", "  Mid", "    Leaf"}, "notes") },
		func() (SlideRef, error) { return d.AddTwoColumn("W", []string{"l"}, []string{"r"}, "") },
	} {
		ref, err := add()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		refs = append(refs, ref)
	}

	for i, ref := range refs {
		if int(ref) != i+1 {
			t.Errorf("ref %d = %d", i, ref)
		}
	}

	slides := d.Slides()
	wantKinds := []Kind{KindTitle, KindContent, KindTwoColumn}
	for i, s := range slides {
		if s.Kind() != wantKinds[i] {
			t.Errorf("slide %d kind = %s, want %s", i+1, s.Kind(), wantKinds[i])
		}
	}

	c, ok := d.Slide(2)
	if !ok {
		t.Fatal("slide 2 not found")
	}
	body := c.(*ContentSlide).Body
	if body[1].Depth != 1 || body[2].Depth != 2 || body[2].Text != "Leaf" {
		t.Errorf("unexpected body lines: %+v", body)
	}
	if !d.HasNotes() {
		t.Error("HasNotes() = false")
	}
	if _, ok := d.Slide(4); ok {
		t.Error("slide 4 must not exist")
	}
}

func TestDeck_OwnsSlides(t *testing.T) {
	d := New()
	s := &ContentSlide{Title: "T", Body: textflow.ParseLines([]string{"a", "b"})}
	if _, err := d.AddSlide(s); err != nil {
		t.Fatal(err)
	}

	s.Title = "changed"
	s.Body[0].Text = "changed"

	got := d.Slides()[0].(*ContentSlide)
	if got.Title != "T" || got.Body[0].Text != "a" {
		t.Error("deck must not share slide with caller")
	}

	got.Body[1].Text = "changed"
	if d.Slides()[0].(*ContentSlide).Body[1].Text != "b" {
		t.Error("Slides() must return copies")
	}
}

func TestNew_Canvas(t *testing.T) {
	w, h := New().Canvas()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("default canvas = %dx%d", w, h)
	}

	d := New(WithCanvas(0, 100))
	if d.Err() == nil {
		t.Fatal("expected canvas error")
	}
	if _, err := d.AddContent("T", []string{"a"}, ""); err == nil {
		t.Error("AddContent must fail on invalid canvas")
	}
}

func TestKind(t *testing.T) {
	if KindTwoColumn.String() != "two-column" {
		t.Errorf("String() = %q", KindTwoColumn.String())
	}
	if Kind(7).String() != "Kind(7)" {
		t.Errorf("String() = %q", Kind(7).String())
	}
}

func TestDeck_String(t *testing.T) {
	d := New(WithMetadata(Metadata{Title: "Deck", Author: "Team"}))
	if _, err := d.AddContent("Z", []string{"Top", "  Mid"}, "say it"); err != nil {
		t.Fatal(err)
	}

	out := d.String()
	for _, want := range []string{
		"Deck 9144000x6858000, 1 slides",
		"  Slide 1 [content]",
		"    Title: \"Z\"",
		"    Body (2)",
		"      2: \"(1) Mid\"",
		"    Notes: \"say it\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}
}
