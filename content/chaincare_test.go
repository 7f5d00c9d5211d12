package content

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"pptgen/deck"
	"pptgen/layout"
	"pptgen/style"
)

func TestChainCare(t *testing.T) {
	d, err := ChainCare()
	if err != nil {
		t.Fatalf("ChainCare() error = %v", err)
	}

	if d.Len() != 30 {
		t.Fatalf("slides = %d, want 30", d.Len())
	}

	w, h := d.Canvas()
	if w != deck.DefaultWidth || h != deck.DefaultHeight {
		t.Errorf("canvas = %dx%d, want default", w, h)
	}
	if d.Metadata() != Metadata {
		t.Errorf("metadata = %+v", d.Metadata())
	}

	slides := d.Slides()
	for i, s := range slides {
		var want deck.Kind
		switch i + 1 {
		case 1:
			want = deck.KindTitle
		case 6, 14:
			want = deck.KindTwoColumn
		default:
			want = deck.KindContent
		}
		if s.Kind() != want {
			t.Errorf("slide %d kind = %s, want %s", i+1, s.Kind(), want)
		}
		// every slide but the title one carries speaker notes
		if hasNotes := strings.TrimSpace(s.SpeakerNotes()) != ""; hasNotes != (i > 0) {
			t.Errorf("slide %d notes = %q", i+1, s.SpeakerNotes())
		}
	}

	title, ok := slides[0].(*deck.TitleSlide)
	if !ok {
		t.Fatalf("first slide is %T", slides[0])
	}
	if title.Title != "ChainCare" || title.Footer != footer || len(title.Members) != 5 {
		t.Errorf("title slide = %+v", title)
	}
	if last := slides[len(slides)-1]; last.Heading() != "Questions & Answers" {
		t.Errorf("last slide heading = %q", last.Heading())
	}
}

func TestChainCare_Depths(t *testing.T) {
	d, err := ChainCare()
	if err != nil {
		t.Fatalf("ChainCare() error = %v", err)
	}

	s, _ := d.Slide(9)
	body := s.(*deck.ContentSlide).Body
	depths := map[string]int{
		"ML-Powered Credential Verification":      0,
		"1. Doctor uploads medical license image": 1,
		"• Name matching (vs profile name)":       2,
	}
	for _, l := range body {
		if want, ok := depths[l.Text]; ok {
			if l.Depth != want {
				t.Errorf("%q depth = %d, want %d", l.Text, l.Depth, want)
			}
			delete(depths, l.Text)
		}
	}
	if len(depths) != 0 {
		t.Errorf("lines not found: %v", depths)
	}
}

func TestChainCare_Renders(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))

	d, err := ChainCare()
	if err != nil {
		t.Fatalf("ChainCare() error = %v", err)
	}
	rendered, err := layout.Render(d, style.Default(), log)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rendered) != d.Len() {
		t.Fatalf("rendered %d slides, want %d", len(rendered), d.Len())
	}
	for i, rs := range rendered {
		if rs.Number != i+1 {
			t.Errorf("slide %d number = %d", i+1, rs.Number)
		}
	}
}

func TestChainCare_InvalidCanvas(t *testing.T) {
	if _, err := ChainCare(deck.WithCanvas(0, 0)); err == nil {
		t.Error("expected error for invalid canvas")
	}
}
