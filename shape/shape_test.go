package shape

import (
	"testing"

	"pptgen/style"
)

func TestUnits(t *testing.T) {
	if got := Inches(1); got != 914400 {
		t.Errorf("Inches(1) = %d, want 914400", got)
	}
	if got := Inches(7.5); got != 6858000 {
		t.Errorf("Inches(7.5) = %d, want 6858000", got)
	}
	if got := Inches(0.2); got != 182880 {
		t.Errorf("Inches(0.2) = %d, want 182880", got)
	}
	if got := Points(1); got != 12700 {
		t.Errorf("Points(1) = %d, want 12700", got)
	}
	if got := Pt(18); got != 1800 {
		t.Errorf("Pt(18) = %d, want 1800", got)
	}
	if got := Pt(18).Points(); got != 18 {
		t.Errorf("Points() = %v, want 18", got)
	}
}

func TestParagraph_Immutable(t *testing.T) {
	st := TextStyle{Size: Pt(20), Color: style.NeutralDark, Font: style.Body}
	runs := []Run{NewRun("one", st), NewRun(" two", st)}

	p := NewParagraph(ParagraphProps{Level: 1}, st, runs...)
	runs[0] = NewRun("changed", st)

	if got := p.Text(); got != "one two" {
		t.Errorf("Text() = %q, want %q", got, "one two")
	}

	got := p.Runs()
	got[1] = NewRun("changed", st)
	if p.Runs()[1].Text() != " two" {
		t.Error("Runs() exposes internal slice")
	}
}

func TestParagraph_Empty(t *testing.T) {
	p := NewParagraph(ParagraphProps{}, TextStyle{Size: Pt(16)})
	if !p.IsEmpty() {
		t.Error("paragraph without runs must be empty")
	}
	if p.Text() != "" {
		t.Errorf("Text() = %q, want empty", p.Text())
	}
	if p.EndStyle().Size != Pt(16) {
		t.Errorf("EndStyle().Size = %d, want %d", p.EndStyle().Size, Pt(16))
	}
}

func TestShape_Kinds(t *testing.T) {
	r := Rect{X: 1, Y: 2, CX: 3, CY: 4}

	fill := NewFill("Background", r, style.Primary)
	if c, ok := fill.Fill(); !ok || c != style.Primary {
		t.Errorf("Fill() = %q, %v", c, ok)
	}
	if _, ok := fill.Text(); ok {
		t.Error("fill shape must not have text frame")
	}

	box := NewTextBox("Title", r, NewTextFrame(true, NewParagraph(ParagraphProps{}, TextStyle{})))
	if _, ok := box.Fill(); ok {
		t.Error("text box must not have fill")
	}
	f, ok := box.Text()
	if !ok {
		t.Fatal("text box must have text frame")
	}
	if !f.Wrap() || f.Len() != 1 {
		t.Errorf("unexpected frame: wrap=%v len=%d", f.Wrap(), f.Len())
	}
	if box.Rect() != r {
		t.Errorf("Rect() = %+v, want %+v", box.Rect(), r)
	}

	tree := Tree{fill, box}
	if n := len(tree.TextFrames()); n != 1 {
		t.Errorf("TextFrames() returned %d frames, want 1", n)
	}
}
