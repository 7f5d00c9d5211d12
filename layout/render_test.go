package layout

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"pptgen/deck"
	"pptgen/shape"
	"pptgen/style"
)

func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
}

func scenarioDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d := deck.New()
	if _, err := d.AddTitle("X", "Y", []string{"A", "B"}, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddContent("Z", []string{"Top", "  Mid", "    Leaf"}, "notes"); err != nil {
		t.Fatal(err)
	}
	return d
}

func findShape(t *testing.T, tree shape.Tree, name string) shape.Shape {
	t.Helper()
	for _, s := range tree {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("shape %q not found", name)
	return shape.Shape{}
}

func TestRender_Scenario(t *testing.T) {
	rendered, err := Render(scenarioDeck(t), style.Default(), setupTestLogger(t))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("got %d slides, want 2", len(rendered))
	}
	if rendered[0].Kind != deck.KindTitle || rendered[1].Kind != deck.KindContent {
		t.Errorf("unexpected kinds %s, %s", rendered[0].Kind, rendered[1].Kind)
	}
	if rendered[1].Number != 2 || rendered[1].Notes != "notes" {
		t.Errorf("unexpected slide 2: %+v", rendered[1])
	}

	members, _ := findShape(t, rendered[0].Shapes, NameMembers).Text()
	if members.Len() != 2 {
		t.Errorf("members paragraphs = %d, want 2", members.Len())
	}
	for _, p := range members.Paragraphs() {
		if p.Align() != shape.AlignCenter {
			t.Error("members must be centered")
		}
	}

	body, _ := findShape(t, rendered[1].Shapes, NameBody).Text()
	if !body.Wrap() {
		t.Error("body must wrap")
	}
	levels := []int{}
	for _, p := range body.Paragraphs() {
		levels = append(levels, p.Level())
	}
	if len(levels) != 3 || levels[0] != 0 || levels[1] != 1 || levels[2] != 1 {
		t.Errorf("levels = %v, want [0 1 1]", levels)
	}
}

func TestTitleTemplate(t *testing.T) {
	c := Canvas{Width: shape.Inches(10), Height: shape.Inches(7.5)}

	tests := []struct {
		name  string
		slide *deck.TitleSlide
		want  []string
	}{
		{
			name:  "bare",
			slide: &deck.TitleSlide{Title: "X", Subtitle: "Y"},
			want:  []string{NameBackground, NameTitle, NameSubtitle},
		},
		{
			name:  "with footer",
			slide: &deck.TitleSlide{Title: "X", Subtitle: "Y", Footer: "F"},
			want:  []string{NameBackground, NameTitle, NameSubtitle, NameFooter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := TitleTemplate(tt.slide, c)
			if len(tree) != len(tt.want) {
				t.Fatalf("got %d shapes, want %d", len(tree), len(tt.want))
			}
			for i, name := range tt.want {
				if tree[i].Name() != name {
					t.Errorf("shape %d = %q, want %q", i, tree[i].Name(), name)
				}
			}
			bg, _ := tree[0].Fill()
			if bg != style.Primary || tree[0].Rect() != (shape.Rect{CX: c.Width, CY: c.Height}) {
				t.Errorf("unexpected background %v %v", bg, tree[0].Rect())
			}
			if r := tree[1].Rect(); r.X != shape.Inches(1) || r.Y != shape.Inches(2) || r.CX != shape.Inches(8) {
				t.Errorf("unexpected title rect %+v", r)
			}
		})
	}
}

func TestColumnTemplates_BarColor(t *testing.T) {
	c := Canvas{Width: shape.Inches(10), Height: shape.Inches(7.5)}
	d := deck.New()
	if _, err := d.AddContent("C", []string{"a"}, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddTwoColumn("T", []string{"l1", "", "  l2"}, []string{"r1"}, ""); err != nil {
		t.Fatal(err)
	}
	slides := d.Slides()

	content := ContentTemplate(slides[0], c)
	columns := TwoColumnTemplate(slides[1], c)

	cb, _ := findShape(t, content, NameTitleBar).Fill()
	tb, _ := findShape(t, columns, NameTitleBar).Fill()
	if cb != style.Primary || tb != style.Accent {
		t.Errorf("bar colors = %s, %s", cb, tb)
	}

	left, _ := findShape(t, columns, NameLeftColumn).Text()
	right, _ := findShape(t, columns, NameRightColumn).Text()
	if left.Len() != 3 || right.Len() != 1 {
		t.Errorf("column paragraphs = %d, %d; want 3, 1", left.Len(), right.Len())
	}
	if !left.Paragraphs()[1].IsEmpty() {
		t.Error("blank line must render as empty paragraph")
	}
	if got := left.Paragraphs()[0].Runs()[0].Style().Size; got != shape.Pt(16) {
		t.Errorf("column size = %d, want %d", got, shape.Pt(16))
	}
	if r := findShape(t, columns, NameRightColumn).Rect(); r.X != shape.Inches(5.2) || r.CX != shape.Inches(4.3) {
		t.Errorf("unexpected right column rect %+v", r)
	}
}

func TestCheck_UnknownStyle(t *testing.T) {
	st := shape.TextStyle{Size: shape.Pt(10), Color: "magenta", Font: "mono"}
	tree := shape.Tree{
		shape.NewFill("Box", shape.Rect{CX: 1, CY: 1}, "ochre"),
		shape.NewTextBox("Text", shape.Rect{CX: 1, CY: 1}, shape.NewTextFrame(false, shape.NewParagraph(shape.ParagraphProps{}, st))),
	}

	err := Check(tree, style.Default(), 4)
	var rerr *style.ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if rerr.Name != "ochre" || rerr.Where != `slide 4, shape "Box"` {
		t.Errorf("unexpected first error %+v", rerr)
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("got %d errors, want 3", got)
	}
}

func TestRender_RestrictedRegistry(t *testing.T) {
	reg := style.New(map[style.ColorName]style.RGB{style.White: {255, 255, 255}}, map[style.FontName]string{
		style.Heading: "Arial",
		style.Body:    "Arial",
	})

	_, err := Render(scenarioDeck(t), reg, setupTestLogger(t))
	var rerr *style.ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if rerr.Name != string(style.Primary) {
		t.Errorf("unresolved name = %q", rerr.Name)
	}
}
