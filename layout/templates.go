package layout

import (
	"pptgen/deck"
	"pptgen/shape"
	"pptgen/style"
	"pptgen/textflow"
)

// Shape names, also used as cNvPr names in slide markup.
const (
	NameBackground  = "Background"
	NameTitleBar    = "Title Bar"
	NameTitle       = "Title"
	NameSubtitle    = "Subtitle"
	NameMembers     = "Members"
	NameFooter      = "Footer"
	NameBody        = "Body"
	NameLeftColumn  = "Left Column"
	NameRightColumn = "Right Column"
)

var (
	titleStyle        = shape.TextStyle{Size: shape.Pt(54), Bold: true, Color: style.White, Font: style.Heading}
	subtitleStyle     = shape.TextStyle{Size: shape.Pt(28), Color: style.White, Font: style.Body}
	footerStyle       = shape.TextStyle{Size: shape.Pt(14), Color: style.White, Font: style.Body}
	contentTitleStyle = shape.TextStyle{Size: shape.Pt(36), Bold: true, Color: style.White, Font: style.Heading}
	columnTitleStyle  = shape.TextStyle{Size: shape.Pt(32), Bold: true, Color: style.White, Font: style.Heading}

	titleBarHeight = shape.Inches(1)
)

// Template renders one slide variant into shape tree positioned in absolute
// canvas coordinates.
type Template func(s deck.Slide, c Canvas) shape.Tree

// Canvas is the slide size in EMU.
type Canvas struct {
	Width, Height shape.EMU
}

func box(x, y, cx, cy float64) shape.Rect {
	return shape.Rect{X: shape.Inches(x), Y: shape.Inches(y), CX: shape.Inches(cx), CY: shape.Inches(cy)}
}

// single paragraph text frame
func caption(text string, st shape.TextStyle, align shape.Align) shape.TextFrame {
	props := shape.ParagraphProps{Align: align}
	return shape.NewTextFrame(false, shape.NewParagraph(props, st, shape.NewRun(text, st)))
}

func background(c Canvas, color style.ColorName) shape.Shape {
	return shape.NewFill(NameBackground, shape.Rect{CX: c.Width, CY: c.Height}, color)
}

// TitleTemplate is full canvas primary background with centered title,
// subtitle, optional attribution block and footer caption.
func TitleTemplate(s deck.Slide, c Canvas) shape.Tree {
	ts := s.(*deck.TitleSlide)

	tree := shape.Tree{
		background(c, style.Primary),
		shape.NewTextBox(NameTitle, box(1, 2, 8, 1), caption(ts.Title, titleStyle, shape.AlignCenter)),
		shape.NewTextBox(NameSubtitle, box(1, 3.2, 8, 0.6), caption(ts.Subtitle, subtitleStyle, shape.AlignCenter)),
	}
	if len(ts.Members) > 0 {
		frame := shape.NewTextFrame(false, textflow.LayoutLines(ts.Members, textflow.MembersProfile)...)
		tree = append(tree, shape.NewTextBox(NameMembers, box(1.5, 4.5, 7, 1.5), frame))
	}
	if ts.Footer != "" {
		tree = append(tree, shape.NewTextBox(NameFooter, box(1, 6.5, 8, 0.5), caption(ts.Footer, footerStyle, shape.AlignCenter)))
	}
	return tree
}

// ContentTemplate is white background with primary title bar and single
// body frame below it.
func ContentTemplate(s deck.Slide, c Canvas) shape.Tree {
	cs := s.(*deck.ContentSlide)

	body := shape.NewTextFrame(true, textflow.LayoutLines(cs.Body, textflow.ContentProfile)...)
	return shape.Tree{
		background(c, style.White),
		shape.NewFill(NameTitleBar, shape.Rect{CX: c.Width, CY: titleBarHeight}, style.Primary),
		shape.NewTextBox(NameTitle, box(0.5, 0.2, 9, 0.6), caption(cs.Title, contentTitleStyle, shape.AlignLeft)),
		shape.NewTextBox(NameBody, box(0.5, 1.5, 9, 5.5), body),
	}
}

// TwoColumnTemplate differs from ContentTemplate by accent title bar and
// two frames laid out independently of each other.
func TwoColumnTemplate(s deck.Slide, c Canvas) shape.Tree {
	ts := s.(*deck.TwoColumnSlide)

	left := shape.NewTextFrame(true, textflow.LayoutLines(ts.Left, textflow.ColumnProfile)...)
	right := shape.NewTextFrame(true, textflow.LayoutLines(ts.Right, textflow.ColumnProfile)...)
	return shape.Tree{
		background(c, style.White),
		shape.NewFill(NameTitleBar, shape.Rect{CX: c.Width, CY: titleBarHeight}, style.Accent),
		shape.NewTextBox(NameTitle, box(0.5, 0.2, 9, 0.6), caption(ts.Title, columnTitleStyle, shape.AlignLeft)),
		shape.NewTextBox(NameLeftColumn, box(0.5, 1.5, 4.5, 5.5), left),
		shape.NewTextBox(NameRightColumn, box(5.2, 1.5, 4.3, 5.5), right),
	}
}

var templates = map[deck.Kind]Template{
	deck.KindTitle:     TitleTemplate,
	deck.KindContent:   ContentTemplate,
	deck.KindTwoColumn: TwoColumnTemplate,
}

// TemplateFor returns template for slide variant.
func TemplateFor(k deck.Kind) (Template, bool) {
	t, ok := templates[k]
	return t, ok
}
