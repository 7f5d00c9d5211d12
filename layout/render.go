// Package layout maps content model slides to shape trees. Every template is
// a pure function of slide and canvas, styling is resolved against registry
// passed by caller.
package layout

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pptgen/deck"
	"pptgen/shape"
	"pptgen/style"
)

// RenderedSlide is a shape tree of a single slide with its speaker notes.
type RenderedSlide struct {
	Number int // 1-based deck position
	Kind   deck.Kind
	Shapes shape.Tree
	Notes  string
}

// Render walks slides in deck order. All style references which registry
// could not resolve are reported together.
func Render(d *deck.Deck, reg *style.Registry, log *zap.Logger) ([]RenderedSlide, error) {
	if err := d.Err(); err != nil {
		return nil, err
	}

	width, height := d.Canvas()
	c := Canvas{Width: shape.EMU(width), Height: shape.EMU(height)}

	var errs error
	slides := d.Slides()
	rendered := make([]RenderedSlide, 0, len(slides))
	for i, s := range slides {
		tmpl, ok := TemplateFor(s.Kind())
		if !ok {
			return nil, &deck.ValidationError{Slide: i + 1, Field: "kind", Reason: fmt.Sprintf("no template for %s", s.Kind())}
		}
		tree := tmpl(s, c)
		if err := Check(tree, reg, i+1); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		log.Debug("Slide rendered", zap.Int("slide", i+1), zap.Stringer("kind", s.Kind()), zap.Int("shapes", len(tree)))
		rendered = append(rendered, RenderedSlide{
			Number: i + 1,
			Kind:   s.Kind(),
			Shapes: tree,
			Notes:  s.SpeakerNotes(),
		})
	}
	if errs != nil {
		return nil, errs
	}
	return rendered, nil
}

// Check resolves every color and font the tree references. Returned error
// combines *style.ResolutionError values, one per unresolved reference.
func Check(tree shape.Tree, reg *style.Registry, num int) error {
	var errs error
	for _, s := range tree {
		where := fmt.Sprintf("slide %d, shape %q", num, s.Name())
		if c, ok := s.Fill(); ok {
			errs = multierr.Append(errs, checkColor(reg, c, where))
		}
		f, ok := s.Text()
		if !ok {
			continue
		}
		for _, p := range f.Paragraphs() {
			errs = multierr.Append(errs, checkStyle(reg, p.EndStyle(), where))
			for _, r := range p.Runs() {
				errs = multierr.Append(errs, checkStyle(reg, r.Style(), where))
			}
		}
	}
	return errs
}

func checkStyle(reg *style.Registry, st shape.TextStyle, where string) error {
	return multierr.Append(checkColor(reg, st.Color, where), checkFont(reg, st.Font, where))
}

func checkColor(reg *style.Registry, name style.ColorName, where string) error {
	if _, err := reg.Color(name); err != nil {
		return withWhere(err, where)
	}
	return nil
}

func checkFont(reg *style.Registry, name style.FontName, where string) error {
	if _, err := reg.Font(name); err != nil {
		return withWhere(err, where)
	}
	return nil
}

func withWhere(err error, where string) error {
	if rerr, ok := err.(*style.ResolutionError); ok {
		return rerr.At(where)
	}
	return err
}
