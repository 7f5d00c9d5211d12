// Package thumbnail renders small JPEG preview of a slide to be stored in
// package document properties.
package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pptgen/layout"
	"pptgen/shape"
	"pptgen/style"
)

// Options of the produced image.
type Options struct {
	Width   int // pixels, height follows slide aspect ratio
	Quality int // JPEG quality 1-100
}

// Render draws the tree at one pixel per point, scales the result down to
// requested width and encodes it as JPEG.
func Render(tree shape.Tree, c layout.Canvas, reg *style.Registry, opts Options) ([]byte, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", c.Width, c.Height)
	}
	if opts.Width <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", opts.Width)
	}

	svg, err := SlideSVG(tree, c, reg)
	if err != nil {
		return nil, fmt.Errorf("unable to build slide outline: %w", err)
	}

	w := int(math.Ceil(float64(c.Width) / float64(shape.EMUPerPoint)))
	h := int(math.Ceil(float64(c.Height) / float64(shape.EMUPerPoint)))
	img, err := rasterizeSVG(svg, w, h)
	if err != nil {
		return nil, fmt.Errorf("unable to rasterize slide: %w", err)
	}
	if err := drawText(img, tree, reg); err != nil {
		return nil, err
	}

	scaled := imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	data, err := encodeJPEG(scaled, opts.Quality)
	if err != nil {
		return nil, fmt.Errorf("unable to encode thumbnail: %w", err)
	}
	if !filetype.Is(data, "jpg") {
		return nil, fmt.Errorf("thumbnail encoder produced unexpected data")
	}
	return data, nil
}

// drawText writes paragraphs of every text frame with fixed size face, each
// clipped to its shape rectangle.
func drawText(img *image.RGBA, tree shape.Tree, reg *style.Registry) error {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	for _, s := range tree {
		frame, ok := s.Text()
		if !ok {
			continue
		}
		r := s.Rect()
		box := image.Rect(ptPixels(r.X), ptPixels(r.Y), ptPixels(r.X+r.CX), ptPixels(r.Y+r.CY)).Intersect(img.Bounds())
		if box.Empty() {
			continue
		}
		dst := img.SubImage(box).(*image.RGBA)

		y := box.Min.Y
		for _, p := range frame.Paragraphs() {
			// at least face height, the rest scales with font size
			step := max(lineHeight, int(math.Round(p.EndStyle().Size.Points()*1.2)))
			y += step
			if p.IsEmpty() {
				continue
			}
			rgb, err := reg.Color(p.EndStyle().Color)
			if err != nil {
				return err
			}
			text := p.Text()
			x := box.Min.X + ptPixels(p.Indent())
			switch p.Align() {
			case shape.AlignCenter:
				x = box.Min.X + (box.Dx()-font.MeasureString(face, text).Ceil())/2
			case shape.AlignRight:
				x = box.Max.X - font.MeasureString(face, text).Ceil()
			}
			d := &font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}),
				Face: face,
				Dot:  fixed.P(x, y),
			}
			d.DrawString(text)
		}
	}
	return nil
}

func ptPixels(v shape.EMU) int {
	return int(math.Round(float64(v) / float64(shape.EMUPerPoint)))
}
