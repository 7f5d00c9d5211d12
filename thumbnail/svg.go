package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/beevik/etree"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"pptgen/layout"
	"pptgen/shape"
	"pptgen/style"
)

// points formats EMU value in points, SVG user space of the slide.
func points(v shape.EMU) string {
	return strconv.FormatFloat(float64(v)/float64(shape.EMUPerPoint), 'f', -1, 64)
}

// SlideSVG draws filled shapes of the tree as SVG rectangles in slide z-order.
// Text is not part of it, oksvg does not render text.
func SlideSVG(tree shape.Tree, c layout.Canvas, reg *style.Registry) ([]byte, error) {
	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", points(c.Width))
	svg.CreateAttr("height", points(c.Height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", points(c.Width), points(c.Height)))

	for _, s := range tree {
		name, ok := s.Fill()
		if !ok {
			continue
		}
		rgb, err := reg.Color(name)
		if err != nil {
			return nil, err
		}
		r := s.Rect()
		rect := svg.CreateElement("rect")
		rect.CreateAttr("x", points(r.X))
		rect.CreateAttr("y", points(r.Y))
		rect.CreateAttr("width", points(r.CX))
		rect.CreateAttr("height", points(r.CY))
		rect.CreateAttr("fill", "#"+rgb.Hex())
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rasterizeSVG rasterizes SVG onto white w x h RGBA image.
func rasterizeSVG(svgData []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	w = max(w, 1)
	h = max(h, 1)
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}
