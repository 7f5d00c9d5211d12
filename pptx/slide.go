package pptx

import (
	"strconv"

	"github.com/beevik/etree"

	"pptgen/shape"
	"pptgen/style"
)

func itoa[T ~int | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

var alignValues = map[shape.Align]string{
	shape.AlignCenter: "ctr",
	shape.AlignRight:  "r",
}

// slideWriter encodes shape trees, all style references are resolved through
// the registry.
type slideWriter struct {
	reg  *style.Registry
	lang string
}

func (sw *slideWriter) document(tree shape.Tree) (*etree.Document, error) {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:sld")

	spTree := writeGroupRoot(root.CreateElement("p:cSld"))
	for i, s := range tree {
		// id 1 is taken by the root group
		if err := sw.writeShape(spTree, i+2, s); err != nil {
			return nil, err
		}
	}
	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")
	return doc, nil
}

func (sw *slideWriter) writeShape(spTree *etree.Element, id int, s shape.Shape) error {
	sp := spTree.CreateElement("p:sp")
	frame, isText := s.Text()

	nv := sp.CreateElement("p:nvSpPr")
	pr := nv.CreateElement("p:cNvPr")
	pr.CreateAttr("id", itoa(id))
	pr.CreateAttr("name", s.Name())
	cNvSpPr := nv.CreateElement("p:cNvSpPr")
	if isText {
		cNvSpPr.CreateAttr("txBox", "1")
	}
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	r := s.Rect()
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", itoa(r.X))
	off.CreateAttr("y", itoa(r.Y))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", itoa(r.CX))
	ext.CreateAttr("cy", itoa(r.CY))
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")

	if fill, ok := s.Fill(); ok {
		if err := sw.writeSolidFill(spPr, fill, s.Name()); err != nil {
			return err
		}
		spPr.CreateElement("a:ln").CreateElement("a:noFill")
	} else {
		spPr.CreateElement("a:noFill")
	}

	if !isText {
		return nil
	}
	return sw.writeTextBody(sp, frame, s.Name())
}

func (sw *slideWriter) writeTextBody(sp *etree.Element, frame shape.TextFrame, where string) error {
	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	if frame.Wrap() {
		bodyPr.CreateAttr("wrap", "square")
	} else {
		bodyPr.CreateAttr("wrap", "none")
	}
	bodyPr.CreateAttr("rtlCol", "0")
	bodyPr.CreateAttr("anchor", "t")
	txBody.CreateElement("a:lstStyle")

	paragraphs := frame.Paragraphs()
	if len(paragraphs) == 0 {
		// text body must have at least one paragraph
		txBody.CreateElement("a:p")
		return nil
	}
	for _, p := range paragraphs {
		if err := sw.writeParagraph(txBody, p, where); err != nil {
			return err
		}
	}
	return nil
}

func (sw *slideWriter) writeParagraph(txBody *etree.Element, p shape.Paragraph, where string) error {
	ap := txBody.CreateElement("a:p")

	pPr := ap.CreateElement("a:pPr")
	if p.Level() > 0 {
		pPr.CreateAttr("lvl", itoa(p.Level()))
	}
	if p.Indent() > 0 {
		pPr.CreateAttr("marL", itoa(p.Indent()))
	}
	if algn, ok := alignValues[p.Align()]; ok {
		pPr.CreateAttr("algn", algn)
	}
	if p.SpaceAfter() > 0 {
		pPr.CreateElement("a:spcAft").CreateElement("a:spcPts").CreateAttr("val", itoa(p.SpaceAfter()))
	}
	pPr.CreateElement("a:buNone")

	for _, r := range p.Runs() {
		ar := ap.CreateElement("a:r")
		if err := sw.writeRunProps(ar, "a:rPr", r.Style(), where); err != nil {
			return err
		}
		ar.CreateElement("a:t").SetText(r.Text())
	}
	return sw.writeRunProps(ap, "a:endParaRPr", p.EndStyle(), where)
}

func (sw *slideWriter) writeRunProps(parent *etree.Element, tag string, st shape.TextStyle, where string) error {
	rPr := parent.CreateElement(tag)
	if sw.lang != "" {
		rPr.CreateAttr("lang", sw.lang)
	}
	rPr.CreateAttr("sz", itoa(st.Size))
	if st.Bold {
		rPr.CreateAttr("b", "1")
	}
	rPr.CreateAttr("dirty", "0")

	if err := sw.writeSolidFill(rPr, st.Color, where); err != nil {
		return err
	}
	typeface, err := sw.reg.Font(st.Font)
	if err != nil {
		return withWhere(err, where)
	}
	rPr.CreateElement("a:latin").CreateAttr("typeface", typeface)
	return nil
}

func (sw *slideWriter) writeSolidFill(parent *etree.Element, name style.ColorName, where string) error {
	c, err := sw.reg.Color(name)
	if err != nil {
		return withWhere(err, where)
	}
	parent.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", c.Hex())
	return nil
}
