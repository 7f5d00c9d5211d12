package pptx

import (
	"strings"

	"github.com/beevik/etree"
)

// notesDocument encodes speaker notes, every line of text is a paragraph.
func notesDocument(text, lang string) *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:notes")

	spTree := writeGroupRoot(root.CreateElement("p:cSld"))

	img := spTree.CreateElement("p:sp")
	writePlaceholderProps(img, 2, "Slide Image Placeholder 1", "sldImg", "")
	img.CreateElement("p:spPr")

	body := spTree.CreateElement("p:sp")
	writePlaceholderProps(body, 3, "Notes Placeholder 2", "body", "1")
	body.CreateElement("p:spPr")

	txBody := body.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	for line := range strings.SplitSeq(text, "\n") {
		ap := txBody.CreateElement("a:p")
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		r := ap.CreateElement("a:r")
		rPr := r.CreateElement("a:rPr")
		if lang != "" {
			rPr.CreateAttr("lang", lang)
		}
		rPr.CreateAttr("dirty", "0")
		r.CreateElement("a:t").SetText(line)
	}

	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")
	return doc
}

func writePlaceholderProps(sp *etree.Element, id int, name, typ, idx string) {
	nv := sp.CreateElement("p:nvSpPr")
	pr := nv.CreateElement("p:cNvPr")
	pr.CreateAttr("id", itoa(id))
	pr.CreateAttr("name", name)
	locks := nv.CreateElement("p:cNvSpPr").CreateElement("a:spLocks")
	locks.CreateAttr("noGrp", "1")
	if typ == "sldImg" {
		locks.CreateAttr("noRot", "1")
		locks.CreateAttr("noChangeAspect", "1")
	}
	ph := nv.CreateElement("p:nvPr").CreateElement("p:ph")
	ph.CreateAttr("type", typ)
	if idx != "" {
		ph.CreateAttr("idx", idx)
	}
}
