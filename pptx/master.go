package pptx

import (
	"github.com/beevik/etree"
)

// Master and layout ids share a number space starting at 2^31.
const (
	slideMasterID = 2147483648
	slideLayoutID = 2147483649
	firstSlideID  = 256
)

// Portrait letter notes page.
const (
	notesPageWidth  = 6858000
	notesPageHeight = 9144000
)

// presentationRoot creates PresentationML document element with the usual
// namespace declarations.
func presentationRoot(doc *etree.Document, tag string) *etree.Element {
	root := doc.CreateElement(tag)
	root.CreateAttr("xmlns:a", nsDrawingML)
	root.CreateAttr("xmlns:r", nsRelationships)
	root.CreateAttr("xmlns:p", nsPresentationML)
	return root
}

// writeGroupRoot writes empty root group of a shape tree and returns the tree.
func writeGroupRoot(cSld *etree.Element) *etree.Element {
	tree := cSld.CreateElement("p:spTree")
	nv := tree.CreateElement("p:nvGrpSpPr")
	pr := nv.CreateElement("p:cNvPr")
	pr.CreateAttr("id", "1")
	pr.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")

	xfrm := tree.CreateElement("p:grpSpPr").CreateElement("a:xfrm")
	for _, tag := range []string{"a:off", "a:ext", "a:chOff", "a:chExt"} {
		e := xfrm.CreateElement(tag)
		if tag == "a:off" || tag == "a:chOff" {
			e.CreateAttr("x", "0")
			e.CreateAttr("y", "0")
		} else {
			e.CreateAttr("cx", "0")
			e.CreateAttr("cy", "0")
		}
	}
	return tree
}

func writeColorMap(parent *etree.Element) {
	cm := parent.CreateElement("p:clrMap")
	for _, kv := range [][2]string{
		{"bg1", "lt1"}, {"tx1", "dk1"}, {"bg2", "lt2"}, {"tx2", "dk2"},
		{"accent1", "accent1"}, {"accent2", "accent2"}, {"accent3", "accent3"},
		{"accent4", "accent4"}, {"accent5", "accent5"}, {"accent6", "accent6"},
		{"hlink", "hlink"}, {"folHlink", "folHlink"},
	} {
		cm.CreateAttr(kv[0], kv[1])
	}
}

// writeLevelStyle writes list style with single first level default.
func writeLevelStyle(parent *etree.Element, tag, size string) {
	lvl := parent.CreateElement(tag).CreateElement("a:lvl1pPr")
	rPr := lvl.CreateElement("a:defRPr")
	rPr.CreateAttr("sz", size)
	rPr.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "tx1")
	rPr.CreateElement("a:latin").CreateAttr("typeface", "+mn-lt")
}

func slideMasterDocument(layoutRelID string) *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:sldMaster")

	cSld := root.CreateElement("p:cSld")
	bgRef := cSld.CreateElement("p:bg").CreateElement("p:bgRef")
	bgRef.CreateAttr("idx", "1001")
	bgRef.CreateElement("a:schemeClr").CreateAttr("val", "bg1")
	writeGroupRoot(cSld)

	writeColorMap(root)

	id := root.CreateElement("p:sldLayoutIdLst").CreateElement("p:sldLayoutId")
	id.CreateAttr("id", itoa(slideLayoutID))
	id.CreateAttr("r:id", layoutRelID)

	txStyles := root.CreateElement("p:txStyles")
	writeLevelStyle(txStyles, "p:titleStyle", "4400")
	writeLevelStyle(txStyles, "p:bodyStyle", "2000")
	writeLevelStyle(txStyles, "p:otherStyle", "1800")
	return doc
}

func slideLayoutDocument() *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:sldLayout")
	root.CreateAttr("type", "blank")
	root.CreateAttr("preserve", "1")

	cSld := root.CreateElement("p:cSld")
	cSld.CreateAttr("name", "Blank")
	writeGroupRoot(cSld)

	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")
	return doc
}

func notesMasterDocument() *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:notesMaster")

	cSld := root.CreateElement("p:cSld")
	bgRef := cSld.CreateElement("p:bg").CreateElement("p:bgRef")
	bgRef.CreateAttr("idx", "1001")
	bgRef.CreateElement("a:schemeClr").CreateAttr("val", "bg1")
	writeGroupRoot(cSld)

	writeColorMap(root)
	writeLevelStyle(root, "p:notesStyle", "1200")
	return doc
}

func presPropsDocument() *etree.Document {
	doc := newXMLDocument()
	presentationRoot(doc, "p:presentationPr")
	return doc
}

func viewPropsDocument() *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:viewPr")
	root.CreateAttr("lastView", "sldView")
	normal := root.CreateElement("p:normalViewPr")
	normal.CreateElement("p:restoredLeft").CreateAttr("sz", "15620")
	normal.CreateElement("p:restoredTop").CreateAttr("sz", "94660")
	grid := root.CreateElement("p:gridSpacing")
	grid.CreateAttr("cx", "76200")
	grid.CreateAttr("cy", "76200")
	return doc
}

func tableStylesDocument() *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("a:tblStyleLst")
	root.CreateAttr("xmlns:a", nsDrawingML)
	// Medium Style 2 - Accent 1
	root.CreateAttr("def", "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}")
	return doc
}
