package pptx

import (
	"github.com/beevik/etree"

	"pptgen/shape"
)

type slideEntry struct {
	relID string
}

func presentationDocument(masterRelID, notesMasterRelID string, slides []slideEntry, width, height shape.EMU) *etree.Document {
	doc := newXMLDocument()
	root := presentationRoot(doc, "p:presentation")
	root.CreateAttr("saveSubsetFonts", "1")

	master := root.CreateElement("p:sldMasterIdLst").CreateElement("p:sldMasterId")
	master.CreateAttr("id", itoa(slideMasterID))
	master.CreateAttr("r:id", masterRelID)

	if notesMasterRelID != "" {
		root.CreateElement("p:notesMasterIdLst").CreateElement("p:notesMasterId").CreateAttr("r:id", notesMasterRelID)
	}

	if len(slides) > 0 {
		list := root.CreateElement("p:sldIdLst")
		for i, s := range slides {
			e := list.CreateElement("p:sldId")
			e.CreateAttr("id", itoa(firstSlideID+i))
			e.CreateAttr("r:id", s.relID)
		}
	}

	sz := root.CreateElement("p:sldSz")
	sz.CreateAttr("cx", itoa(width))
	sz.CreateAttr("cy", itoa(height))

	notesSz := root.CreateElement("p:notesSz")
	notesSz.CreateAttr("cx", itoa(notesPageWidth))
	notesSz.CreateAttr("cy", itoa(notesPageHeight))

	writeLevelStyle(root, "p:defaultTextStyle", "1800")
	return doc
}
