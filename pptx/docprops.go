package pptx

import (
	"github.com/beevik/etree"
	"github.com/google/uuid"

	"pptgen/deck"
)

// identifierSpace is name space for package identifiers, identical content
// always yields identical identifier.
var identifierSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/pptgen/pptgen"))

func packageIdentifier(meta deck.Metadata, slides [][]byte) uuid.UUID {
	data := []byte(meta.Title + "\x00" + meta.Author + "\x00" + meta.Subject)
	for _, s := range slides {
		data = append(data, 0)
		data = append(data, s...)
	}
	return uuid.NewSHA1(identifierSpace, data)
}

func corePropsDocument(meta deck.Metadata, id uuid.UUID, lang string) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", nsCoreProps)
	root.CreateAttr("xmlns:dc", nsDublinCore)
	root.CreateAttr("xmlns:dcterms", nsDublinCoreTerm)
	root.CreateAttr("xmlns:xsi", nsXSI)

	if meta.Title != "" {
		root.CreateElement("dc:title").SetText(meta.Title)
	}
	if meta.Subject != "" {
		root.CreateElement("dc:subject").SetText(meta.Subject)
	}
	if meta.Author != "" {
		root.CreateElement("dc:creator").SetText(meta.Author)
		root.CreateElement("cp:lastModifiedBy").SetText(meta.Author)
	}
	root.CreateElement("dc:identifier").SetText(id.URN())
	if lang != "" {
		root.CreateElement("dc:language").SetText(lang)
	}
	root.CreateElement("cp:revision").SetText("1")
	return doc
}

type appStats struct {
	application string
	slides      int
	notes       int
	paragraphs  int
	words       int
}

func appPropsDocument(st appStats) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Properties")
	root.CreateAttr("xmlns", nsExtendedProps)
	root.CreateAttr("xmlns:vt", nsDocPropsVTypes)

	root.CreateElement("TotalTime").SetText("0")
	root.CreateElement("Words").SetText(itoa(st.words))
	root.CreateElement("Application").SetText(st.application)
	root.CreateElement("PresentationFormat").SetText("Custom")
	root.CreateElement("Paragraphs").SetText(itoa(st.paragraphs))
	root.CreateElement("Slides").SetText(itoa(st.slides))
	root.CreateElement("Notes").SetText(itoa(st.notes))
	root.CreateElement("HiddenSlides").SetText("0")
	root.CreateElement("MMClips").SetText("0")
	root.CreateElement("ScaleCrop").SetText("false")
	root.CreateElement("LinksUpToDate").SetText("false")
	root.CreateElement("SharedDoc").SetText("false")
	root.CreateElement("HyperlinksChanged").SetText("false")
	return doc
}
