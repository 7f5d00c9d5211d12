package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"pptgen/archive"
)

// Summary is a structural view of a package read back.
type Summary struct {
	Title      string
	Creator    string
	Identifier string
	Slides     []SlideSummary
	Parts      []string // natural order
}

// SlideSummary describes single slide in presentation order.
type SlideSummary struct {
	Part      string
	NotesPart string
	Notes     string
	Frames    []FrameSummary
}

// FrameSummary lists paragraphs of one text frame.
type FrameSummary struct {
	Name       string
	Paragraphs []ParagraphSummary
}

type ParagraphSummary struct {
	Level int
	Text  string
}

const slidesDir = "ppt/slides"

type packageReader struct {
	ix        *archive.Index
	overrides map[string]string
	defaults  map[string]string
}

// Inspect reads package and follows relationship graph from the package root
// to every slide and notes part. Any dangling reference is reported as
// *SerializationError.
func Inspect(r io.ReaderAt, size int64) (*Summary, error) {
	ix, err := archive.Open(r, size)
	if err != nil {
		return nil, &SerializationError{Reason: "not a zip package", Err: err}
	}
	pr := &packageReader{ix: ix, overrides: make(map[string]string), defaults: make(map[string]string)}
	if err := pr.readContentTypes(); err != nil {
		return nil, err
	}

	sum := &Summary{Parts: ix.Names()}

	rootRels, err := pr.readRels("")
	if err != nil {
		return nil, err
	}
	presPart, ok := rootRels.first(relOfficeDocument)
	if !ok {
		return nil, &SerializationError{Part: partRootRels, Reason: "no office document relationship"}
	}
	if core, ok := rootRels.first(relCoreProps); ok {
		if err := pr.readCoreProps(core, sum); err != nil {
			return nil, err
		}
	}

	pres, err := pr.readPart(presPart, ctPresentation)
	if err != nil {
		return nil, err
	}
	presRels, err := pr.readRels(presPart)
	if err != nil {
		return nil, err
	}

	for i, id := range pres.FindElements("./p:presentation/p:sldIdLst/p:sldId") {
		relID := id.SelectAttrValue("r:id", "")
		rel, ok := presRels.byID[relID]
		if !ok || rel.Type != relSlide {
			return nil, &SerializationError{Part: presPart, Reason: fmt.Sprintf("slide %d references unknown relationship %q", i+1, relID)}
		}
		ss, err := pr.readSlide(rel.Target)
		if err != nil {
			return nil, err
		}
		sum.Slides = append(sum.Slides, *ss)
	}
	if err := pr.checkUnreferenced(sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// checkUnreferenced makes sure every slide part in the package is reachable
// from the slide list.
func (pr *packageReader) checkUnreferenced(sum *Summary) error {
	seen := make(map[string]bool, len(sum.Slides))
	for _, ss := range sum.Slides {
		seen[ss.Part] = true
	}
	return pr.ix.Walk(slidesDir+"/", func(file *zip.File) error {
		if path.Dir(file.Name) != slidesDir || path.Ext(file.Name) != ".xml" {
			return nil
		}
		if !seen[file.Name] {
			return &SerializationError{Part: file.Name, Reason: "slide part is not referenced by presentation"}
		}
		return nil
	})
}

func (pr *packageReader) readContentTypes() error {
	doc, err := pr.readXML(partContentTypes)
	if err != nil {
		return err
	}
	for _, e := range doc.FindElements("./Types/Default") {
		pr.defaults[strings.ToLower(e.SelectAttrValue("Extension", ""))] = e.SelectAttrValue("ContentType", "")
	}
	for _, e := range doc.FindElements("./Types/Override") {
		pr.overrides[strings.TrimPrefix(e.SelectAttrValue("PartName", ""), "/")] = e.SelectAttrValue("ContentType", "")
	}
	return nil
}

func (pr *packageReader) contentType(part string) string {
	if ct, ok := pr.overrides[part]; ok {
		return ct
	}
	return pr.defaults[strings.ToLower(strings.TrimPrefix(path.Ext(part), "."))]
}

func (pr *packageReader) readXML(part string) (*etree.Document, error) {
	if !pr.ix.Has(part) {
		return nil, &SerializationError{Part: part, Reason: "missing part"}
	}
	data, err := pr.ix.ReadFile(part)
	if err != nil {
		return nil, &SerializationError{Part: part, Reason: "unable to read", Err: err}
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &SerializationError{Part: part, Reason: "malformed xml", Err: err}
	}
	return doc, nil
}

// readPart reads XML part making sure manifest declares expected type for it.
func (pr *packageReader) readPart(part, contentType string) (*etree.Document, error) {
	doc, err := pr.readXML(part)
	if err != nil {
		return nil, err
	}
	if got := pr.contentType(part); got != contentType {
		return nil, &SerializationError{Part: part, Reason: fmt.Sprintf("content type %q, %q expected", got, contentType)}
	}
	return doc, nil
}

type relationshipSet struct {
	byID  map[string]relationship
	order []relationship
}

func (rs *relationshipSet) first(typ string) (string, bool) {
	for _, r := range rs.order {
		if r.Type == typ {
			return r.Target, true
		}
	}
	return "", false
}

// readRels returns relationships of the source part with targets resolved
// to part names. Missing relationship part is the same as an empty one.
func (pr *packageReader) readRels(source string) (*relationshipSet, error) {
	rs := &relationshipSet{byID: make(map[string]relationship)}

	name := partRootRels
	if source != "" {
		name = relsPart(source)
	}
	if !pr.ix.Has(name) {
		return rs, nil
	}
	doc, err := pr.readXML(name)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.FindElements("./Relationships/Relationship") {
		if e.SelectAttrValue("TargetMode", "") == "External" {
			continue
		}
		r := relationship{
			ID:     e.SelectAttrValue("Id", ""),
			Type:   e.SelectAttrValue("Type", ""),
			Target: resolveTarget(source, e.SelectAttrValue("Target", "")),
		}
		if _, ok := rs.byID[r.ID]; ok {
			return nil, &SerializationError{Part: name, Reason: fmt.Sprintf("duplicate relationship id %s", r.ID)}
		}
		rs.byID[r.ID] = r
		rs.order = append(rs.order, r)
	}
	return rs, nil
}

func (pr *packageReader) readCoreProps(part string, sum *Summary) error {
	doc, err := pr.readPart(part, ctCoreProps)
	if err != nil {
		return err
	}
	root := doc.Root()
	if e := root.FindElement("./dc:title"); e != nil {
		sum.Title = e.Text()
	}
	if e := root.FindElement("./dc:creator"); e != nil {
		sum.Creator = e.Text()
	}
	if e := root.FindElement("./dc:identifier"); e != nil {
		sum.Identifier = e.Text()
	}
	return nil
}

func (pr *packageReader) readSlide(part string) (*SlideSummary, error) {
	doc, err := pr.readPart(part, ctSlide)
	if err != nil {
		return nil, err
	}
	ss := &SlideSummary{Part: part}
	for _, sp := range doc.FindElements("./p:sld/p:cSld/p:spTree/p:sp") {
		txBody := sp.FindElement("./p:txBody")
		if txBody == nil {
			continue
		}
		frame := FrameSummary{}
		if cNvPr := sp.FindElement("./p:nvSpPr/p:cNvPr"); cNvPr != nil {
			frame.Name = cNvPr.SelectAttrValue("name", "")
		}
		frame.Paragraphs = readParagraphs(txBody)
		ss.Frames = append(ss.Frames, frame)
	}

	rels, err := pr.readRels(part)
	if err != nil {
		return nil, err
	}
	if _, ok := rels.first(relSlideLayout); !ok {
		return nil, &SerializationError{Part: part, Reason: "slide has no layout"}
	}
	if notes, ok := rels.first(relNotesSlide); ok {
		ndoc, err := pr.readPart(notes, ctNotesSlide)
		if err != nil {
			return nil, err
		}
		ss.NotesPart = notes
		ss.Notes = readNotesText(ndoc)
	}
	return ss, nil
}

func readParagraphs(txBody *etree.Element) []ParagraphSummary {
	var out []ParagraphSummary
	for _, p := range txBody.SelectElements("a:p") {
		ps := ParagraphSummary{}
		if pPr := p.SelectElement("a:pPr"); pPr != nil {
			ps.Level, _ = strconv.Atoi(pPr.SelectAttrValue("lvl", "0"))
		}
		var sb strings.Builder
		for _, r := range p.SelectElements("a:r") {
			if t := r.SelectElement("a:t"); t != nil {
				sb.WriteString(t.Text())
			}
		}
		ps.Text = sb.String()
		out = append(out, ps)
	}
	return out
}

func readNotesText(doc *etree.Document) string {
	for _, sp := range doc.FindElements("./p:notes/p:cSld/p:spTree/p:sp") {
		ph := sp.FindElement("./p:nvSpPr/p:nvPr/p:ph")
		if ph == nil || ph.SelectAttrValue("type", "") != "body" {
			continue
		}
		txBody := sp.FindElement("./p:txBody")
		if txBody == nil {
			return ""
		}
		var lines []string
		for _, p := range readParagraphs(txBody) {
			lines = append(lines, p.Text)
		}
		return strings.Join(lines, "\n")
	}
	return ""
}
