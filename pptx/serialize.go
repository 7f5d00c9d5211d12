// Package pptx assembles rendered slides into PresentationML package and reads
// such packages back. Output is byte for byte reproducible: part order is
// fixed, zip members share modification time and identifiers are derived from
// content.
package pptx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"pptgen/deck"
	"pptgen/layout"
	"pptgen/misc"
	"pptgen/shape"
	"pptgen/style"
)

// Options controls package assembly.
type Options struct {
	Width, Height shape.EMU
	Styles        *style.Registry
	Metadata      deck.Metadata
	// BCP 47 tag put on every text run, empty omits it
	Language string
	// encoded image stored as package thumbnail, optional
	Thumbnail []byte
	// rewrite archive without data descriptors
	FixZip bool
}

type slidePlan struct {
	num       int
	part      string
	notesPart string
	src       layout.RenderedSlide
}

// Serialize produces package bytes. Every rendered slide becomes one slide
// part in the given order, slides with non blank notes get notes part.
func Serialize(slides []layout.RenderedSlide, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &SerializationError{Part: partPresentation, Reason: fmt.Sprintf("invalid slide size %dx%d", opts.Width, opts.Height)}
	}
	reg := opts.Styles
	if reg == nil {
		reg = style.Default()
	}

	lang := ""
	if opts.Language != "" {
		tag, err := language.Parse(opts.Language)
		if err != nil {
			return nil, &SerializationError{Reason: fmt.Sprintf("bad language %q", opts.Language), Err: err}
		}
		lang = tag.String()
	}

	var errs error
	for _, s := range slides {
		errs = multierr.Append(errs, layout.Check(s.Shapes, reg, s.Number))
	}
	if errs != nil {
		return nil, errs
	}

	plan := make([]slidePlan, 0, len(slides))
	notesCount := 0
	for i, s := range slides {
		num := s.Number
		if num == 0 {
			num = i + 1
		}
		if num < 0 {
			return nil, &SerializationError{Reason: fmt.Sprintf("slide at position %d has invalid number %d", i+1, num)}
		}
		p := slidePlan{num: num, part: slidePart(num), src: s}
		if strings.TrimSpace(s.Notes) != "" {
			p.notesPart = notesSlidePart(num)
			notesCount++
		}
		plan = append(plan, p)
	}

	sw := &slideWriter{reg: reg, lang: lang}
	docs := make([][]byte, 0, len(plan))
	for _, p := range plan {
		doc, err := sw.document(p.src.Shapes)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := doc.WriteTo(&buf); err != nil {
			return nil, &SerializationError{Part: p.part, Reason: "unable to encode", Err: err}
		}
		docs = append(docs, buf.Bytes())
	}

	theme, err := themeDocument("pptgen", reg)
	if err != nil {
		return nil, err
	}

	pw := newPackageWriter()

	// package relationships and document properties
	rootRels := newRelationships("")
	rootRels.add(relOfficeDocument, partPresentation)
	rootRels.add(relCoreProps, partCoreProps)
	rootRels.add(relExtendedProps, partAppProps)

	thumbPart, thumbType := "", ""
	if len(opts.Thumbnail) > 0 {
		kind, err := filetype.Image(opts.Thumbnail)
		if err != nil || kind == filetype.Unknown {
			return nil, &SerializationError{Part: "docProps/thumbnail", Reason: "thumbnail is not a recognized image", Err: err}
		}
		thumbPart, thumbType = "docProps/thumbnail."+kind.Extension, kind.MIME.Value
		rootRels.add(relThumbnail, thumbPart)
	}

	stats := appStats{application: misc.GetAppName(), slides: len(plan), notes: notesCount}
	for _, p := range plan {
		for _, f := range p.src.Shapes.TextFrames() {
			for _, para := range f.Paragraphs() {
				if para.IsEmpty() {
					continue
				}
				stats.paragraphs++
				stats.words += len(strings.Fields(para.Text()))
			}
		}
	}

	if err := pw.addRels(rootRels); err != nil {
		return nil, err
	}
	if err := pw.addXML(partCoreProps, ctCoreProps, corePropsDocument(opts.Metadata, packageIdentifier(opts.Metadata, docs), lang)); err != nil {
		return nil, err
	}
	if err := pw.addXML(partAppProps, ctExtendedProps, appPropsDocument(stats)); err != nil {
		return nil, err
	}
	if thumbPart != "" {
		if err := pw.addData(thumbPart, thumbType, opts.Thumbnail); err != nil {
			return nil, err
		}
	}

	// presentation and its relationships
	presRels := newRelationships(partPresentation)
	masterRelID := presRels.add(relSlideMaster, partSlideMaster)
	entries := make([]slideEntry, 0, len(plan))
	for _, p := range plan {
		entries = append(entries, slideEntry{relID: presRels.add(relSlide, p.part)})
	}
	notesMasterRelID := ""
	if notesCount > 0 {
		notesMasterRelID = presRels.add(relNotesMaster, partNotesMaster)
	}
	presRels.add(relPresProps, partPresProps)
	presRels.add(relViewProps, partViewProps)
	presRels.add(relTheme, partTheme)
	presRels.add(relTableStyles, partTableStyles)

	if err := pw.addXML(partPresentation, ctPresentation, presentationDocument(masterRelID, notesMasterRelID, entries, opts.Width, opts.Height)); err != nil {
		return nil, err
	}
	if err := pw.addRels(presRels); err != nil {
		return nil, err
	}

	// master and layout
	masterRels := newRelationships(partSlideMaster)
	layoutRelID := masterRels.add(relSlideLayout, partSlideLayout)
	masterRels.add(relTheme, partTheme)
	if err := pw.addXML(partSlideMaster, ctSlideMaster, slideMasterDocument(layoutRelID)); err != nil {
		return nil, err
	}
	if err := pw.addRels(masterRels); err != nil {
		return nil, err
	}
	layoutRels := newRelationships(partSlideLayout)
	layoutRels.add(relSlideMaster, partSlideMaster)
	if err := pw.addXML(partSlideLayout, ctSlideLayout, slideLayoutDocument()); err != nil {
		return nil, err
	}
	if err := pw.addRels(layoutRels); err != nil {
		return nil, err
	}

	// slides in deck order
	for i, p := range plan {
		rels := newRelationships(p.part)
		rels.add(relSlideLayout, partSlideLayout)
		if p.notesPart != "" {
			rels.add(relNotesSlide, p.notesPart)
		}
		if err := pw.addData(p.part, ctSlide, docs[i]); err != nil {
			return nil, err
		}
		if err := pw.addRels(rels); err != nil {
			return nil, err
		}
	}

	// notes
	if notesCount > 0 {
		notesMasterRels := newRelationships(partNotesMaster)
		notesMasterRels.add(relTheme, partNotesTheme)
		if err := pw.addXML(partNotesMaster, ctNotesMaster, notesMasterDocument()); err != nil {
			return nil, err
		}
		if err := pw.addRels(notesMasterRels); err != nil {
			return nil, err
		}
		for _, p := range plan {
			if p.notesPart == "" {
				continue
			}
			rels := newRelationships(p.notesPart)
			rels.add(relNotesMaster, partNotesMaster)
			rels.add(relSlide, p.part)
			if err := pw.addXML(p.notesPart, ctNotesSlide, notesDocument(p.src.Notes, lang)); err != nil {
				return nil, err
			}
			if err := pw.addRels(rels); err != nil {
				return nil, err
			}
		}
	}

	// themes and presentation level properties
	if err := pw.addXML(partTheme, ctTheme, theme); err != nil {
		return nil, err
	}
	if notesCount > 0 {
		notesTheme, err := themeDocument("pptgen notes", reg)
		if err != nil {
			return nil, err
		}
		if err := pw.addXML(partNotesTheme, ctTheme, notesTheme); err != nil {
			return nil, err
		}
	}
	for _, pp := range []struct {
		name, contentType string
		build             func() *etree.Document
	}{
		{partPresProps, ctPresProps, presPropsDocument},
		{partViewProps, ctViewProps, viewPropsDocument},
		{partTableStyles, ctTableStyles, tableStylesDocument},
	} {
		if err := pw.addXML(pp.name, pp.contentType, pp.build()); err != nil {
			return nil, err
		}
	}

	data, err := pw.bytes(opts.FixZip)
	if err != nil {
		return nil, err
	}

	// package must read back into the same slide sequence
	sum, err := Inspect(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	if len(sum.Slides) != len(plan) {
		return nil, &SerializationError{Part: partPresentation, Reason: fmt.Sprintf("package lists %d slides, %d expected", len(sum.Slides), len(plan))}
	}
	return data, nil
}
