package pptx

import (
	"fmt"
	"path"
	"strings"
)

// XML namespaces.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVTypes = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsDublinCore     = "http://purl.org/dc/elements/1.1/"
	nsDublinCoreTerm = "http://purl.org/dc/terms/"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"
)

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctNotesSlide    = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctNotesMaster   = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Relationship types.
const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relThumbnail      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relNotesSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relNotesMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

// Fixed part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCoreProps    = "docProps/core.xml"
	partAppProps     = "docProps/app.xml"
	partPresentation = "ppt/presentation.xml"
	partSlideMaster  = "ppt/slideMasters/slideMaster1.xml"
	partSlideLayout  = "ppt/slideLayouts/slideLayout1.xml"
	partTheme        = "ppt/theme/theme1.xml"
	partNotesMaster  = "ppt/notesMasters/notesMaster1.xml"
	partNotesTheme   = "ppt/theme/theme2.xml"
	partPresProps    = "ppt/presProps.xml"
	partViewProps    = "ppt/viewProps.xml"
	partTableStyles  = "ppt/tableStyles.xml"
)

func slidePart(n int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", n)
}

func notesSlidePart(n int) string {
	return fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)
}

// relsPart returns name of relationships part for given source part.
func relsPart(source string) string {
	dir, file := path.Split(source)
	return dir + "_rels/" + file + ".rels"
}

// relTarget returns target of relationship from source to part, relative to
// source directory. Empty source is the package itself.
func relTarget(source, part string) string {
	if source == "" {
		return part
	}
	from := strings.Split(path.Dir(source), "/")
	to := strings.Split(part, "/")
	i := 0
	for i < len(from) && i < len(to)-1 && from[i] == to[i] {
		i++
	}
	return strings.Repeat("../", len(from)-i) + strings.Join(to[i:], "/")
}

// resolveTarget is reverse of relTarget.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(source), target))
}
