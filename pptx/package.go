package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
)

// every member gets the same modification time so identical input produces
// identical bytes
var zipModified = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name        string
	contentType string
	data        []byte
}

type extDefault struct {
	ext         string
	contentType string
}

// packageWriter collects parts in the order they are added.
type packageWriter struct {
	parts    []part
	names    map[string]bool
	defaults []extDefault
}

func newPackageWriter() *packageWriter {
	return &packageWriter{
		names: make(map[string]bool),
		defaults: []extDefault{
			{ext: "rels", contentType: ctRelationships},
			{ext: "xml", contentType: ctXML},
		},
	}
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func (pw *packageWriter) addXML(name, contentType string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return &SerializationError{Part: name, Reason: "unable to encode", Err: err}
	}
	return pw.addData(name, contentType, buf.Bytes())
}

func (pw *packageWriter) addData(name, contentType string, data []byte) error {
	if pw.names[name] || strings.EqualFold(name, partContentTypes) {
		return &SerializationError{Part: name, Reason: "duplicate part name"}
	}
	pw.names[name] = true
	pw.parts = append(pw.parts, part{name: name, contentType: contentType, data: data})

	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext != "xml" && ext != "rels" && pw.defaultFor(ext) == "" {
		pw.defaults = append(pw.defaults, extDefault{ext: ext, contentType: contentType})
	}
	return nil
}

func (pw *packageWriter) addRels(r *relationships) error {
	doc, err := r.document()
	if err != nil {
		return err
	}
	return pw.addXML(r.part(), ctRelationships, doc)
}

func (pw *packageWriter) defaultFor(ext string) string {
	for _, d := range pw.defaults {
		if d.ext == ext {
			return d.contentType
		}
	}
	return ""
}

// contentTypes builds manifest: Default per extension, Override for every
// part whose type differs from its extension default.
func (pw *packageWriter) contentTypes() *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	for _, d := range pw.defaults {
		e := types.CreateElement("Default")
		e.CreateAttr("Extension", d.ext)
		e.CreateAttr("ContentType", d.contentType)
	}
	for _, p := range pw.parts {
		if pw.defaultFor(strings.TrimPrefix(path.Ext(p.name), ".")) == p.contentType {
			continue
		}
		e := types.CreateElement("Override")
		e.CreateAttr("PartName", "/"+p.name)
		e.CreateAttr("ContentType", p.contentType)
	}
	return doc
}

// bytes produces zip container, manifest first.
func (pw *packageWriter) bytes(fixZip bool) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeXMLToZip(zw, partContentTypes, pw.contentTypes()); err != nil {
		return nil, &SerializationError{Part: partContentTypes, Reason: "unable to write", Err: err}
	}
	for _, p := range pw.parts {
		if err := writeDataToZip(zw, p.name, p.data); err != nil {
			return nil, &SerializationError{Part: p.name, Reason: "unable to write", Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &SerializationError{Reason: "unable to close archive", Err: err}
	}

	if !fixZip {
		return buf.Bytes(), nil
	}
	return copyZipWithoutDataDescriptors(buf.Bytes())
}

func copyZipWithoutDataDescriptors(data []byte) ([]byte, error) {

	r, err := fixzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &SerializationError{Reason: "unable to read archive", Err: err}
	}

	var buf bytes.Buffer
	w := fixzip.NewWriter(&buf)

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return nil, &SerializationError{Part: file.Name, Reason: "unable to copy", Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &SerializationError{Reason: "unable to close archive", Err: err}
	}
	return buf.Bytes(), nil
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: zipModified,
	})
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("unable to write %s: %w", name, err)
	}
	return nil
}
