// Package archive builds read-only indexed view on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. If an error is returned, processing stops.
type WalkFunc func(file *zip.File) error

// Index maps member names of an archive to its files.
type Index struct {
	files map[string]*zip.File
	names []string
}

// Open indexes archive. Entries with path traversal components ("..") or
// absolute paths as well as duplicate names make archive invalid.
func Open(r io.ReaderAt, size int64) (*Index, error) {

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	ix := &Index{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if _, ok := ix.files[name]; ok {
			return nil, fmt.Errorf("zip entry %q: duplicate name", name)
		}
		ix.files[name] = f
		ix.names = append(ix.names, name)
	}
	// so slide10.xml comes after slide9.xml
	sort.Sort(natural.StringSlice(ix.names))
	return ix, nil
}

// Names returns all member names in natural order.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Has reports whether archive has member with given name.
func (ix *Index) Has(name string) bool {
	_, ok := ix.files[name]
	return ok
}

// ReadFile returns content of the named member.
func (ix *Index) ReadFile(name string) ([]byte, error) {
	f, ok := ix.files[name]
	if !ok {
		return nil, fmt.Errorf("zip entry %q: not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", name, err)
	}
	return data, nil
}

// Walk visits files whose names start with prefix in natural order.
func (ix *Index) Walk(prefix string, walkFn WalkFunc) error {
	for _, name := range ix.names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(ix.files[name]); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
