package generate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.pptx")

	if err := writeFile(path, []byte("first"), false); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "first" {
		t.Errorf("content = %q, want first", data)
	}

	err := writeFile(path, []byte("second"), false)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, os.ErrExist) {
		t.Fatalf("writeFile() error = %v, want IOError wrapping ErrExist", err)
	}
	if ioErr.Path != path {
		t.Errorf("IOError.Path = %q, want %q", ioErr.Path, path)
	}

	if err := writeFile(path, []byte("second"), true); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temporary files left behind", len(entries))
	}
}

func TestWriteFile_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	// destination is a non empty directory, rename has to fail
	path := filepath.Join(dir, "out.pptx")
	if err := os.MkdirAll(filepath.Join(path, "inner"), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	err := writeFile(path, []byte("data"), true)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("writeFile() error = %v, want IOError", err)
	}
	if ioErr.Op != "rename" {
		t.Errorf("IOError.Op = %q, want rename", ioErr.Op)
	}
	if errors.Unwrap(ioErr) == nil {
		t.Error("IOError must unwrap to its cause")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.pptx" {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "write", Path: "/x/y.pptx", Err: os.ErrPermission}
	if got, want := err.Error(), "unable to write /x/y.pptx: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is must see the cause")
	}
}
