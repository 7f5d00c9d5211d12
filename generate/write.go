package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// IOError reports failure to put package onto the file system.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// writeFile atomically replaces file at path with data. Data goes into a
// temporary file in the same directory which is renamed when complete, on any
// failure the temporary file is removed and destination is left untouched.
func writeFile(path string, data []byte, overwrite bool) (err error) {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return &IOError{Op: "overwrite", Path: path, Err: os.ErrExist}
		}
	} else if !os.IsNotExist(err) {
		return &IOError{Op: "access", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create temporary file for", Path: path, Err: err}
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			if er := os.Remove(tmp); er != nil && !os.IsNotExist(er) {
				err = multierr.Append(err, &IOError{Op: "remove", Path: tmp, Err: er})
			}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return multierr.Append(&IOError{Op: "write", Path: tmp, Err: err}, f.Close())
	}
	if err := f.Sync(); err != nil {
		return multierr.Append(&IOError{Op: "sync", Path: tmp, Err: err}, f.Close())
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: tmp, Err: err}
	}
	// CreateTemp makes files readable by owner only
	if err := os.Chmod(tmp, 0644); err != nil {
		return &IOError{Op: "chmod", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: tmp, Err: err}
	}
	return nil
}
