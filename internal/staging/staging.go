// Package staging manages the scratch directory where uploads are written
// before being forwarded to a provider. Staged files live for exactly one
// request: Stage creates them, Release removes them.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const scratchDirMode = 0o700

// File describes a staged upload on local disk.
type File struct {
	// Path is the absolute location of the scratch file.
	Path string
	// Name is the file name the client supplied.
	Name string
}

// Store writes upload bodies into a scratch directory.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

// NewStore returns a Store rooted at dir. The directory is created lazily on
// the first Stage call, so constructing a Store never touches the filesystem.
func NewStore(dir string, log *zap.SugaredLogger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the scratch directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Stage writes the content stream to a uniquely named file in the scratch
// directory, preserving the original extension. If the write fails midway the
// partial file is removed before the error is returned, so a failed Stage
// never leaves anything behind.
func (s *Store) Stage(name string, content io.Reader) (File, error) {
	if err := os.MkdirAll(s.dir, scratchDirMode); err != nil {
		return File{}, fmt.Errorf("create scratch dir %q: %w", s.dir, err)
	}

	f, err := os.CreateTemp(s.dir, "upload-*"+filepath.Ext(name))
	if err != nil {
		return File{}, fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		s.remove(f.Name())
		return File{}, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.remove(f.Name())
		return File{}, fmt.Errorf("close scratch file: %w", err)
	}

	abs, err := filepath.Abs(f.Name())
	if err != nil {
		s.remove(f.Name())
		return File{}, fmt.Errorf("resolve scratch path: %w", err)
	}

	s.log.Debugw("file staged", "path", abs, "filename", name)
	return File{Path: abs, Name: name}, nil
}

// Release deletes the staged file. Deletion failures are logged and swallowed;
// cleanup must never mask the outcome of the upload itself.
func (s *Store) Release(f File) {
	if f.Path == "" {
		return
	}
	s.remove(f.Path)
}

func (s *Store) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warnw("failed to delete scratch file", "path", path, "error", err)
		return
	}
	s.log.Debugw("scratch file deleted", "path", path)
}
