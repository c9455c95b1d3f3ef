// Package loader reads quill settings into nested maps from TOML or YAML
// files and from QUILL_* environment variables.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader produces a settings map. A source that does not exist yields
// nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileLoader is a Loader bound to a file format.
type FileLoader interface {
	Loader
	LoadFrom(path string) (map[string]any, error)
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is the subset of file access the loaders need.
// fstest.MapFS satisfies it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }
func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns OSFS.
func DefaultFS() FileSystem { return OSFS{} }

// Extensions are the config file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml"}

// ForPath picks a loader from the extension of path.
func ForPath(fsys FileSystem, path string) (FileLoader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return NewTOMLLoaderWithFS(fsys, path), nil
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fsys, path), nil
	}
	return nil, fmt.Errorf("unsupported config format %q for %s", ext, path)
}

// fileSource is shared by the file loaders: it holds the target and
// turns a missing file into an empty result.
type fileSource struct {
	fs    FileSystem
	path  string
	parse func(name string, data []byte) (map[string]any, error)
}

func (s fileSource) Load() (map[string]any, error) {
	return s.LoadFrom(s.path)
}

func (s fileSource) LoadFrom(path string) (map[string]any, error) {
	data, err := s.fs.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return s.parse(path, data)
}

func (s fileSource) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return s.parse("<reader>", data)
}

// ParseError reports a malformed config file. Line and Column are
// 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse error in %s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
