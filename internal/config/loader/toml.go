package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads TOML config files.
type TOMLLoader struct {
	fileSource
}

// NewTOMLLoader returns a TOML loader for path on the OS file system.
func NewTOMLLoader(path string) *TOMLLoader {
	return NewTOMLLoaderWithFS(DefaultFS(), path)
}

// NewTOMLLoaderWithFS returns a TOML loader reading from fsys.
func NewTOMLLoaderWithFS(fsys FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{fileSource{fs: fsys, path: path, parse: parseTOML}}
}

func parseTOML(name string, data []byte) (map[string]any, error) {
	out := map[string]any{}
	err := toml.Unmarshal(data, &out)
	if err == nil {
		return out, nil
	}

	perr := &ParseError{Path: name, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
		perr.Message = derr.Error()
	}
	return nil, perr
}
