package config

import (
	"errors"
	"fmt"

	"github.com/dshills/quill/internal/config/loader"
)

var (
	// ErrSettingNotFound is returned by the getters for a path no layer sets.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch matches every *TypeError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrFileNotFound is returned by Load when the -config file is missing.
	// A missing user config file is not an error.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidPath is returned by Set for an empty or malformed path.
	ErrInvalidPath = errors.New("invalid setting path")
)

// ParseError is returned by Load for a malformed config file.
type ParseError = loader.ParseError

// TypeError reports a setting whose value has the wrong type for the
// getter used.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: want %s, have %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }
