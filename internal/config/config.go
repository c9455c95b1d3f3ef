package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dshills/quill/internal/config/layer"
	"github.com/dshills/quill/internal/config/loader"
)

// Config provides unified access to the quill configuration system.
type Config struct {
	mu     sync.RWMutex
	layers *layer.Manager
	fs     loader.FileSystem

	userConfigDir string
	configFile    string // explicit -config file, must exist
	envPrefix     string

	// configErrors holds malformed settings met by the section accessors.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the user configuration directory.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithConfigFile names an explicit configuration file. Unlike the user
// file, it must exist.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix (default "QUILL_").
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithFS sets the file system used to read configuration files.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a new Config instance with the given options.
// Until Load is called only the built-in defaults are visible.
func New(opts ...Option) *Config {
	c := &Config{
		layers:    layer.NewManager(),
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}

	c.layers.AddLayer(layer.NewLayerWithData(layer.SourceBuiltin, defaultConfig()))
	return c
}

// Load loads configuration from all sources.
func (c *Config) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadUserSettings(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.loadConfigFile(); err != nil {
		return err
	}
	return c.loadEnvironment()
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, _, ok := c.layers.Get(path)
	if ok {
		if _, isMap := val.(map[string]any); isMap {
			return layer.GetByPath(c.layers.Merge(), path)
		}
	}
	return val, ok
}

// Source returns the name of the layer that supplies path.
func (c *Config) Source(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, l, ok := c.layers.Get(path)
	if !ok {
		return "", false
	}
	return l.Name, true
}

// errWrongType is returned by the converters below when a value has a
// type they cannot read.
var errWrongType = errors.New("wrong type")

// typed looks up path and converts it with conv. Conversion failures
// become a TypeError naming expected.
func typed[T any](c *Config, path, expected string, conv func(any) (T, error)) (T, error) {
	var zero T
	v, ok := c.Get(path)
	if !ok {
		return zero, ErrSettingNotFound
	}
	out, err := conv(v)
	if err != nil {
		te := &TypeError{Path: path, Expected: expected, Actual: typeName(v)}
		if errors.Is(err, errWrongType) {
			return zero, te
		}
		return zero, fmt.Errorf("%w: %v", te, err)
	}
	return out, nil
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	return typed(c, path, "string", func(v any) (string, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", errWrongType
	})
}

// GetInt returns an integer value at the given path. Whole floats are
// accepted.
func (c *Config) GetInt(path string) (int, error) {
	return typed(c, path, "int", func(v any) (int, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case uint64:
			return int(n), nil
		case float64:
			if n == float64(int(n)) {
				return int(n), nil
			}
		}
		return 0, errWrongType
	})
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	return typed(c, path, "bool", func(v any) (bool, error) {
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return false, errWrongType
	})
}

// GetFloat returns a float64 value at the given path.
func (c *Config) GetFloat(path string) (float64, error) {
	return typed(c, path, "float64", func(v any) (float64, error) {
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return 0, errWrongType
	})
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration; bare integers are read as seconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	return typed(c, path, "duration", func(v any) (time.Duration, error) {
		switch d := v.(type) {
		case time.Duration:
			return d, nil
		case string:
			return time.ParseDuration(d)
		case int:
			return time.Duration(d) * time.Second, nil
		case int64:
			return time.Duration(d) * time.Second, nil
		}
		return 0, errWrongType
	})
}

// GetStringSlice returns a string slice at the given path. A single
// string is split on commas, the form environment values take.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	return typed(c, path, "[]string", func(v any) ([]string, error) {
		switch list := v.(type) {
		case []string:
			return list, nil
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, errWrongType
				}
				out = append(out, s)
			}
			return out, nil
		case string:
			var out []string
			for _, item := range strings.Split(list, ",") {
				if item = strings.TrimSpace(item); item != "" {
					out = append(out, item)
				}
			}
			return out, nil
		}
		return nil, errWrongType
	})
}

// Set overrides a value in the arguments layer, the highest priority.
func (c *Config) Set(path string, value any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") || strings.Contains(path, "..") {
		return ErrInvalidPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.layers.Set(layer.SourceArgs, path, value)
	delete(c.configErrors, path)
	return nil
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.layers.Merge()
}

// Setting is one leaf of the merged configuration.
type Setting struct {
	Path   string
	Value  any
	Source string
}

// Settings lists every leaf setting in path order along with the layer
// that supplies it.
func (c *Config) Settings() []Setting {
	c.mu.RLock()
	defer c.mu.RUnlock()

	flat := layer.FlattenMap(c.layers.Merge())
	settings := make([]Setting, 0, len(flat))
	for _, path := range layer.SortedPaths(flat) {
		s := Setting{Path: path, Value: flat[path]}
		if _, l, ok := c.layers.Get(path); ok {
			s.Source = l.Name
		}
		settings = append(settings, s)
	}
	return settings
}

// UserConfigDir returns the directory searched for the user config file.
func (c *Config) UserConfigDir() string {
	return c.userConfigDir
}

// loadUserSettings loads the first config file found in the user directory.
func (c *Config) loadUserSettings() error {
	if c.userConfigDir == "" {
		return nil
	}
	for _, ext := range loader.Extensions {
		path := filepath.Join(c.userConfigDir, "config"+ext)
		loaded, err := c.loadFile(path, layer.SourceUserGlobal)
		if err != nil || loaded {
			return err
		}
	}
	return nil
}

// loadConfigFile loads the file named with WithConfigFile.
func (c *Config) loadConfigFile() error {
	if c.configFile == "" {
		return nil
	}
	loaded, err := c.loadFile(c.configFile, layer.SourceFile)
	if err != nil {
		return err
	}
	if !loaded {
		return fmt.Errorf("%w: %s", ErrFileNotFound, c.configFile)
	}
	return nil
}

func (c *Config) loadFile(path string, source layer.Source) (bool, error) {
	fl, err := loader.ForPath(c.fs, path)
	if err != nil {
		return false, err
	}
	data, err := fl.Load()
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	l := layer.NewLayerWithData(source, data)
	l.Path = path
	c.layers.AddLayer(l)
	return true, nil
}

// loadEnvironment loads configuration from environment variables.
func (c *Config) loadEnvironment() error {
	data, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return err
	}
	if len(data) > 0 {
		c.layers.AddLayer(layer.NewLayerWithData(layer.SourceEnv, data))
	}
	return nil
}

// defaultUserConfigDir returns $XDG_CONFIG_HOME/quill or the platform
// equivalent.
func defaultUserConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quill")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill")
}

// defaultConfig returns the built-in defaults layer.
func defaultConfig() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
		},
		"markdown": map[string]any{
			"bold":        "**",
			"italic":      "*",
			"code":        "`",
			"fencePrefix": "```\n",
			"fenceSuffix": "\n```",
		},
		"sections": map[string]any{
			"responseSeparator": "---",
		},
		"clipboard": map[string]any{
			"system": false,
		},
		"lua": map[string]any{
			"callLimit":    int64(100_000),
			"timeout":      "5s",
			"capabilities": []any{},
		},
	}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	case time.Duration:
		return "duration"
	default:
		return fmt.Sprintf("%T", v)
	}
}
