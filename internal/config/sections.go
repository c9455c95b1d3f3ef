package config

import (
	"errors"
	"maps"
	"time"
)

// The section accessors return snapshots. Changing one does not change
// the configuration; use Config.Set for that.

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum level logged ("debug", "info", "warn", "error").
	Level string
}

// MarkdownConfig holds the markers inserted by the markdown actions.
type MarkdownConfig struct {
	Bold        string
	Italic      string
	Code        string
	FencePrefix string
	FenceSuffix string
}

// SectionsConfig holds section selector settings.
type SectionsConfig struct {
	// ResponseSeparator delimits blocks for editing.selectResponse.
	ResponseSeparator string
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// System uses the OS clipboard instead of an in-memory one.
	System bool
}

// LuaConfig holds script host settings.
type LuaConfig struct {
	// CallLimit caps host API calls per script run. Zero disables the cap.
	CallLimit int

	// Timeout bounds the wall-clock time of a script run.
	Timeout time.Duration

	// Capabilities are granted to every script (e.g. "clipboard").
	Capabilities []string
}

// Logging returns the logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: settingOr(c, "logging.level", c.GetString, "info"),
	}
}

// Markdown returns the markdown marker settings.
func (c *Config) Markdown() MarkdownConfig {
	marker := func(name, fallback string) string {
		return settingOr(c, "markdown."+name, c.GetString, fallback)
	}
	return MarkdownConfig{
		Bold:        marker("bold", "**"),
		Italic:      marker("italic", "*"),
		Code:        marker("code", "`"),
		FencePrefix: marker("fencePrefix", "```\n"),
		FenceSuffix: marker("fenceSuffix", "\n```"),
	}
}

// Sections returns the section selector settings.
func (c *Config) Sections() SectionsConfig {
	return SectionsConfig{
		ResponseSeparator: settingOr(c, "sections.responseSeparator", c.GetString, "---"),
	}
}

// Clipboard returns the clipboard settings.
func (c *Config) Clipboard() ClipboardConfig {
	return ClipboardConfig{
		System: settingOr(c, "clipboard.system", c.GetBool, false),
	}
}

// Lua returns the script host settings. Capabilities is never nil and
// never aliases configuration state.
func (c *Config) Lua() LuaConfig {
	caps := settingOr(c, "lua.capabilities", c.GetStringSlice, nil)
	return LuaConfig{
		CallLimit:    settingOr(c, "lua.callLimit", c.GetInt, 100_000),
		Timeout:      settingOr(c, "lua.timeout", c.GetDuration, 5*time.Second),
		Capabilities: append([]string{}, caps...),
	}
}

// settingOr reads path with get. A missing setting yields fallback
// silently; a malformed one yields fallback and is kept in ConfigErrors.
func settingOr[T any](c *Config, path string, get func(string) (T, error), fallback T) T {
	v, err := get(path)
	switch {
	case err == nil:
		return v
	case !errors.Is(err, ErrSettingNotFound):
		c.recordConfigError(path, err)
	}
	return fallback
}

// recordConfigError keeps the first error seen for path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, seen := c.configErrors[path]; !seen {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns the malformed settings met by the section
// accessors, keyed by path.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.configErrors)
}
