package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newTestConfig isolates a Config from the real user directory and
// environment.
func newTestConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	base := []Option{
		WithUserConfigDir(t.TempDir()),
		WithEnvPrefix("QUILLTEST_"),
	}
	return New(append(base, opts...)...)
}

func TestNew_Defaults(t *testing.T) {
	c := newTestConfig(t)

	level, err := c.GetString("logging.level")
	if err != nil || level != "info" {
		t.Errorf("logging.level = %q, %v; want info", level, err)
	}
	if src, ok := c.Source("markdown.bold"); !ok || src != "defaults" {
		t.Errorf("Source(markdown.bold) = %q, %v", src, ok)
	}
	if _, err := c.GetString("missing.setting"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("GetString(missing) error = %v, want ErrSettingNotFound", err)
	}
}

func TestConfig_LoadUserFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[logging]
level = "debug"

[markdown]
bold = "__"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestConfig(t, WithUserConfigDir(dir))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := c.Logging().Level; got != "debug" {
		t.Errorf("Logging().Level = %q, want debug", got)
	}
	md := c.Markdown()
	if md.Bold != "__" || md.Italic != "*" {
		t.Errorf("Markdown() = %+v", md)
	}
	if src, _ := c.Source("markdown.bold"); src != "user" {
		t.Errorf("Source(markdown.bold) = %q, want user", src)
	}
}

func TestConfig_LoadPrecedence(t *testing.T) {
	fsys := fstest.MapFS{
		"home/quill/config.yaml": {Data: []byte("sections:\n  responseSeparator: \"***\"\nlua:\n  timeout: 3s\n")},
		"project.toml":           {Data: []byte("[lua]\ntimeout = \"1s\"\ncallLimit = 10\n")},
	}
	t.Setenv("QUILLTEST_LUA_CALL_LIMIT", "20")
	t.Setenv("QUILLTEST_LUA_CAPABILITIES", "clipboard")

	c := newTestConfig(t,
		WithFS(fsys),
		WithUserConfigDir("home/quill"),
		WithConfigFile("project.toml"),
	)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := LuaConfig{
		CallLimit:    20,
		Timeout:      time.Second,
		Capabilities: []string{"clipboard"},
	}
	if diff := cmp.Diff(want, c.Lua()); diff != "" {
		t.Errorf("Lua() mismatch (-want +got):\n%s", diff)
	}
	if got := c.Sections().ResponseSeparator; got != "***" {
		t.Errorf("ResponseSeparator = %q, want ***", got)
	}

	sources := map[string]string{
		"lua.callLimit":              "environment",
		"lua.timeout":                "file",
		"sections.responseSeparator": "user",
		"clipboard.system":           "defaults",
	}
	for path, want := range sources {
		if got, _ := c.Source(path); got != want {
			t.Errorf("Source(%s) = %q, want %q", path, got, want)
		}
	}
}

func TestConfig_LoadMissingExplicitFile(t *testing.T) {
	c := newTestConfig(t, WithConfigFile(filepath.Join(t.TempDir(), "nope.toml")))
	if err := c.Load(context.Background()); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestConfig_LoadParseError(t *testing.T) {
	fsys := fstest.MapFS{"bad.toml": {Data: []byte("[lua\n")}}
	c := newTestConfig(t, WithFS(fsys), WithConfigFile("bad.toml"))

	var perr *ParseError
	if err := c.Load(context.Background()); !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != "bad.toml" {
		t.Errorf("ParseError.Path = %q", perr.Path)
	}
}

func TestConfig_LoadUnsupportedFormat(t *testing.T) {
	c := newTestConfig(t, WithConfigFile("config.ini"))
	if err := c.Load(context.Background()); err == nil {
		t.Error("Load() with .ini should fail")
	}
}

func TestConfig_LoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := newTestConfig(t).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestConfig_Set(t *testing.T) {
	c := newTestConfig(t)

	if err := c.Set("logging.level", "warn"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := c.Logging().Level; got != "warn" {
		t.Errorf("Logging().Level = %q, want warn", got)
	}
	if src, _ := c.Source("logging.level"); src != "arguments" {
		t.Errorf("Source(logging.level) = %q, want arguments", src)
	}

	for _, bad := range []string{"", ".a", "a.", "a..b"} {
		if err := c.Set(bad, 1); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestConfig_TypedGetters(t *testing.T) {
	c := newTestConfig(t)
	_ = c.Set("test.int", int64(7))
	_ = c.Set("test.float", 2.5)
	_ = c.Set("test.wholeFloat", 3.0)
	_ = c.Set("test.bool", true)
	_ = c.Set("test.duration", "250ms")
	_ = c.Set("test.seconds", 2)
	_ = c.Set("test.list", "a, b,,c")

	if v, err := c.GetInt("test.int"); err != nil || v != 7 {
		t.Errorf("GetInt = %d, %v", v, err)
	}
	if v, err := c.GetInt("test.wholeFloat"); err != nil || v != 3 {
		t.Errorf("GetInt(wholeFloat) = %d, %v", v, err)
	}
	if _, err := c.GetInt("test.float"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetInt(float) error = %v, want ErrTypeMismatch", err)
	}
	if v, err := c.GetFloat("test.int"); err != nil || v != 7 {
		t.Errorf("GetFloat(int) = %v, %v", v, err)
	}
	if v, err := c.GetBool("test.bool"); err != nil || !v {
		t.Errorf("GetBool = %v, %v", v, err)
	}
	if v, err := c.GetDuration("test.duration"); err != nil || v != 250*time.Millisecond {
		t.Errorf("GetDuration = %v, %v", v, err)
	}
	if v, err := c.GetDuration("test.seconds"); err != nil || v != 2*time.Second {
		t.Errorf("GetDuration(seconds) = %v, %v", v, err)
	}
	if v, err := c.GetStringSlice("test.list"); err != nil || !cmp.Equal(v, []string{"a", "b", "c"}) {
		t.Errorf("GetStringSlice = %v, %v", v, err)
	}
	if _, err := c.GetBool("test.int"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetBool(int) error = %v, want ErrTypeMismatch", err)
	}

	var terr *TypeError
	_ = c.Set("test.badDuration", "soon")
	if _, err := c.GetDuration("test.badDuration"); !errors.As(err, &terr) || !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetDuration(bad) error = %v, want TypeError", err)
	}
}

func TestConfig_Merged(t *testing.T) {
	c := newTestConfig(t)
	merged := c.Merged()
	merged["logging"].(map[string]any)["level"] = "mutated"

	if got := c.Logging().Level; got != "info" {
		t.Errorf("Merged() aliases config state: level = %q", got)
	}
}

func TestConfig_Settings(t *testing.T) {
	c := newTestConfig(t)
	if err := c.Set("logging.level", "debug"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	settings := c.Settings()
	byPath := make(map[string]Setting, len(settings))
	for i, s := range settings {
		if i > 0 && settings[i-1].Path >= s.Path {
			t.Errorf("Settings() not sorted at %q", s.Path)
		}
		byPath[s.Path] = s
	}

	want := map[string]Setting{
		"logging.level":    {Path: "logging.level", Value: "debug", Source: "arguments"},
		"markdown.bold":    {Path: "markdown.bold", Value: "**", Source: "defaults"},
		"lua.callLimit":    {Path: "lua.callLimit", Value: int64(100_000), Source: "defaults"},
		"clipboard.system": {Path: "clipboard.system", Value: false, Source: "defaults"},
	}
	for path, w := range want {
		if diff := cmp.Diff(w, byPath[path]); diff != "" {
			t.Errorf("Settings()[%s] mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestDefaultUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := defaultUserConfigDir(); got != filepath.Join("/tmp/xdg", "quill") {
		t.Errorf("defaultUserConfigDir() = %q", got)
	}
}
