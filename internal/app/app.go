package app

import (
	"context"
	"io"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/actions/editing"
	"github.com/dshills/quill/internal/actions/markdown"
	"github.com/dshills/quill/internal/actions/mathops"
	"github.com/dshills/quill/internal/actions/navigation"
	"github.com/dshills/quill/internal/actions/shortcuts"
	"github.com/dshills/quill/internal/actions/transform"
	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/host/clipboard"
)

// Application is the central coordinator for quill. It owns the loaded
// configuration, the logger and the action registry.
type Application struct {
	config   *config.Config
	logger   *Logger
	metrics  *Metrics
	registry *actions.Registry

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit configuration file. It must exist.
	ConfigPath string

	// UserConfigDir overrides the directory searched for the user config.
	UserConfigDir string

	// EnvPrefix overrides the QUILL_ environment prefix.
	EnvPrefix string

	// LogLevel overrides logging.level when non-empty.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

// New loads configuration and builds the application.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		metrics: NewMetrics(),
	}

	if err := app.initConfig(ctx); err != nil {
		return nil, err
	}
	app.initLogger()
	app.registry = newRegistry(app.config)
	app.reportConfigErrors()

	return app, nil
}

func (app *Application) initConfig(ctx context.Context) error {
	var opts []config.Option
	if app.opts.ConfigPath != "" {
		opts = append(opts, config.WithConfigFile(app.opts.ConfigPath))
	}
	if app.opts.UserConfigDir != "" {
		opts = append(opts, config.WithUserConfigDir(app.opts.UserConfigDir))
	}
	if app.opts.EnvPrefix != "" {
		opts = append(opts, config.WithEnvPrefix(app.opts.EnvPrefix))
	}

	app.config = config.New(opts...)
	if err := app.config.Load(ctx); err != nil {
		return NewComponentError("config", "load", err)
	}
	return nil
}

func (app *Application) initLogger() {
	level := app.config.Logging().Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	if app.opts.LogOutput != nil {
		cfg.Output = app.opts.LogOutput
	}
	app.logger = NewLogger(cfg)
}

// reportConfigErrors logs settings that fell back to defaults.
func (app *Application) reportConfigErrors() {
	// Touch every section so type errors are recorded.
	_ = app.config.Clipboard()
	_ = app.config.Lua()

	log := app.logger.WithComponent("config")
	for path, err := range app.config.ConfigErrors() {
		log.WithField("setting", path).Warn("using default: %v", err)
	}
}

// newRegistry registers every action namespace configured from cfg.
func newRegistry(cfg *config.Config) *actions.Registry {
	md := cfg.Markdown()

	r := actions.NewRegistry()
	r.RegisterNamespace(editing.NewHandler(editing.Options{
		ResponseSeparator: cfg.Sections().ResponseSeparator,
	}))
	r.RegisterNamespace(navigation.NewHandler())
	r.RegisterNamespace(markdown.NewHandler(markdown.Options{
		Bold:        md.Bold,
		Italic:      md.Italic,
		Code:        md.Code,
		FencePrefix: md.FencePrefix,
		FenceSuffix: md.FenceSuffix,
	}))
	r.RegisterNamespace(transform.NewHandler(transform.Options{}))
	r.RegisterNamespace(mathops.NewHandler())
	r.RegisterNamespace(shortcuts.NewHandler())
	return r
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Actions lists every registered action sorted by name.
func (app *Application) Actions() []actions.Info {
	return app.registry.List()
}

// NewClipboard returns the clipboard selected by clipboard.system. A
// non-empty seed becomes the clipboard's contents.
func (app *Application) NewClipboard(seed string) host.Clipboard {
	var cb host.Clipboard
	if app.config.Clipboard().System && clipboard.Available() {
		log := app.Logger().WithComponent("clipboard")
		cb = clipboard.NewSystem(func(err error) {
			log.Warn("system clipboard: %v", err)
		})
		if seed != "" {
			cb.SetClipboardText(seed)
		}
		return cb
	}
	return clipboard.NewMemory(seed)
}
