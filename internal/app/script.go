package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/plugin"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// RunScript runs the Lua script at path against hctx using the lua.*
// settings.
func (app *Application) RunScript(ctx context.Context, path string, hctx *host.Context) error {
	sh, err := app.scriptHost(hctx)
	if err != nil {
		return NewOperationError("script", path, err)
	}

	log := app.Logger().WithComponent("script").WithFields(map[string]any{
		"script":     path,
		"invocation": uuid.New().String(),
	})
	log.Debug("running with capabilities %v", sh.Capabilities())

	timer := StartTimer()
	err = sh.RunFile(ctx, path)
	app.metrics.RecordScript(timer.Elapsed(), err)
	if err != nil {
		log.Warn("script failed: %v", err)
		return NewOperationError("script", path, err)
	}
	log.Debug("script finished in %s", timer.Elapsed())
	return nil
}

func (app *Application) scriptHost(hctx *host.Context) (*plugin.Host, error) {
	if hctx == nil || hctx.Editor == nil {
		return nil, ErrNoDocument
	}

	lc := app.config.Lua()
	var caps []plua.Capability
	var errs []error
	for _, name := range lc.Capabilities {
		c, err := plua.ParseCapability(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		caps = append(caps, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return plugin.NewHost(hctx, scriptActions{app: app},
		plugin.WithTimeout(lc.Timeout),
		plugin.WithCallLimit(int64(lc.CallLimit)),
		plugin.WithCapabilities(caps...),
	)
}
