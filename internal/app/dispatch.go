package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/host"
)

// Dispatch runs one action against hctx. Every invocation gets a fresh
// id in the log so a script's nested actions can be told apart.
func (app *Application) Dispatch(name string, hctx *host.Context) actions.Result {
	log := app.Logger().WithComponent("dispatch").WithFields(map[string]any{
		"action":     name,
		"invocation": uuid.New().String(),
	})

	timer := StartTimer()
	result := app.registry.Run(name, hctx)
	elapsed := timer.Elapsed()
	app.metrics.RecordAction(name, result.Status, elapsed)

	log = log.WithField("status", result.Status)
	if result.IsError() {
		log.Warn("action failed: %v", result.Error)
		return result
	}
	log.Debug("action finished in %s", elapsed)
	return result
}

// RunActions dispatches names in order and stops at the first error.
// Blank names are skipped. The results of the actions that ran are
// returned alongside any error.
func (app *Application) RunActions(names []string, hctx *host.Context) ([]actions.Result, error) {
	if hctx == nil || hctx.Editor == nil {
		return nil, ErrNoDocument
	}

	var results []actions.Result
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		result := app.Dispatch(name, hctx)
		results = append(results, result)
		if result.IsError() {
			return results, NewOperationError("action", name, result.Error)
		}
	}
	return results, nil
}

// SplitActions splits a comma-separated action list.
func SplitActions(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// scriptActions routes quill.actions calls through Dispatch so they are
// logged and counted like top-level actions.
type scriptActions struct {
	app *Application
}

func (s scriptActions) Run(name string, hctx *host.Context) actions.Result {
	return s.app.Dispatch(name, hctx)
}

func (s scriptActions) List() []actions.Info {
	return s.app.registry.List()
}
