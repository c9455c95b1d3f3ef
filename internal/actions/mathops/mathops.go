package mathops

import (
	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/expr"
	"github.com/dshills/quill/internal/host"
)

// Namespace is the action namespace of this package.
const Namespace = "math"

// Action names.
const (
	ActionSum      = "math.sum"
	ActionProduct  = "math.product"
	ActionMin      = "math.min"
	ActionMax      = "math.max"
	ActionMean     = "math.mean"
	ActionEvaluate = "math.evaluate"
)

// Handler provides the math namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
}

// NewHandler creates the math handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace)}
	h.Register(ActionSum, "Replace the selected numbers with their sum", aggregate(Sum))
	h.Register(ActionProduct, "Replace the selected numbers with their product", aggregate(Product))
	h.Register(ActionMin, "Replace the selected numbers with the smallest", aggregate(Min))
	h.Register(ActionMax, "Replace the selected numbers with the largest", aggregate(Max))
	h.Register(ActionMean, "Replace the selected numbers with their mean", aggregate(Mean))
	h.Register(ActionEvaluate, "Replace the selected arithmetic expression with its value", compute(expr.Eval))
	return h
}

func aggregate(fn func([]float64) float64) actions.Func {
	return compute(func(text string) (float64, error) {
		nums, err := ParseNumbers(text)
		if err != nil {
			return 0, err
		}
		return fn(nums), nil
	})
}

// compute returns an action replacing the selection with Format(fn(text)).
// On error the document is left unchanged.
func compute(fn func(string) (float64, error)) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireEditor(ctx); err != nil {
			return actions.Error(err)
		}
		m := textrange.NewMutator(ctx.Editor)
		selected := m.SelectedText()
		if selected == "" {
			return actions.Error(actions.ErrEmptySelection)
		}
		v, err := fn(selected)
		if err != nil {
			return actions.Error(err)
		}
		out := Format(v)
		m.ReplaceSelection(out)
		return actions.Success().WithData("value", v)
	}
}
