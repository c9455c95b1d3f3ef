// Package highlight toggles markdown markers around the selection.
//
// A Toggler snapshots the selection once when it is created and then makes
// one decision:
//
//   - caret only: insert a single marker and move the caret past it
//   - selection already wrapped: strip the markers
//   - otherwise: wrap the selection and put the caret after the suffix
//
// A selection counts as wrapped in two forms. In the inner form the markers
// sit just outside the selection ("**" + sel + "**"); in the outer form the
// selection contains them. Both are recognised so that toggling twice
// returns to the original text whichever way the user selected.
//
// The selection end used throughout is the effective end: when only blank
// lines follow the selection, trailing whitespace inside it is ignored (see
// textrange.Accessor.EffectiveEnd).
package highlight
