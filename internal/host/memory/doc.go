// Package memory provides an in-memory host for quill actions.
//
// Document implements host.Editor over a rune buffer with a single
// selection. It is what the command line driver, the Lua scripting layer and
// the tests run actions against.
//
// Basic usage:
//
//	doc := memory.NewDocument("Hello, World!")
//	doc.SetSelectedRange(7, 5)         // select "World"
//	doc.SetSelectedText("Gopher")      // "Hello, Gopher!"
//
// Thread Safety:
//
// All Document methods are safe for concurrent use. Actions themselves are
// expected to run one at a time; the lock only protects readers such as a
// status display running alongside.
package memory
