// Package main is the entry point for the quill command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/host/memory"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	app            app.Options
	selection      string
	cursor         int
	actions        string
	script         string
	write          bool
	list           bool
	printConfig    bool
	clipboard      string
	dictation      string
	tags           string
	printSelection bool
	showVersion    bool
	file           string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "quill %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	opts.app.LogOutput = stderr
	application, err := app.New(ctx, opts.app)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.list || opts.printConfig {
		if opts.list {
			for _, info := range application.Actions() {
				fmt.Fprintf(stdout, "%-36s %s\n", info.Name, info.Description)
			}
		}
		if opts.printConfig {
			printSettings(stdout, application.Config().Settings())
		}
		if opts.actions == "" && opts.script == "" {
			return 0
		}
	}

	if err := edit(ctx, application, opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// edit loads the document, applies the selection, runs the actions and
// script, and writes the result.
func edit(ctx context.Context, application *app.Application, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	text, err := readDocument(opts.file, stdin)
	if err != nil {
		return err
	}

	doc := memory.NewDocument(text)
	if err := applySelection(doc, opts); err != nil {
		return err
	}

	hctx := &host.Context{
		Editor:    doc,
		Clipboard: application.NewClipboard(opts.clipboard),
		Dictation: memory.NewDictation(nonEmpty(opts.dictation)...),
		Tags:      memory.NewTags(splitList(opts.tags)...),
	}

	log := application.Logger().WithComponent("cli")
	results, err := application.RunActions(app.SplitActions(opts.actions), hctx)
	for _, r := range results {
		if r.Message != "" {
			log.Info("%s", r.Message)
		}
	}
	if err != nil {
		return err
	}

	if opts.script != "" {
		if err := application.RunScript(ctx, opts.script, hctx); err != nil {
			return err
		}
	}

	if opts.printSelection {
		sel := doc.SelectedRange()
		fmt.Fprintf(stderr, "%d:%d\n", sel.Start, sel.Length)
	}

	if opts.write {
		if doc.Revision() == 0 {
			log.Debug("%s unchanged", opts.file)
			return nil
		}
		return writeFile(opts.file, doc.DocumentText())
	}
	_, err = io.WriteString(stdout, doc.DocumentText())
	return err
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.selection, "select", "", "Initial selection as `start:length` (rune offsets)")
	fs.IntVar(&opts.cursor, "cursor", -1, "Initial caret offset")
	fs.StringVar(&opts.actions, "action", "", "Comma-separated actions to run in order")
	fs.StringVar(&opts.script, "script", "", "Lua script to run after the actions")
	fs.BoolVar(&opts.write, "w", false, "Write the result back to the file instead of stdout")
	fs.BoolVar(&opts.list, "list", false, "List available actions")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and where each setting comes from")
	fs.StringVar(&opts.clipboard, "clipboard", "", "Initial clipboard contents")
	fs.StringVar(&opts.dictation, "dictation", "", "Text returned by dictation")
	fs.StringVar(&opts.tags, "tags", "", "Comma-separated tags known to the host")
	fs.BoolVar(&opts.printSelection, "print-selection", false, "Print the final selection to stderr")
	fs.StringVar(&opts.app.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "quill - text editing actions for markdown documents\n\n")
		fmt.Fprintf(stderr, "Usage: quill [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  quill -list\n")
		fmt.Fprintf(stderr, "  quill -print-config -config project.toml\n")
		fmt.Fprintf(stderr, "  quill -select 0:5 -action markdown.bold notes.md\n")
		fmt.Fprintf(stderr, "  echo '1, 2, 3' | quill -select 0:7 -action math.sum\n")
		fmt.Fprintf(stderr, "  quill -w -script tidy.lua notes.md\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.app.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.app.LogLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if opts.write && opts.file == "" {
		return opts, errors.New("-w requires a file")
	}
	if opts.selection != "" && opts.cursor >= 0 {
		return opts, errors.New("-select and -cursor are mutually exclusive")
	}
	return opts, nil
}

func readDocument(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeFile(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(text), mode)
}

// applySelection sets the initial selection from -select or -cursor.
func applySelection(doc *memory.Document, opts options) error {
	start, length := 0, 0
	switch {
	case opts.selection != "":
		r, err := parseSelection(opts.selection)
		if err != nil {
			return err
		}
		start, length = r.Start, r.Length
	case opts.cursor >= 0:
		start = opts.cursor
	}

	if start+length > doc.Len() {
		return fmt.Errorf("selection %d:%d is outside the document (length %d)", start, length, doc.Len())
	}
	doc.SetSelectedRange(start, length)
	return nil
}

// parseSelection parses "start:length".
func parseSelection(s string) (host.Range, error) {
	startStr, lengthStr, ok := strings.Cut(s, ":")
	if !ok {
		return host.Range{}, fmt.Errorf("invalid selection %q: want start:length", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return host.Range{}, fmt.Errorf("invalid selection start %q: %w", startStr, err)
	}
	length, err := strconv.Atoi(strings.TrimSpace(lengthStr))
	if err != nil {
		return host.Range{}, fmt.Errorf("invalid selection length %q: %w", lengthStr, err)
	}
	if start < 0 || length < 0 {
		return host.Range{}, fmt.Errorf("invalid selection %q: negative offset", s)
	}
	return host.NewRange(start, length), nil
}

// printSettings writes one "path = value (source)" line per setting.
// Strings are quoted so separators such as fence newlines stay visible.
func printSettings(w io.Writer, settings []config.Setting) {
	for _, s := range settings {
		var value string
		if str, ok := s.Value.(string); ok {
			value = strconv.Quote(str)
		} else {
			value = fmt.Sprint(s.Value)
		}
		fmt.Fprintf(w, "%s = %s (%s)\n", s.Path, value, s.Source)
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
