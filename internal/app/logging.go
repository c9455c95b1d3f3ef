package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a level name, in any case, to a LogLevel.
// "warning" is accepted for warn; anything unrecognised is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToLower(s)
	if s == "warning" {
		return LogLevelWarn
	}
	for i, name := range levelNames {
		if strings.ToLower(name) == s {
			return LogLevel(i)
		}
	}
	return LogLevelInfo
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer // defaults to os.Stderr
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "quill",
	}
}

// sink is the state shared by a logger and everything derived from it.
type sink struct {
	mu       sync.Mutex
	w        io.Writer
	level    LogLevel
	disabled bool
}

// Logger writes one line per message:
//
//	2006-01-02T15:04:05.000 [LEVEL] prefix: message {key=value, ...}
//
// Loggers derived with WithField share their parent's output, level and
// enabled state; only the fields differ.
type Logger struct {
	sink   *sink
	prefix string
	fields map[string]any
	suffix string // rendered fields
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &sink{w: cfg.Output, level: cfg.Level},
		prefix: cfg.Prefix,
	}
}

// NullLogger discards everything.
var NullLogger = &Logger{}

// WithField returns a derived logger carrying key=value.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a derived logger carrying fields in addition to
// those of l. Later values win on key collisions.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{
		sink:   l.sink,
		prefix: l.prefix,
		fields: merged,
		suffix: renderFields(merged),
	}
}

// WithComponent is shorthand for WithField("component", component).
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func renderFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fields[k])
	}
	return " {" + strings.Join(parts, ", ") + "}"
}

func (l *Logger) SetLevel(level LogLevel) {
	l.update(func(s *sink) { s.level = level })
}

func (l *Logger) Level() LogLevel {
	var level LogLevel
	l.update(func(s *sink) { level = s.level })
	return level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.update(func(s *sink) { s.w = w })
}

func (l *Logger) Disable() {
	l.update(func(s *sink) { s.disabled = true })
}

func (l *Logger) Enable() {
	l.update(func(s *sink) { s.disabled = false })
}

func (l *Logger) update(fn func(*sink)) {
	if l.sink == nil {
		return
	}
	l.sink.mu.Lock()
	fn(l.sink)
	l.sink.mu.Unlock()
}

// Debug, Info, Warn and Error format msg with args as fmt.Sprintf does.

func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LogLevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LogLevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args) }

func (l *Logger) log(level LogLevel, msg string, args []any) {
	s := l.sink
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled || level < s.level || s.w == nil {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	prefix := ""
	if l.prefix != "" {
		prefix = l.prefix + ": "
	}
	fmt.Fprintf(s.w, "%s [%s] %s%s%s\n",
		time.Now().Format("2006-01-02T15:04:05.000"), level, prefix, msg, l.suffix)
}
