package app

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log severities.
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

// ParseLogLevel parses a level name, ignoring case and surrounding space.
// Unknown names parse as LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// defaultLogPrefix tags every line the application writes.
const defaultLogPrefix = "rebind"

// logSink serializes writes from a logger and every logger derived from it.
type logSink struct {
	mu sync.Mutex
	w  io.Writer
}

// Logger writes leveled lines with a prefix and key=value fields sorted by
// key. Loggers derived with WithField share the parent's output and are
// safe for concurrent use.
type Logger struct {
	sink   *logSink
	level  LogLevel
	prefix string
	fields map[string]any
}

// LoggerConfig configures a Logger. A nil Output means os.Stderr.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer
	Prefix string
}

// NewLogger creates a logger.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &logSink{w: cfg.Output},
		level:  cfg.Level,
		prefix: cfg.Prefix,
	}
}

// WithField returns a logger that adds key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a logger that adds fields to every line. Later
// values replace earlier ones with the same key.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &Logger{
		sink:   l.sink,
		level:  l.level,
		prefix: l.prefix,
		fields: merged,
	}
}

// WithComponent tags lines with the subsystem that wrote them.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.level
}

func (l *Logger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.log(LogLevelError, format, args) }

func (l *Logger) log(level LogLevel, format string, args []any) {
	if !l.Enabled(level) {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var sb strings.Builder
	sb.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&sb, " [%s] ", level)
	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(": ")
	}
	sb.WriteString(msg)
	if len(l.fields) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(l.fields)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, l.fields[k])
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('\n')

	l.sink.mu.Lock()
	_, _ = io.WriteString(l.sink.w, sb.String())
	l.sink.mu.Unlock()
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
