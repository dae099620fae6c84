// Package log provides levelled, categorised logging for token-studio.
// The CLI writes warnings and errors by default; --debug or log.level
// changes the threshold.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string onto a Level. Unknown strings fall back
// to LevelWarn.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelWarn, false
}

// Category groups related log messages.
type Category string

const (
	CatStore   Category = "store"   // token and group mutations
	CatStorage Category = "storage" // persisted record reads and writes
	CatExport  Category = "export"  // format rendering, import parsing
	CatConfig  Category = "config"  // configuration loading
	CatUI      Category = "ui"      // clipboard and terminal output
)

var badges = map[Level]*color.Color{
	LevelDebug: color.New(color.FgHiBlack),
	LevelInfo:  color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Logger writes one line per entry. A nil *Logger discards everything.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel Level
	now      func() time.Time
}

// New returns a logger writing entries at or above minLevel to w.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{writer: w, minLevel: minLevel, now: time.Now}
}

// SetMinLevel sets the minimum log level.
func (l *Logger) SetMinLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.minLevel = level
	l.mu.Unlock()
}

// Debug logs at debug level.
func (l *Logger) Debug(cat Category, msg string, fields ...any) {
	l.log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func (l *Logger) Info(cat Category, msg string, fields ...any) {
	l.log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func (l *Logger) Warn(cat Category, msg string, fields ...any) {
	l.log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(cat Category, msg string, fields ...any) {
	l.log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func (l *Logger) ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	l.log(LevelError, cat, msg, fields...)
}

func (l *Logger) log(level Level, cat Category, msg string, fields ...any) {
	if l == nil || l.writer == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [WARN] [store] message key=value key2=value2
	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02T15:04:05"))
	b.WriteString(" ")
	b.WriteString(badges[level].Sprintf("[%s]", level))
	fmt.Fprintf(&b, " [%s] %s", cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteString("\n")

	_, _ = io.WriteString(l.writer, b.String())
}
