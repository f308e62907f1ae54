package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const DefaultFlags = log.Ldate | log.Ltime

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, "", DefaultFlags, LevelInfo)
}

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel parses a log level string into a Level.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// Logger writes one JSON object per line for every message at or below its level.
type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, prefix string, flag int, level Level) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, "", 0, LevelError)
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Enabled(level Level) bool {
	return level <= l.level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	entry := map[string]any{
		"level": level.String(),
		"msg":   fmt.Sprintf(format, args...),
	}
	msg, _ := json.Marshal(entry)
	l.logger.Print(string(msg))
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, args ...any) {
	l.logf(LevelError, format, args...)
	os.Exit(1)
}

func SetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func Info(format string, args ...any) {
	Default().Info(format, args...)
}

func Error(format string, args ...any) {
	Default().Error(format, args...)
}

func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

func Trace(format string, args ...any) {
	Default().Trace(format, args...)
}

func Fatal(format string, args ...any) {
	Default().Fatal(format, args...)
}
