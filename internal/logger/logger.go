package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Level is a logging severity.
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	NONE
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "NONE"}

var levelColors = [...]string{
	"\033[90m", // Grey
	"\033[36m", // Cyan
	"\033[32m", // Green
	"\033[33m", // Yellow
	"\033[31m", // Red
}

const resetColor = "\033[0m"

func (l Level) String() string {
	if l >= TRACE && l <= NONE {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel maps a level name to a Level; unknown names fall back to WARN.
func ParseLevel(s string) Level {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i)
		}
	}
	return WARN
}

// Logger writes leveled lines through a log.Logger.
type Logger struct {
	level  Level
	color  bool
	prefix string
	file   *os.File
	logger *log.Logger
	mu     sync.Mutex
}

// New creates a logger writing to w. Colour is only used when w is a
// terminal.
func New(w io.Writer, level Level, color bool) *Logger {
	return &Logger{
		level:  level,
		color:  color && IsTerminal(w),
		logger: log.New(w, "", log.LstdFlags),
	}
}

// NewFile opens path for appending and logs there; on failure it falls back
// to stderr and reports the error.
func NewFile(path string, level Level) (*Logger, error) {
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return New(os.Stderr, level, false), fmt.Errorf("opening log file: %w", err)
	}
	l := New(fh, level, false)
	l.file = fh
	return l, nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// With returns a logger sharing the output that prepends prefix to messages.
func (l *Logger) With(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:  l.level,
		color:  l.color,
		prefix: l.prefix + prefix,
		logger: l.logger,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level || l.level == NONE {
		return
	}
	msg := fmt.Sprintf(format, args...)
	tag := level.String()
	if l.color {
		tag = levelColors[level] + tag + resetColor
	}
	l.logger.Printf("[%s] %s%s", tag, l.prefix, msg)
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.log(TRACE, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
