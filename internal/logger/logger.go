// ABOUTME: Leveled logging for the text area engine and demo shell
// ABOUTME: Writes "[LEVEL] message" lines through the standard log writer

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var level = LevelInfo

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(s string) {
	level = ParseLevel(s)
}

// SetVerbose toggles between DEBUG and INFO
func SetVerbose(v bool) {
	if v {
		level = LevelDebug
	} else {
		level = LevelInfo
	}
}

func IsVerbose() bool {
	return level == LevelDebug
}

// SetOutput sets the output destination for logs; nil restores stderr
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	log.SetOutput(w)
}

func logf(l Level, tag, format string, args ...interface{}) {
	if l < level {
		return
	}
	log.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) {
	logf(LevelDebug, "DEBUG", format, args...)
}

func Info(format string, args ...interface{}) {
	logf(LevelInfo, "INFO", format, args...)
}

func Warn(format string, args ...interface{}) {
	logf(LevelWarn, "WARN", format, args...)
}

func Error(format string, args ...interface{}) {
	logf(LevelError, "ERROR", format, args...)
}
