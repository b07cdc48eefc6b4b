package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	Debug bool
	log   zerolog.Logger
}

func NewLogger(debug bool) *Logger {
	return NewLoggerTo(os.Stderr, debug)
}

// NewLoggerTo writes human-readable log lines to w.
func NewLoggerTo(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    w != os.Stderr && w != os.Stdout,
		TimeFormat: time.TimeOnly,
	}

	return &Logger{
		Debug: debug,
		log:   zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log.Debug().Msg(line(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log.Info().Msg(line(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log.Warn().Msg(line(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log.Error().Msg(line(format, args...))
}

func line(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
