// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

// Mode selects sink defaults: the interactive picker owns the terminal,
// so it logs to a file.
type Mode uint8

const (
	ModeCLI Mode = iota + 1
	ModeTUI
)

func (m Mode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	default:
		return "cli"
	}
}

// Options controls logger construction. Empty fields take mode defaults.
type Options struct {
	Level      string
	Format     string
	Sink       string
	File       string
	MaxSizeMB  int
	MaxBackups int

	App     string
	Version string
	Mode    Mode
}

// Init installs the logger as slog's default and returns a func that
// flushes and closes the sink.
func Init(opts Options) (func() error, error) {
	if opts.App == "" {
		opts.App = "codelaunch"
	}
	if opts.Mode == 0 {
		opts.Mode = ModeCLI
	}

	logger, closeFn, err := build(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func build(opts Options) (*slog.Logger, func() error, error) {
	sink := Sink(strings.ToLower(strings.TrimSpace(opts.Sink)))
	if sink == "" {
		sink = SinkStderr
		if opts.Mode == ModeTUI {
			sink = SinkFile
		}
	}

	writer, closeFn, err := resolveWriter(opts, sink)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var handler slog.Handler
	switch Format(strings.ToLower(strings.TrimSpace(opts.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	logger := slog.New(handler)
	if sink == SinkFile {
		// A shared log file needs to say who wrote each line.
		logger = logger.With(
			slog.String("app", opts.App),
			slog.String("version", opts.Version),
			slog.String("mode", opts.Mode.String()),
		)
	}
	return logger, closeFn, nil
}

func parseLevel(value string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func resolveWriter(opts Options, sink Sink) (io.Writer, func() error, error) {
	switch sink {
	case SinkNone:
		return io.Discard, func() error { return nil }, nil
	case SinkStderr:
		return os.Stderr, func() error { return nil }, nil
	case SinkFile:
		path := strings.TrimSpace(opts.File)
		if path == "" {
			return nil, nil, fmt.Errorf("logging: file sink needs a path")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: creating log dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    positiveOr(opts.MaxSizeMB, 5),
			MaxBackups: positiveOr(opts.MaxBackups, 3),
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", sink)
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
