package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelaunch/internal/config"
	"github.com/blackwell-systems/codelaunch/internal/launcher"
	"github.com/blackwell-systems/codelaunch/internal/logging"
	"github.com/blackwell-systems/codelaunch/internal/output"
	"github.com/blackwell-systems/codelaunch/internal/vscode"
)

// session holds what one command invocation needs: configuration, the
// locator and extractor for this host, and the log sink to close.
type session struct {
	cfg       *config.Config
	locator   *vscode.Locator
	extractor *vscode.Extractor
	closeLog  func() error
	// run replaces process execution when set.
	run launcher.Runner
}

// newSession is overridden in tests to point at fixture directories.
var newSession = func(mode logging.Mode) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	closeLog, err := logging.Init(logging.Options{
		Level:      level,
		Format:     cfg.Log.Format,
		Sink:       cfg.Log.Sink,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Version:    appVersion,
		Mode:       mode,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	output.ConfigureColor(flagNoColor || !cfg.Output.Color)

	home, err := os.UserHomeDir()
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	locator := vscode.NewLocator(home)
	locator.Flavors = cfg.Flavors
	locator.ExtraDirs = cfg.ExtraDirs

	return &session{
		cfg:       cfg,
		locator:   locator,
		extractor: vscode.NewExtractor(locator.Family),
		closeLog:  closeLog,
	}, nil
}

// Close flushes the log sink.
func (s *session) Close() {
	if s.closeLog == nil {
		return
	}
	if err := s.closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: closing log:", err)
	}
}

func (s *session) locate() (vscode.Location, bool) {
	return s.locator.Locate()
}

// load locates the store and extracts it. Every failure, including a
// missing store, yields an empty set.
func (s *session) load() vscode.ProjectSet {
	loc, ok := s.locate()
	if !ok {
		slog.Info("no recent projects", "err", vscode.ErrLocationNotFound)
		return vscode.NewProjectSet()
	}
	return s.extractor.Extract(loc)
}

// launcher picks the editor command: the configured one if set, otherwise
// the binary of the build that owns the located store.
func (s *session) launcher(loc vscode.Location) (*launcher.Launcher, error) {
	var l *launcher.Launcher
	if s.cfg.EditorCommand != "" {
		parsed, err := launcher.Parse(s.cfg.EditorCommand)
		if err != nil {
			return nil, err
		}
		l = parsed
	} else {
		binary := loc.Flavor.Binary
		if binary == "" {
			binary = vscode.DefaultFlavors[0].Binary
		}
		l = launcher.New(binary)
	}
	if s.run != nil {
		l.Run = s.run
	}
	return l, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
