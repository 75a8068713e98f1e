package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flashcards/internal/completion"
	"github.com/five82/flashcards/internal/config"
	"github.com/five82/flashcards/internal/deck"
	"github.com/five82/flashcards/internal/flashcard"
	"github.com/five82/flashcards/internal/prefs"
	"github.com/five82/flashcards/internal/state"
	"github.com/five82/flashcards/internal/ui"
)

// Options configure the flashcards application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flashcards/prefs.toml
	Overrides  config.Overrides
	Theme      string // overrides the saved theme when set
	Source     string // overrides the saved source mode when set
	Debug      bool
}

// Run boots the flashcards TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer env.close()

	env.logger.Info("starting flashcards",
		"provider", env.cfg.Provider,
		"model", env.cfg.Model,
		"source", env.uiOpts.Source.String(),
		"theme", env.uiOpts.ThemeName,
	)
	if err := ui.Run(env.uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	env.logger.Info("flashcards exited")
	return nil
}

type environment struct {
	cfg    config.Config
	logger *slog.Logger
	uiOpts ui.Options
	close  func()
}

// setup loads configuration and preferences, opens the log file and builds
// the completion backend.
func setup(ctx context.Context, opts Options) (*environment, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		return nil, fmt.Errorf("load prefs: %w", err)
	}

	source := userPrefs.Source()
	if s := strings.TrimSpace(opts.Source); s != "" {
		source, err = flashcard.ParseSourceMode(s)
		if err != nil {
			return nil, err
		}
	}
	themeName := userPrefs.Theme
	if t := strings.TrimSpace(opts.Theme); t != "" {
		themeName = t
	}

	logger, closeLog, err := openLog(cfg.LogFile, opts.Debug)
	if err != nil {
		return nil, err
	}

	store := state.NewStore(cfg.Provider + "/" + cfg.Model)
	completer, err := completion.Build(ctx, cfg, store, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("init %s backend: %w", cfg.Provider, err)
	}

	return &environment{
		cfg:    cfg,
		logger: logger,
		close:  closeLog,
		uiOpts: ui.Options{
			Context:   ctx,
			Completer: completer,
			Store:     store,
			Logger:    logger,
			Timing:    deck.Timing{Exit: cfg.ExitDelay, Enter: cfg.EnterDelay},
			Source:    source,
			ThemeName: themeName,
			PrefsPath: prefsPath,
		},
	}, nil
}

// openLog routes both slog and the standard logger to path so nothing is
// written over the alternate screen.
func openLog(path string, debug bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "flashcards")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
