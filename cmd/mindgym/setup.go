package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/storage"
)

// newLogger builds the command logger. Interactive commands log to a file so
// the alternate screen stays clean; the returned closer releases it.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if interactive {
		path := flagLogFile
		if path == "" {
			path = config.UserPath("mindgym.log")
		}
		if path == "" {
			w = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mindgym",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the game configuration and applies the difficulty preset.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// openStore opens the score database. With noSave the results only live
// for the current process.
func openStore(noSave bool, logger *log.Logger) storage.ScoreStore {
	if noSave {
		return storage.NewMemory()
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without persistence - games still work
		logger.Warn("could not open scores database, results will not be kept", "path", flagDBPath, "error", err)
		return storage.NewMemory()
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
