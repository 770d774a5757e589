package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/correcto/internal/checker"
	"github.com/alexisbeaulieu97/correcto/internal/config"
	"github.com/alexisbeaulieu97/correcto/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Checker *checker.Service

	closers []io.Closer
}

// newAppContext loads configuration and wires the logger and checker.
// fallback receives logs when no log file is configured.
func newAppContext(flags *rootFlags, fallback io.Writer) (*AppContext, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg}

	writer := fallback
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, file)
		writer = file
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app.Logger = log
	app.Checker = checker.NewService(nil, checker.OptionsFromConfig(cfg), log)
	return app, nil
}

// Close releases resources opened for the command.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
