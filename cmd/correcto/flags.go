package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/correcto/internal/config"
)

type rootFlags struct {
	configPath  string
	checkerPath string
	timeout     time.Duration
	logLevel    string
	logFile     string
	verbose     bool
}

func (f *rootFlags) overrides() config.Overrides {
	level := f.logLevel
	if f.verbose && level == "" {
		level = "debug"
	}
	return config.Overrides{
		CheckerPath: f.checkerPath,
		Timeout:     f.timeout,
		LogLevel:    level,
		LogFile:     f.logFile,
	}
}

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadConfig resolves defaults, the optional config file and flag overrides,
// then validates the merged result.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if err := validateConfigPath(f.configPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	f.overrides().Apply(cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
