package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCheckerPath is the executable invoked when no path is configured.
	DefaultCheckerPath = "./spellchecker.exe"
	// DefaultTimeout bounds a single checker invocation.
	DefaultTimeout = 30 * time.Second
	// DefaultIndent prefixes suggestion lines in the results pane.
	DefaultIndent = "    "
	// DefaultTitle is shown in the header of the interactive view.
	DefaultTitle = "Correcto"
)

// Config represents the full Correcto configuration document.
type Config struct {
	Checker CheckerConfig `yaml:"checker"`
	UI      UIConfig      `yaml:"ui,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// CheckerConfig describes how the external spellchecker is invoked.
type CheckerConfig struct {
	Path    string   `yaml:"path" validate:"required,executable_path"`
	Args    []string `yaml:"args,omitempty" validate:"omitempty,dive,required"`
	Timeout Duration `yaml:"timeout" validate:"timeout_range"`
	WorkDir string   `yaml:"workdir,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title  string `yaml:"title,omitempty" validate:"max=80"`
	Indent string `yaml:"indent,omitempty" validate:"max=16"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file,omitempty"`
}

// Duration is a time.Duration that decodes from strings such as "30s" or
// from a bare integer number of seconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if value.ShortTag() == "!!int" {
		var seconds int64
		if err := value.Decode(&seconds); err != nil {
			return err
		}
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Checker: CheckerConfig{
			Path:    DefaultCheckerPath,
			Timeout: Duration(DefaultTimeout),
		},
		UI: UIConfig{
			Title:  DefaultTitle,
			Indent: DefaultIndent,
		},
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
	}
}

// Overrides are command-line values layered on top of a loaded config.
// Zero values leave the config untouched.
type Overrides struct {
	CheckerPath string
	Timeout     time.Duration
	LogLevel    string
	LogFile     string
}

// Apply layers the overrides onto cfg.
func (o Overrides) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if strings.TrimSpace(o.CheckerPath) != "" {
		cfg.Checker.Path = o.CheckerPath
	}
	if o.Timeout > 0 {
		cfg.Checker.Timeout = Duration(o.Timeout)
	}
	if o.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(o.LogLevel)
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
}
