// Package config loads the optional macperms command configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tmc/macperms/fulldisk"
	"github.com/tmc/macperms/internal/logging"
	"github.com/tmc/macperms/sysprefpane"
)

// FileName is the configuration file name inside the user config directory.
const FileName = "config.yml"

var validate = validator.New()

// Config is the on-disk configuration.
type Config struct {
	Log            LogConfig            `yaml:"log"`
	FullDiskAccess FullDiskAccessConfig `yaml:"full_disk_access"`
	Settings       SettingsConfig       `yaml:"settings"`
}

// LogConfig overrides the MACPERMS_LOG_* environment.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
	Dest   string `yaml:"dest,omitempty" validate:"omitempty,logdest"`
}

// FullDiskAccessConfig replaces the Full Disk Access probe list.
type FullDiskAccessConfig struct {
	ProbePaths []string `yaml:"probe_paths,omitempty" validate:"omitempty,dive,required"`
}

// SettingsConfig controls how System Settings panes are opened.
type SettingsConfig struct {
	Opener OpenerConfig `yaml:"opener"`
}

// OpenerConfig is the command run with the pane URL as its last argument.
type OpenerConfig struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" validate:"omitempty,excluded_without=Command"`
}

func init() {
	_ = validate.RegisterValidation("logdest", func(fl validator.FieldLevel) bool {
		dest := fl.Field().String()
		if dest == "stderr" {
			return true
		}
		for _, prefix := range []string{"file:", "both:"} {
			if path, ok := strings.CutPrefix(dest, prefix); ok {
				return path != ""
			}
		}
		return false
	})
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "macperms", FileName), nil
}

// Load reads, parses and validates the file at path. A missing file returns
// an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault loads the file at DefaultPath. A missing file yields an empty
// configuration.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogOptions applies the log section on top of base.
func (c *Config) LogOptions(base logging.Options) (logging.Options, error) {
	opts := base
	if c.Log.Level != "" {
		level, err := logging.ParseLevel(c.Log.Level)
		if err != nil {
			return base, err
		}
		opts.Level = level
	}
	switch c.Log.Format {
	case "json":
		opts.JSON = true
	case "text":
		opts.JSON = false
	}
	if c.Log.Dest != "" {
		opts.Dest = c.Log.Dest
	}
	return opts, nil
}

// ProberOptions returns the fulldisk options for the configured probe list.
func (c *Config) ProberOptions() []fulldisk.Option {
	if len(c.FullDiskAccess.ProbePaths) == 0 {
		return nil
	}
	return []fulldisk.Option{fulldisk.WithPaths(c.FullDiskAccess.ProbePaths...)}
}

// Opener returns the pane opener described by the settings section.
func (c *Config) Opener(logger *slog.Logger) sysprefpane.CommandOpener {
	return sysprefpane.CommandOpener{
		Command: c.Settings.Opener.Command,
		Args:    append([]string(nil), c.Settings.Opener.Args...),
		Logger:  logger,
	}
}
