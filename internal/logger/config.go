package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvLevel       = "SMLOGIC_LOG_LEVEL"
	EnvFormat      = "SMLOGIC_LOG_FORMAT"
	EnvFileEnabled = "SMLOGIC_LOG_FILE_ENABLED"
	EnvFilePath    = "SMLOGIC_LOG_FILE_PATH"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled *bool  `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

type loggingFile struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs warnings and above to the console in text.
func DefaultConfig() Config {
	enabled := true
	return Config{
		Level:          "WARNING",
		ConsoleEnabled: &enabled,
		ConsoleFormat:  "text",
		FilePath:       "logs/smlogic.log",
		FileFormat:     "json",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing file yields the defaults; a
// file that cannot be parsed is an error.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config, fmt.Errorf("failed to read logging config: %w", err)
		default:
			var file loggingFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return config, fmt.Errorf("failed to parse logging config: %w", err)
			}
			config.merge(file.Logging)
		}
	}

	if level := os.Getenv(EnvLevel); level != "" {
		config.Level = level
	}
	if format := os.Getenv(EnvFormat); format != "" {
		config.ConsoleFormat = format
	}
	if fileEnabled := os.Getenv(EnvFileEnabled); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}
	if filePath := os.Getenv(EnvFilePath); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}

// consoleEnabled treats an unset flag as enabled.
func (c Config) consoleEnabled() bool {
	return c.ConsoleEnabled == nil || *c.ConsoleEnabled
}

func (c *Config) merge(o Config) {
	if o.Level != "" {
		c.Level = o.Level
	}
	if o.ConsoleEnabled != nil {
		c.ConsoleEnabled = o.ConsoleEnabled
	}
	if o.ConsoleFormat != "" {
		c.ConsoleFormat = o.ConsoleFormat
	}
	c.FileEnabled = o.FileEnabled
	if o.FilePath != "" {
		c.FilePath = o.FilePath
	}
	if o.FileFormat != "" {
		c.FileFormat = o.FileFormat
	}
	if o.FileMaxSizeMB > 0 {
		c.FileMaxSizeMB = o.FileMaxSizeMB
	}
	if o.FileMaxBackups > 0 {
		c.FileMaxBackups = o.FileMaxBackups
	}
	if o.FileMaxAgeDays > 0 {
		c.FileMaxAgeDays = o.FileMaxAgeDays
	}
}
