// FILE: wescoco/src/internal/config/logging.go
package config

import "fmt"

// LogConfig configures the tool's own diagnostics. stderr is deliberately
// not an option: stderr carries the colorized passthrough stream and the
// two must never interleave.
type LogConfig struct {
	// Output mode: "stdout", "file", "both", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// File output settings (when Output is "file" or "both")
	File *LogFileConfig `toml:"file"`
}

type LogFileConfig struct {
	// Directory for log files
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`

	// Maximum size per log file in MB
	MaxSizeMB int64 `toml:"max_size_mb"`

	// Maximum total size of all logs in MB
	MaxTotalSizeMB int64 `toml:"max_total_size_mb"`

	// Log retention in hours (0 = disabled)
	RetentionHours float64 `toml:"retention_hours"`
}

// DefaultLogConfig returns sensible logging defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "stdout",
		Level:  "info",
		File: &LogFileConfig{
			Directory:      "./log",
			Name:           "wescoco",
			MaxSizeMB:      100,
			MaxTotalSizeMB: 1000,
			RetentionHours: 168, // 7 days
		},
	}
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("logging config is nil")
	}

	validOutputs := map[string]bool{
		"stdout": true, "file": true, "both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if cfg.File == nil || cfg.File.Directory == "" {
			return fmt.Errorf("file logging requires a directory")
		}
		if cfg.File.MaxSizeMB <= 0 {
			return fmt.Errorf("invalid max log file size: %d", cfg.File.MaxSizeMB)
		}
	}

	return nil
}
