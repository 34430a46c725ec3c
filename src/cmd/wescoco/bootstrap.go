// FILE: wescoco/src/cmd/wescoco/bootstrap.go
package main

import (
	"fmt"

	"wescoco/src/internal/config"

	"github.com/lixenwraith/log"
)

// applyFlagOverrides layers command-line options over the loaded config.
func applyFlagOverrides(cfg *config.Config, flagCfg *FlagConfig) {
	if flagCfg.Quiet {
		cfg.Quiet = true
	}
	if flagCfg.LogOutput != "" {
		cfg.Logging.Output = flagCfg.LogOutput
	}
	if flagCfg.LogLevel != "" {
		cfg.Logging.Level = flagCfg.LogLevel
	}
	if flagCfg.LogDir != "" {
		cfg.Logging.File.Directory = flagCfg.LogDir
	}
	if flagCfg.LogFile != "" {
		cfg.Logging.File.Name = flagCfg.LogFile
	}
}

// initializeLogger sets up the diagnostic logger based on configuration.
// Diagnostics never go to stderr - that stream carries the passthrough.
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	var configArgs []string

	if cfg.Quiet {
		// In quiet mode, disable ALL logging output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=false",
			"level=255")

		return startLogger(configArgs)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stdout")

	case "file":
		configArgs = append(configArgs, "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs,
			"enable_console=true",
			"console_target=stdout")
		configureFileLogging(&configArgs, cfg)

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	return startLogger(configArgs)
}

// startLogger applies the assembled key=value overrides and starts the
// logger's background writer.
func startLogger(configArgs []string) error {
	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	return logger.Start()
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB))

		if cfg.Logging.File.RetentionHours > 0 {
			*configArgs = append(*configArgs,
				fmt.Sprintf("retention_period_hrs=%.1f", cfg.Logging.File.RetentionHours))
		}
	}
}
