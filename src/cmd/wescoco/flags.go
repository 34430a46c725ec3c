// FILE: wescoco/src/cmd/wescoco/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/log"
)

// Parsed command-line options
type FlagConfig struct {
	ConfigFile  string
	ShowVersion bool
	Quiet       bool

	LogOutput string
	LogLevel  string
	LogFile   string
	LogDir    string
}

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "WesCoco - Wesnoth Console Colorizer\n\n")
	fmt.Fprintf(os.Stderr, "Usage: wesnoth 2>&1 | %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Reads the engine's output on stdin and re-emits every line on stderr\n")
	fmt.Fprintf(os.Stderr, "with ANSI styling applied to recognized log lines.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress the tool's own output (passthrough is unaffected)\n")

	fmt.Fprintf(os.Stderr, "\nLogging (the tool's own diagnostics, never stderr):\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tLog output: stdout, file, both, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tLog level: debug, info, warn, error (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-file string\n\tLog file base name (when using file output)\n")
	fmt.Fprintf(os.Stderr, "  -log-dir string\n\tLog directory (when using file output)\n")

	fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
	fmt.Fprintf(os.Stderr, "  WESCOCO_CONFIG_FILE              Config file path\n")
	fmt.Fprintf(os.Stderr, "  WESCOCO_CONFIG_DIR               Config directory\n")
	fmt.Fprintf(os.Stderr, "  WESCOCO_DISABLE_STATUS_REPORTER  Disable periodic status reports (set to 1)\n")
}

// ParseFlags parses and validates the command line.
func ParseFlags() (*FlagConfig, error) {
	configFile := flag.String("config", "", "Config file path")
	showVersion := flag.Bool("version", false, "Show version information")
	quiet := flag.Bool("quiet", false, "Suppress the tool's own output")

	logOutput := flag.String("log-output", "", "Log output: stdout, file, both, none (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFile := flag.String("log-file", "", "Log file base name (when using file output)")
	logDir := flag.String("log-dir", "", "Log directory (when using file output)")

	flag.Parse()

	if *logOutput != "" {
		validOutputs := map[string]bool{
			"stdout": true, "file": true, "both": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return nil, fmt.Errorf("invalid log-output: %s (valid: stdout, file, both, none)", *logOutput)
		}
	}

	if *logLevel != "" {
		if _, err := parseLogLevel(*logLevel); err != nil {
			return nil, fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	return &FlagConfig{
		ConfigFile:  *configFile,
		ShowVersion: *showVersion,
		Quiet:       *quiet,
		LogOutput:   *logOutput,
		LogLevel:    *logLevel,
		LogFile:     *logFile,
		LogDir:      *logDir,
	}, nil
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
