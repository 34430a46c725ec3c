// FILE: wescoco/src/internal/config/config.go
package config

// Config covers ambient concerns only: diagnostics, buffer sizes and the
// status reporter. The highlighting rules and the stdin -> stderr stream
// routing are fixed behavior, not configuration.
type Config struct {
	// Suppress all of the tool's own output
	Quiet bool `toml:"quiet"`

	Source SourceConfig `toml:"source"`
	Sink   SinkConfig   `toml:"sink"`
	Status StatusConfig `toml:"status"`

	Logging *LogConfig `toml:"logging"`
}

type SourceConfig struct {
	// Subscriber channel capacity for the stdin source
	BufferSize int64 `toml:"buffer_size"`
}

type SinkConfig struct {
	// Input channel capacity for the console sink
	BufferSize int64 `toml:"buffer_size"`
}

type StatusConfig struct {
	// Interval between status reports in seconds (0 = disabled)
	ReportIntervalSeconds int64 `toml:"report_interval_seconds"`
}

func defaults() *Config {
	return &Config{
		Source: SourceConfig{
			BufferSize: 1000,
		},
		Sink: SinkConfig{
			BufferSize: 1000,
		},
		Status: StatusConfig{
			ReportIntervalSeconds: 0,
		},
		Logging: DefaultLogConfig(),
	}
}
