// FILE: wescoco/src/internal/config/validation.go
package config

import "fmt"

func (c *Config) validate() error {
	if c.Source.BufferSize <= 0 {
		return fmt.Errorf("invalid source buffer size: %d", c.Source.BufferSize)
	}
	if c.Sink.BufferSize <= 0 {
		return fmt.Errorf("invalid sink buffer size: %d", c.Sink.BufferSize)
	}
	if c.Status.ReportIntervalSeconds < 0 {
		return fmt.Errorf("invalid status report interval: %d", c.Status.ReportIntervalSeconds)
	}

	if err := validateLogConfig(c.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}
