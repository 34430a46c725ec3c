// FILE: wescoco/src/internal/sink/sink.go
package sink

import (
	"context"
	"time"

	"wescoco/src/internal/core"
)

// Sink represents an output destination for rendered lines
type Sink interface {
	// Input returns the channel for sending entries to this sink.
	// The pipeline closes it once the source is drained.
	Input() chan<- core.LogEntry

	// Start begins processing entries
	Start(ctx context.Context) error

	// Stop gracefully shuts down the sink
	Stop()

	// Done is closed once the input channel has been drained
	Done() <-chan struct{}

	// GetStats returns sink statistics
	GetStats() SinkStats
}

// SinkStats contains statistics about a sink
type SinkStats struct {
	Type           string
	TotalProcessed uint64
	StartTime      time.Time
	LastProcessed  time.Time
	Details        map[string]any
}
