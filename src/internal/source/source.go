// FILE: wescoco/src/internal/source/source.go
package source

import (
	"time"

	"wescoco/src/internal/core"
)

// Represents an input line stream
type Source interface {
	// Returns a channel that receives log entries
	Subscribe() <-chan core.LogEntry

	// Begins reading from the source
	Start() error

	// Gracefully shuts down the source
	Stop()

	// Returns source statistics
	GetStats() SourceStats
}

// Contains statistics about a source
type SourceStats struct {
	Type         string
	TotalLines   uint64
	DroppedLines uint64
	StartTime    time.Time
	LastLineTime time.Time
	Details      map[string]any
}
