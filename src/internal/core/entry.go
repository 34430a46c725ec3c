// FILE: wescoco/src/internal/core/entry.go
package core

import "time"

// Represents a single line flowing through the pipeline. Message carries the
// raw line on the way in from a source and the rendered line on the way out
// to a sink; Level is filled in once the line has been classified.
type LogEntry struct {
	Time    time.Time
	Source  string
	Level   string
	Message string
	RawSize int64
}
