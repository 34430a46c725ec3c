// FILE: wescoco/src/internal/sink/console.go
package sink

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"wescoco/src/internal/core"

	"github.com/lixenwraith/log"
)

// ConsoleSink writes rendered lines to stderr. The passthrough stream is
// fixed to stderr so it never interleaves with the tool's own diagnostics,
// which go to stdout or a file.
type ConsoleSink struct {
	input     chan core.LogEntry
	output    io.Writer
	done      chan struct{}
	drained   chan struct{}
	drainOnce sync.Once
	startTime time.Time
	logger    *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewConsoleSink creates a new stderr console sink
func NewConsoleSink(options map[string]any, logger *log.Logger) (*ConsoleSink, error) {
	bufferSize := int64(1000)
	if bufSize, ok := options["buffer_size"].(int64); ok && bufSize > 0 {
		bufferSize = bufSize
	}

	s := &ConsoleSink{
		input:     make(chan core.LogEntry, bufferSize),
		output:    os.Stderr,
		done:      make(chan struct{}),
		drained:   make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
	}
	s.lastProcessed.Store(time.Time{})

	return s, nil
}

func (s *ConsoleSink) Input() chan<- core.LogEntry {
	return s.input
}

func (s *ConsoleSink) Start(ctx context.Context) error {
	go s.processLoop(ctx)
	s.logger.Info("msg", "Console sink started",
		"component", "console_sink",
		"target", "stderr")
	return nil
}

func (s *ConsoleSink) Stop() {
	close(s.done)
	s.logger.Info("msg", "Console sink stopped", "component", "console_sink")
}

func (s *ConsoleSink) Done() <-chan struct{} {
	return s.drained
}

func (s *ConsoleSink) GetStats() SinkStats {
	lastProc, _ := s.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "console",
		TotalProcessed: s.totalProcessed.Load(),
		StartTime:      s.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"target": "stderr",
		},
	}
}

func (s *ConsoleSink) processLoop(ctx context.Context) {
	defer s.drainOnce.Do(func() { close(s.drained) })

	for {
		select {
		case entry, ok := <-s.input:
			if !ok {
				return
			}

			s.totalProcessed.Add(1)
			s.lastProcessed.Store(time.Now())

			// One write per line; stderr is unbuffered so the line is
			// visible to the operator immediately.
			s.output.Write(append([]byte(entry.Message), '\n'))

		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}
