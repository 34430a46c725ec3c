// FILE: wescoco/src/internal/source/stdin.go
package source

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wescoco/src/internal/core"

	"github.com/lixenwraith/log"
)

// Reads lines from standard input. Every line is published, including empty
// ones: the downstream stages must see the stream exactly as the producer
// wrote it. Subscriber channels are closed when the upstream pipe closes, so
// the pipeline can drain and the process can exit on EOF.
type StdinSource struct {
	reader        io.Reader
	subscribers   []chan core.LogEntry
	done          chan struct{}
	closeSubsOnce sync.Once
	totalLines    atomic.Uint64
	droppedLines  atomic.Uint64
	bufferSize    int64
	startTime     time.Time
	lastLineTime  atomic.Value // time.Time
	logger        *log.Logger
}

func NewStdinSource(options map[string]any, logger *log.Logger) (*StdinSource, error) {
	bufferSize := int64(1000) // default
	if bufSize, ok := options["buffer_size"].(int64); ok && bufSize > 0 {
		bufferSize = bufSize
	}

	source := &StdinSource{
		reader:      os.Stdin,
		bufferSize:  bufferSize,
		subscribers: make([]chan core.LogEntry, 0),
		done:        make(chan struct{}),
		logger:      logger,
		startTime:   time.Now(),
	}
	source.lastLineTime.Store(time.Time{})
	return source, nil
}

func (s *StdinSource) Subscribe() <-chan core.LogEntry {
	ch := make(chan core.LogEntry, s.bufferSize)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *StdinSource) Start() error {
	go s.readLoop()
	s.logger.Info("msg", "Stdin source started", "component", "stdin_source")
	return nil
}

func (s *StdinSource) Stop() {
	close(s.done)
	s.logger.Info("msg", "Stdin source stopped", "component", "stdin_source")
}

func (s *StdinSource) GetStats() SourceStats {
	lastLine, _ := s.lastLineTime.Load().(time.Time)

	return SourceStats{
		Type:         "stdin",
		TotalLines:   s.totalLines.Load(),
		DroppedLines: s.droppedLines.Load(),
		StartTime:    s.startTime,
		LastLineTime: lastLine,
		Details:      map[string]any{},
	}
}

func (s *StdinSource) readLoop() {
	// Subscriber channels are closed here and only here: closing from the
	// sending goroutine rules out a send-on-closed-channel race with Stop.
	defer s.closeSubscribers()

	// bufio.Reader instead of bufio.Scanner: a Scanner aborts the whole
	// stream on a line over its buffer cap, and line length is not bounded
	// by the grammar.
	reader := bufio.NewReaderSize(s.reader, 64*1024)
	for {
		select {
		case <-s.done:
			return
		default:
		}

		line, err := reader.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if len(line) > 0 || err == nil {
			entry := core.LogEntry{
				Time:    time.Now(),
				Source:  "stdin",
				Message: line,
				RawSize: int64(len(line)),
			}

			s.publish(entry)
		}

		if err != nil {
			if err != io.EOF {
				s.logger.Error("msg", "Read error on stdin",
					"component", "stdin_source",
					"error", err)
			}
			return
		}
	}
}

func (s *StdinSource) publish(entry core.LogEntry) {
	s.totalLines.Add(1)
	s.lastLineTime.Store(entry.Time)

	// Blocking send: the colorizer must emit every line, so a slow consumer
	// backpressures the read loop instead of dropping. Lines are only
	// abandoned when shutdown interrupts an in-flight send.
	for _, ch := range s.subscribers {
		select {
		case ch <- entry:
		case <-s.done:
			s.droppedLines.Add(1)
			return
		}
	}
}

func (s *StdinSource) closeSubscribers() {
	s.closeSubsOnce.Do(func() {
		for _, ch := range s.subscribers {
			close(ch)
		}
	})
}
