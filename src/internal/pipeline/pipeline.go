// FILE: wescoco/src/internal/pipeline/pipeline.go
// Package pipeline wires the stdin source through the line classifier and
// the banner stage to the console sink. A single consumer goroutine keeps
// output order identical to input order.
package pipeline

import (
	"context"
	"sync/atomic"
	"time"

	"wescoco/src/internal/banner"
	"wescoco/src/internal/colorize"
	"wescoco/src/internal/config"
	"wescoco/src/internal/core"
	"wescoco/src/internal/sink"
	"wescoco/src/internal/source"

	"github.com/lixenwraith/log"
)

// Manages the flow of lines from the source through the stages to the sink
type Pipeline struct {
	source source.Source
	banner *banner.Processor
	sink   sink.Sink
	stats  *Stats
	logger *log.Logger

	sub    <-chan core.LogEntry
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Contains statistics for a pipeline
type Stats struct {
	StartTime      time.Time
	TotalProcessed atomic.Uint64
	Classified     atomic.Uint64
	BannerMatched  atomic.Uint64
	PassedThrough  atomic.Uint64
	severityCounts [5]atomic.Uint64 // indexed by colorize.Severity
}

// New creates a pipeline from configuration. Nothing starts reading until
// Start is called.
func New(cfg *config.Config, logger *log.Logger) (*Pipeline, error) {
	src, err := source.NewStdinSource(map[string]any{
		"buffer_size": cfg.Source.BufferSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	snk, err := sink.NewConsoleSink(map[string]any{
		"buffer_size": cfg.Sink.BufferSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		source: src,
		banner: banner.New(),
		sink:   snk,
		stats:  &Stats{StartTime: time.Now()},
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Start subscribes to the source and begins processing.
func (p *Pipeline) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	// Subscribe before the source starts reading so no line is missed.
	p.sub = p.source.Subscribe()

	if err := p.sink.Start(p.ctx); err != nil {
		return err
	}
	if err := p.source.Start(); err != nil {
		p.sink.Stop()
		return err
	}

	go p.run()
	p.logger.Info("msg", "Pipeline started", "component", "pipeline")
	return nil
}

// Done is closed after the source is drained and the sink has flushed, so
// the caller can exit cleanly when the upstream pipe closes.
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

// Shutdown stops the pipeline without waiting for the source to drain.
func (p *Pipeline) Shutdown() {
	if p.cancel != nil {
		p.cancel()
	}
	p.source.Stop()
	p.sink.Stop()
	p.logger.Info("msg", "Pipeline shut down", "component", "pipeline")
}

func (p *Pipeline) run() {
	defer close(p.done)

	for {
		select {
		case entry, ok := <-p.sub:
			if !ok {
				// Source drained; flush the sink and finish.
				close(p.sink.Input())
				select {
				case <-p.sink.Done():
				case <-p.ctx.Done():
				}
				return
			}

			entry = p.processEntry(entry)

			select {
			case p.sink.Input() <- entry:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// processEntry classifies one line and rewrites Message with the rendered
// form. Lines neither the classifier nor the banner stage recognize pass
// through untouched.
func (p *Pipeline) processEntry(entry core.LogEntry) core.LogEntry {
	p.stats.TotalProcessed.Add(1)

	if fields, ok := colorize.Parse(entry.Message); ok {
		p.stats.Classified.Add(1)
		p.stats.severityCounts[fields.Severity].Add(1)
		entry.Level = fields.Severity.String()
		entry.Message = colorize.Render(fields)
		return entry
	}

	if p.banner.Active() {
		if styled, ok := p.banner.Process(entry.Message); ok {
			p.stats.BannerMatched.Add(1)
			entry.Message = styled
			return entry
		}
	}

	p.stats.PassedThrough.Add(1)
	return entry
}

// GetStats returns a snapshot of pipeline, source and sink statistics.
func (p *Pipeline) GetStats() map[string]any {
	bySeverity := map[string]uint64{}
	for sev := colorize.SeverityUnknown; sev <= colorize.SeverityError; sev++ {
		if n := p.stats.severityCounts[sev].Load(); n > 0 {
			bySeverity[sev.String()] = n
		}
	}

	return map[string]any{
		"start_time":      p.stats.StartTime,
		"total_processed": p.stats.TotalProcessed.Load(),
		"classified":      p.stats.Classified.Load(),
		"banner_matched":  p.stats.BannerMatched.Load(),
		"passed_through":  p.stats.PassedThrough.Load(),
		"by_severity":     bySeverity,
		"source":          p.source.GetStats(),
		"sink":            p.sink.GetStats(),
	}
}
