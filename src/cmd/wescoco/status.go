// FILE: wescoco/src/cmd/wescoco/status.go
package main

import (
	"context"
	"time"

	"wescoco/src/internal/pipeline"
)

// Periodically logs pipeline statistics
func statusReporter(ctx context.Context, p *pipeline.Pipeline, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := p.GetStats()
			logger.Debug("msg", "Status report",
				"component", "status_reporter",
				"total_processed", stats["total_processed"],
				"classified", stats["classified"],
				"banner_matched", stats["banner_matched"],
				"passed_through", stats["passed_through"],
				"by_severity", stats["by_severity"])
		}
	}
}
