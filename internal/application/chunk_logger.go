package application

import (
	"log/slog"

	"github.com/hailam/largefile/internal/ports"
)

// chunkLogger logs every written chunk at Debug and forwards to next, if any.
type chunkLogger struct {
	next   ports.ProgressReporter
	logger *slog.Logger
}

func (c *chunkLogger) Start(total int64) {
	if c.next != nil {
		c.next.Start(total)
	}
}

func (c *chunkLogger) Advance(done, total int64) {
	c.logger.Debug("chunk written", "chunk", done, "of", total)
	if c.next != nil {
		c.next.Advance(done, total)
	}
}

func (c *chunkLogger) Stop() {
	if c.next != nil {
		c.next.Stop()
	}
}
