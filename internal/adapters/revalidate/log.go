package revalidate

import (
	"context"
	"log/slog"
)

// LogSink only records the stale path. It is the default when no cache layer
// is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) InvalidatePath(ctx context.Context, path string) error {
	s.logger.InfoContext(ctx, "page invalidated", "path", path)
	return nil
}
