// Package revalidate delivers "this cached page is stale" signals to the
// page cache layer in front of the site.
package revalidate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventboard/internal/domain"
)

// DefaultTimeout bounds a single delivery when none is configured.
const DefaultTimeout = 5 * time.Second

// Hook is a fire-and-forget domain.Revalidator. Each Invalidate call is
// delivered to the sink on its own goroutine; failures are logged and counted,
// never reported to the caller.
type Hook struct {
	name    string
	sink    domain.PageInvalidator
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewHook returns a Hook delivering to sink. name labels metrics and logs.
func NewHook(name string, sink domain.PageInvalidator, timeout time.Duration, logger *slog.Logger) *Hook {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Hook{name: name, sink: sink, timeout: timeout, logger: logger}
}

// Invalidate schedules delivery of path and returns immediately. Signals
// arriving after Close are dropped.
func (h *Hook) Invalidate(path string) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		invalidationsTotal.WithLabelValues(h.name, resultDropped).Inc()
		h.logger.Warn("revalidation dropped after shutdown", "sink", h.name, "path", path)
		return
	}
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		h.deliver(path)
	}()
}

func (h *Hook) deliver(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	start := time.Now()
	err := h.sink.InvalidatePath(ctx, path)
	invalidationDuration.WithLabelValues(h.name).Observe(time.Since(start).Seconds())
	if err != nil {
		invalidationsTotal.WithLabelValues(h.name, resultFailed).Inc()
		h.logger.Error("revalidation failed", "sink", h.name, "path", path, "err", err)
		return
	}
	invalidationsTotal.WithLabelValues(h.name, resultDelivered).Inc()
	h.logger.Debug("page revalidated", "sink", h.name, "path", path)
}

// Close stops accepting signals and waits for in-flight deliveries or ctx.
func (h *Hook) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
