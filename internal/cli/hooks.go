package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rg089/plotex/pkg/observability"
)

// logHooks reports chart, cache and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ChartHooks = (*logHooks)(nil)
	_ observability.CacheHooks = (*logHooks)(nil)
	_ observability.HTTPHooks  = (*logHooks)(nil)
)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnSaveStart(_ context.Context, format string) {
	h.logger.Debug("Rendering figure", "format", format)
}

func (h *logHooks) OnSaveComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Rendering failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered figure", "format", format, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("Cache hit", "key", key)
}

func (h *logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("Cache miss", "key", key)
}

func (h *logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("Cached", "key", key, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("HTTP response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}
