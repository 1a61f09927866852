// Package notify is the notification sink: messages meant for the user are
// collected per request and echoed to the diagnostic log.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

type collectorCtxKey struct{}

// Collector accumulates notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	items []domain.Notification
}

// WithCollector returns ctx carrying a new Collector, and the collector.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorCtxKey{}, c), c
}

// CollectorFrom returns the collector carried by ctx, if any.
func CollectorFrom(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(collectorCtxKey{}).(*Collector)
	return c, ok
}

func (c *Collector) add(n domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

// Items returns a copy of the collected notifications in order.
func (c *Collector) Items() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Notifier writes every message to the request logger and, when the context
// carries a Collector, records it there.
type Notifier struct{}

// NewNotifier creates a Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(ctx context.Context, message string, severity domain.Severity) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if severity == domain.SeverityError {
		logger.Warn("Notification", slog.String("message", message), slog.String("severity", string(severity)))
	} else {
		logger.Debug("Notification", slog.String("message", message), slog.String("severity", string(severity)))
	}
	if c, ok := CollectorFrom(ctx); ok {
		c.add(domain.Notification{Message: message, Severity: severity})
	}
}

// Items returns the notifications collected on ctx, or nil.
func Items(ctx context.Context) []domain.Notification {
	if c, ok := CollectorFrom(ctx); ok {
		return c.Items()
	}
	return nil
}
