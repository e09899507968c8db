package service

import (
	"context"
	"log"
	"time"
)

// Warmer refreshes the article cache on an interval so interactive callers
// rarely pay for a feed fetch themselves.
type Warmer struct {
	svc      *Blog
	interval time.Duration
}

// NewWarmer creates a warmer that refreshes every interval.
func NewWarmer(svc *Blog, interval time.Duration) *Warmer {
	return &Warmer{svc: svc, interval: interval}
}

// Start warms the cache immediately and then on every tick until the context
// ends. Refresh failures are logged; the stale snapshot keeps serving.
func (w *Warmer) Start(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Warmer) refresh(ctx context.Context) {
	if _, err := w.svc.Articles(ctx); err != nil {
		log.Printf("cache warm failed: %v", err)
	}
}
