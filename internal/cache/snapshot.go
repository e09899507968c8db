// Package cache provides the time-boxed snapshot cache in front of the feed.
package cache

import (
	"context"
	"sync"
	"time"
)

// Snapshot pairs a cached value with the time it was fetched.
type Snapshot[T any] struct {
	Value     T
	FetchedAt time.Time
}

// Fresh reports whether the snapshot is still inside the ttl window at now.
func (s Snapshot[T]) Fresh(ttl time.Duration, now time.Time) bool {
	return !s.FetchedAt.IsZero() && now.Sub(s.FetchedAt) < ttl
}

// Loader caches the result of an expensive fetch for a fixed window.
//
// At most one fetch is in flight at a time: concurrent callers arriving while
// a fetch runs block on it and reuse its result instead of issuing their own.
// If a refresh fails and a previous snapshot exists, the stale snapshot is
// served rather than the error.
type Loader[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	snap     *Snapshot[T]
	inflight chan struct{}
	err      error
}

// NewLoader creates a loader with the given freshness window.
func NewLoader[T any](ttl time.Duration) *Loader[T] {
	return &Loader[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value, fetching via fetch when the snapshot is
// missing or stale.
func (l *Loader[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	l.mu.Lock()

	if l.snap != nil && l.snap.Fresh(l.ttl, l.now()) {
		value := l.snap.Value
		l.mu.Unlock()
		return value, nil
	}

	if l.inflight != nil {
		// A fetch is already running; wait for it and reuse its result.
		done := l.inflight
		l.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
		return l.current()
	}

	done := make(chan struct{})
	l.inflight = done
	l.mu.Unlock()

	value, err := fetch(ctx)

	l.mu.Lock()
	if err == nil {
		l.snap = &Snapshot[T]{Value: value, FetchedAt: l.now()}
		l.err = nil
	} else {
		l.err = err
	}
	l.inflight = nil
	l.mu.Unlock()
	close(done)

	return l.current()
}

// Peek returns the current snapshot without triggering a fetch.
func (l *Loader[T]) Peek() (Snapshot[T], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.snap == nil {
		return Snapshot[T]{}, false
	}
	return *l.snap, true
}

// Prime seeds the loader with a previously persisted snapshot.
func (l *Loader[T]) Prime(value T, fetchedAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snap = &Snapshot[T]{Value: value, FetchedAt: fetchedAt}
}

// current resolves what a caller should see after a fetch settles: the
// snapshot if any exists (fresh or stale), otherwise the fetch error.
func (l *Loader[T]) current() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.snap != nil {
		return l.snap.Value, nil
	}
	var zero T
	return zero, l.err
}
