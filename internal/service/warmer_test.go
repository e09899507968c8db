package service

import (
	"context"
	"testing"
	"time"
)

func TestWarmer_WarmsImmediately(t *testing.T) {
	fetcher := &fakeFetcher{articles: recapArticles()}
	svc := New(fetcher, time.Minute, nil, nil)
	warmer := NewWarmer(svc, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		warmer.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for fetcher.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("warmer never fetched")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("warmer did not stop on context cancel")
	}

	// The warmed cache serves without another fetch.
	if _, err := svc.Articles(context.Background()); err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("fetcher called %d times, want 1", got)
	}
}
