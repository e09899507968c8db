package blog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	readability "github.com/go-shiori/go-readability"
)

func TestNewContentFillerDefaults(t *testing.T) {
	filler := NewContentFiller(2 * time.Second)
	if filler.extract == nil {
		t.Fatal("default page extractor not wired")
	}
	if filler.timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", filler.timeout)
	}
}

func TestContentFillerFillMissing(t *testing.T) {
	var mu sync.Mutex
	fetched := map[string]bool{}

	filler := NewContentFiller(time.Second)
	filler.extract = func(url string, _ time.Duration) (readability.Article, error) {
		mu.Lock()
		fetched[url] = true
		mu.Unlock()
		return readability.Article{
			Content:     "<p>full body</p>",
			TextContent: "full body",
		}, nil
	}

	articles := []Article{
		{Title: "Has content", Link: "https://example.com/a", Content: "<p>present</p>", Text: "present"},
		{Title: "Missing content", Link: "https://example.com/b"},
		{Title: "No link"},
	}

	filler.FillMissing(context.Background(), articles)

	if fetched["https://example.com/a"] {
		t.Error("article with content must not be refetched")
	}
	if !fetched["https://example.com/b"] {
		t.Error("article without content was not fetched")
	}
	if articles[1].Text != "full body" || articles[1].Content != "<p>full body</p>" {
		t.Errorf("article not filled: %+v", articles[1])
	}
	if articles[1].Description != "full body" {
		t.Errorf("description = %q", articles[1].Description)
	}
	if articles[0].Text != "present" {
		t.Errorf("existing article mutated: %+v", articles[0])
	}
}

func TestContentFillerFillMissing_ExtractError(t *testing.T) {
	filler := NewContentFiller(time.Second)
	filler.extract = func(string, time.Duration) (readability.Article, error) {
		return readability.Article{}, errors.New("page gone")
	}

	articles := []Article{{Title: "Missing content", Link: "https://example.com/b"}}
	filler.FillMissing(context.Background(), articles)

	if articles[0].Content != "" || articles[0].Text != "" {
		t.Errorf("failed extraction must leave the article empty: %+v", articles[0])
	}
}
