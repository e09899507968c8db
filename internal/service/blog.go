// Package service wires the feed fetcher, snapshot cache, and extraction
// heuristics into the operations the API surfaces call.
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
	"github.com/akshay23/spurs-blog-mcp-server/internal/cache"
	"github.com/akshay23/spurs-blog-mcp-server/internal/extract"
)

const articlesSnapshotKey = "spurs-blog:articles"

// FeedFetcher retrieves the article list from the blog feed.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]blog.Article, error)
}

// Archiver persists an extraction pass. Implementations must tolerate being
// called with the same results repeatedly.
type Archiver interface {
	SaveResults(ctx context.Context, results []extract.GameResult) error
}

// Blog serves articles and everything derived from them. Derived collections
// are recomputed from scratch whenever the underlying article snapshot
// changes; nothing is updated in place.
type Blog struct {
	fetcher   FeedFetcher
	articles  *cache.Loader[[]blog.Article]
	snapshots *cache.RedisStore
	archive   Archiver
	ttl       time.Duration

	mu        sync.Mutex
	derivedAt time.Time
	results   []extract.GameResult
	players   map[string]*extract.PlayerInfo
}

// New creates the blog service. snapshots and archive may be nil.
func New(fetcher FeedFetcher, ttl time.Duration, snapshots *cache.RedisStore, archive Archiver) *Blog {
	s := &Blog{
		fetcher:   fetcher,
		articles:  cache.NewLoader[[]blog.Article](ttl),
		snapshots: snapshots,
		archive:   archive,
		ttl:       ttl,
	}

	if snapshots != nil {
		var persisted []blog.Article
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		fetchedAt, found, err := snapshots.Load(ctx, articlesSnapshotKey, &persisted)
		if err != nil {
			log.Printf("load persisted article snapshot: %v", err)
		} else if found {
			s.articles.Prime(persisted, fetchedAt)
			log.Printf("Primed article cache from Redis (%d articles)", len(persisted))
		}
	}

	return s
}

// Articles returns the cached article list, refreshing it from the feed when
// the snapshot is stale. Concurrent callers share a single fetch.
func (s *Blog) Articles(ctx context.Context) ([]blog.Article, error) {
	return s.articles.Get(ctx, func(ctx context.Context) ([]blog.Article, error) {
		articles, err := s.fetcher.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		if s.snapshots != nil {
			if err := s.snapshots.Save(ctx, articlesSnapshotKey, articles, time.Now(), s.ttl); err != nil {
				log.Printf("persist article snapshot: %v", err)
			}
		}
		return articles, nil
	})
}

// GameResults returns the game results extracted from the current article
// snapshot.
func (s *Blog) GameResults(ctx context.Context) ([]extract.GameResult, error) {
	articles, err := s.Articles(ctx)
	if err != nil {
		return nil, err
	}
	results, _ := s.derive(ctx, articles)
	return results, nil
}

// Players returns the player mention index for the current article snapshot.
func (s *Blog) Players(ctx context.Context) (map[string]*extract.PlayerInfo, error) {
	articles, err := s.Articles(ctx)
	if err != nil {
		return nil, err
	}
	_, players := s.derive(ctx, articles)
	return players, nil
}

// Search runs a keyword search over the current article snapshot.
func (s *Blog) Search(ctx context.Context, keyword string) ([]extract.SearchResult, error) {
	articles, err := s.Articles(ctx)
	if err != nil {
		return nil, err
	}
	return extract.SearchArticles(articles, keyword), nil
}

// derive recomputes the result and player collections when the article
// snapshot has changed since the last pass, replacing both wholesale.
func (s *Blog) derive(ctx context.Context, articles []blog.Article) ([]extract.GameResult, map[string]*extract.PlayerInfo) {
	snap, ok := s.articles.Peek()
	fetchedAt := time.Now()
	if ok {
		fetchedAt = snap.FetchedAt
	}

	s.mu.Lock()
	if fetchedAt.Equal(s.derivedAt) && s.results != nil {
		results, players := s.results, s.players
		s.mu.Unlock()
		return results, players
	}
	s.mu.Unlock()

	results := extract.Extract(articles)
	players := extract.IndexPlayers(articles)

	s.mu.Lock()
	s.derivedAt = fetchedAt
	s.results = results
	s.players = players
	s.mu.Unlock()

	if s.archive != nil && len(results) > 0 {
		if err := s.archive.SaveResults(ctx, results); err != nil {
			log.Printf("archive game results: %v", err)
		}
	}

	return results, players
}
