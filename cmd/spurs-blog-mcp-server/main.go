package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpapi "github.com/akshay23/spurs-blog-mcp-server/internal/api/mcp"
	"github.com/akshay23/spurs-blog-mcp-server/internal/api/rest"
	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
	"github.com/akshay23/spurs-blog-mcp-server/internal/cache"
	"github.com/akshay23/spurs-blog-mcp-server/internal/config"
	"github.com/akshay23/spurs-blog-mcp-server/internal/service"
	"github.com/akshay23/spurs-blog-mcp-server/internal/store"
	"github.com/akshay23/spurs-blog-mcp-server/internal/store/repository"
	"github.com/joho/godotenv"
)

const serviceName = "spurs-blog-mcp-server"

func main() {
	// The MCP transport owns stdout; everything logged goes to stderr.
	log.SetPrefix("[" + serviceName + "] ")

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var filler *blog.ContentFiller
	if cfg.EnableReadability {
		filler = blog.NewContentFiller(cfg.HTTPTimeout)
	}
	fetcher := blog.NewFetcher(cfg.FeedURL, cfg.UserAgent, cfg.HTTPTimeout, filler)

	var snapshots *cache.RedisStore
	if cfg.RedisURL != "" {
		snapshots, err = cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Printf("Redis unavailable, continuing without snapshot persistence: %v", err)
		} else {
			defer snapshots.Close()
			log.Println("✓ Connected to Redis")
		}
	}

	var archive service.Archiver
	if cfg.PostgresDSN != "" {
		db, err := store.NewDatabase(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.Fatalf("Failed to migrate archive schema: %v", err)
		}
		archive = repository.NewResultsRepository(db)
		log.Println("✓ Connected to Postgres archive")
	}

	svc := service.New(fetcher, cfg.CacheTTL, snapshots, archive)

	if cfg.EnableWarmer {
		go service.NewWarmer(svc, cfg.CacheTTL).Start(ctx)
		log.Println("✓ Cache warmer started")
	}

	var restServer *rest.Server
	if cfg.EnableREST {
		restServer = rest.NewServer(cfg.RESTPort, svc)
		go func() {
			log.Printf("✓ REST API listening on :%s", cfg.RESTPort)
			if err := restServer.Start(); err != nil {
				log.Printf("REST server error: %v", err)
			}
		}()
	}

	log.Printf("✓ %s serving MCP on stdio", serviceName)
	if err := mcpapi.New(svc).Serve(ctx); err != nil {
		log.Fatalf("Failed to serve MCP: %v", err)
	}

	if restServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := restServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("REST server shutdown error: %v", err)
		}
	}

	log.Printf("%s stopped", serviceName)
}
