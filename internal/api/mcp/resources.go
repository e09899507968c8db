package mcp

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	latestArticlesURI    = "articles://latest"
	articleByIDTemplate  = "articles://{article_id}"
	recentResultsURI     = "gameresults://recent"
	playersListURI       = "players://list"
	latestArticlesLimit  = 10
	recentResultsLimit   = 5
	articleByIDURIPrefix = "articles://"
)

// slugRe collapses a title into a simplified article id.
var slugRe = regexp.MustCompile(`[^a-z0-9]`)

func latestArticlesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "latest_articles",
		Description: "The latest articles from Pounding The Rock.",
		MIMEType:    "text/plain",
		URI:         latestArticlesURI,
	}
}

func (s *Server) latestArticlesHandler(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	articles, err := s.svc.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	var sb strings.Builder
	for i, article := range articles {
		if i == latestArticlesLimit {
			break
		}
		fmt.Fprintf(&sb, "Title: %s\nPublished: %s\nLink: %s\nSummary: %s\n-------------------\n",
			article.Title, article.Published, article.Link, article.Description)
	}

	return textResource(latestArticlesURI, sb.String()), nil
}

func articleByIDResource() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "article_by_id",
		Description: "A specific article by its ID. URI format: articles://{article_id}",
		MIMEType:    "text/plain",
		URITemplate: articleByIDTemplate,
	}
}

func (s *Server) articleByIDHandler(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if req == nil || req.Params == nil || req.Params.URI == "" {
		return nil, fmt.Errorf("article ID is required; use URI format %s", articleByIDTemplate)
	}
	uri := req.Params.URI
	articleID := strings.TrimPrefix(uri, articleByIDURIPrefix)

	articles, err := s.svc.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	for _, article := range articles {
		slug := slugRe.ReplaceAllString(strings.ToLower(article.Title), "-")
		if slug == articleID || strings.HasSuffix(article.GUID, articleID) {
			body := article.Body()
			text := fmt.Sprintf("Title: %s\nPublished: %s\nLink: %s\nContent: %s\n",
				article.Title, article.Published, article.Link, body)
			return textResource(uri, text), nil
		}
	}

	return textResource(uri, fmt.Sprintf("Article with ID %s not found.", articleID)), nil
}

func recentGameResultsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "recent_game_results",
		Description: "Recent Spurs game results extracted from blog articles.",
		MIMEType:    "text/plain",
		URI:         recentResultsURI,
	}
}

func (s *Server) recentGameResultsHandler(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	results, err := s.svc.GameResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract game results: %w", err)
	}

	if len(results) == 0 {
		return textResource(recentResultsURI, "No recent game results found."), nil
	}

	var sb strings.Builder
	for i, game := range results {
		if i == recentResultsLimit {
			break
		}
		fmt.Fprintf(&sb, "Date: %s\nMatchup: Spurs vs %s\nResult: %s\nScore: %s\nLocation: %s\n-------------------\n",
			game.Date, game.Opponent, game.Result, game.Score, game.Location)
	}

	return textResource(recentResultsURI, sb.String()), nil
}

func playersListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "players_list",
		Description: "Spurs players mentioned in recent articles.",
		MIMEType:    "text/plain",
		URI:         playersListURI,
	}
}

func (s *Server) playersListHandler(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	players, err := s.svc.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("index players: %w", err)
	}

	names := make([]string, 0, len(players))
	for name := range players {
		names = append(names, name)
	}
	sort.Strings(names)

	return textResource(playersListURI, "Spurs players mentioned in recent articles:\n"+strings.Join(names, "\n")), nil
}

func textResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		},
	}
}
