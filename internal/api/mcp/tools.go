package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/akshay23/spurs-blog-mcp-server/internal/extract"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PlayerInfoInput is the input for the get_player_info tool.
type PlayerInfoInput struct {
	PlayerName string `json:"player_name" jsonschema:"name of the Spurs player to get information about"`
}

// SearchArticlesInput is the input for the search_articles tool.
type SearchArticlesInput struct {
	Keyword string `json:"keyword" jsonschema:"the keyword to search for in article titles and content"`
}

func playerInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_player_info",
		Description: "Get information about a specific Spurs player including stats and recent mentions.",
	}
}

func (s *Server) playerInfoHandler(ctx context.Context, _ *mcp.CallToolRequest, input PlayerInfoInput) (*mcp.CallToolResult, any, error) {
	players, err := s.svc.Players(ctx)
	if err != nil {
		return errorResult(fmt.Sprintf("Error fetching blog articles: %v", err)), nil, nil
	}

	var matched *extract.PlayerInfo
	for name, info := range players {
		if strings.EqualFold(name, input.PlayerName) {
			matched = info
			break
		}
	}

	if matched == nil {
		return textResult(fmt.Sprintf("Player '%s' not found in recent articles. Try another player name.", input.PlayerName)), nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Player: %s\n\nStats:\n", matched.Name)

	statKeys := make([]string, 0, len(matched.Stats))
	for key := range matched.Stats {
		statKeys = append(statKeys, key)
	}
	sort.Strings(statKeys)
	for _, key := range statKeys {
		fmt.Fprintf(&sb, "%s: %s\n", key, matched.Stats[key])
	}

	sb.WriteString("\nRecent Mentions:")
	for i, mention := range matched.Mentions {
		if i == 5 {
			break
		}
		fmt.Fprintf(&sb, "\n%d. %q - %s", i+1, mention.Text, mention.ArticleTitle)
	}

	return textResult(sb.String()), nil, nil
}

func recentResultsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_recent_results",
		Description: "Get recent San Antonio Spurs game results from articles.",
	}
}

func (s *Server) recentResultsHandler(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	articles, err := s.svc.Articles(ctx)
	if err != nil {
		return errorResult(fmt.Sprintf("Error fetching blog articles: %v", err)), nil, nil
	}
	if len(articles) == 0 {
		return textResult("No blog articles found."), nil, nil
	}

	results, err := s.svc.GameResults(ctx)
	if err != nil {
		return errorResult(fmt.Sprintf("Error extracting game results: %v", err)), nil, nil
	}
	if len(results) == 0 {
		return textResult("No recent game results found in the blog articles."), nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Recent Spurs Game Results:\n")
	for i, game := range results {
		fmt.Fprintf(&sb, "\nGame %d:\nDate: %s\nOpponent: %s\nResult: %s\nScore: %s\nLocation: %s\n-------------------\n",
			i+1, game.Date, game.Opponent, game.Result, game.Score, game.Location)
	}

	return textResult(sb.String()), nil, nil
}

func searchArticlesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_articles",
		Description: "Search for articles containing a specific keyword.",
	}
}

func (s *Server) searchArticlesHandler(ctx context.Context, _ *mcp.CallToolRequest, input SearchArticlesInput) (*mcp.CallToolResult, any, error) {
	matches, err := s.svc.Search(ctx, input.Keyword)
	if err != nil {
		return errorResult(fmt.Sprintf("Error fetching blog articles: %v", err)), nil, nil
	}

	if len(matches) == 0 {
		return textResult(fmt.Sprintf("No articles found containing the keyword '%s'.", input.Keyword)), nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d articles containing '%s':\n", len(matches), input.Keyword)
	for _, match := range matches {
		fmt.Fprintf(&sb, "\nTitle: %s\nPublished: %s\nLink: %s\nSnippet: %s\n-------------------\n",
			match.Article.Title, match.Article.Published, match.Article.Link, match.Snippet)
	}

	return textResult(sb.String()), nil, nil
}
