package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultNewsDays = 7

func playerComparisonPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "generate_player_comparison",
		Description: "Create a prompt to compare two Spurs players.",
		Arguments: []*mcp.PromptArgument{
			{Name: "player1", Description: "First player to compare", Required: true},
			{Name: "player2", Description: "Second player to compare", Required: true},
		},
	}
}

func playerComparisonHandler(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	player1 := promptArgument(req, "player1")
	player2 := promptArgument(req, "player2")

	text := fmt.Sprintf(`Please compare the following San Antonio Spurs players based on their recent performances, stats, and mentions in articles:

Player 1: %s
Player 2: %s

Consider their:
- Statistical production
- Impact on winning
- Role on the team
- Recent trends in performance
- Media and fan perceptions
`, player1, player2)

	return promptResult(text), nil
}

func teamNewsPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "generate_team_news_request",
		Description: "Create a prompt to request recent Spurs news.",
		Arguments: []*mcp.PromptArgument{
			{Name: "days", Description: "Number of days of news to summarize (default 7)"},
		},
	}
}

func teamNewsHandler(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	days := defaultNewsDays
	if raw := promptArgument(req, "days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	text := fmt.Sprintf(`Please provide a summary of the most important San Antonio Spurs news and developments from the past %d days. Include:

- Game results and highlights
- Player performances
- Injury updates
- Team trends
- Front office moves
- Upcoming schedule
`, days)

	return promptResult(text), nil
}

func nbaNewsPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "generate_nba_news_request",
		Description: "Create a prompt to request related NBA news from the official NBA website.",
	}
}

func nbaNewsHandler(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text := `Please use the NBA official website to find the latest news related to:

1. San Antonio Spurs standings in the Western Conference
2. Upcoming games on the Spurs schedule
3. Any league-wide news that affects the Spurs
4. Updates on Victor Wembanyama's season and awards race
5. Trade rumors or roster changes involving the Spurs
`

	return promptResult(text), nil
}

func promptArgument(req *mcp.GetPromptRequest, name string) string {
	if req == nil || req.Params == nil {
		return ""
	}
	return req.Params.Arguments[name]
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
