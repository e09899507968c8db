package extract

import (
	"fmt"
	"strings"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
)

const (
	ResultWin  = "Win"
	ResultLoss = "Loss"

	// ScoreNotFound is the sentinel score string when no numeric score was
	// recovered for an otherwise qualifying article.
	ScoreNotFound = "Score not found"
)

// GameResult is the structured record assembled from one recap article.
// Immutable after creation; a fresh extraction pass replaces the whole
// collection rather than updating records in place.
type GameResult struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Result   string `json:"result"`
	Location string `json:"location"`
}

// recapKeywords gate which articles even enter extraction. False positives
// are fine, the assembler drops records with nothing recovered.
var recapKeywords = []string{
	"recap", "final score", "defeat", "win", "lose", "loss", "fall", "beat",
	"game thread", "vs", "versus", "against", "victory", "down", "outlast",
}

// IsRecap reports whether a title looks like a game recap.
func IsRecap(title string) bool {
	titleLower := strings.ToLower(title)
	for _, keyword := range recapKeywords {
		if strings.Contains(titleLower, keyword) {
			return true
		}
	}
	return false
}

// Extract runs the full pipeline over articles in order and returns one
// GameResult per qualifying article, preserving relative order. The pipeline
// is pure: identical input yields an identical result sequence, and it is
// safe for concurrent callers.
func Extract(articles []blog.Article) []GameResult {
	results := []GameResult{}

	for _, article := range articles {
		if !IsRecap(article.Title) {
			continue
		}

		body := article.Body()
		if body == "" {
			continue
		}

		// Title appended for extra signal.
		text := body + " " + article.Title

		var opponent, score, result string

		if match, ok := MatchScore(text); ok {
			opponent = match.Opponent
			score = fmt.Sprintf("%s %d, %s %d", OwnTeam, match.OwnScore, opponent, match.OpponentScore)
			// Ties land on Loss under this comparison; kept as-is, see the
			// tie test before changing.
			if match.OwnScore > match.OpponentScore {
				result = ResultWin
			} else {
				result = ResultLoss
			}
		} else {
			inf := InferFallback(text)
			opponent = inf.Opponent
			result = inf.Result
		}

		location := ResolveLocation(text, opponent)

		// An opponent alone is not enough to claim a game happened.
		if result == "" && score == "" {
			continue
		}

		results = append(results, GameResult{
			Date:     article.Published,
			Opponent: orSentinel(opponent, Unknown),
			Score:    orSentinel(score, ScoreNotFound),
			Result:   orSentinel(result, Unknown),
			Location: orSentinel(location, Unknown),
		})
	}

	return results
}

func orSentinel(value, sentinel string) string {
	if value == "" {
		return sentinel
	}
	return value
}
