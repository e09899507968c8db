package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ScoreMatch is the result of a successful score pattern match.
type ScoreMatch struct {
	OwnScore      int
	OpponentScore int
	// OpponentRaw is the token as captured from the text.
	OpponentRaw string
	// Opponent is the normalized canonical team name.
	Opponent string
	// Strategy names the pattern that produced the match.
	Strategy string
}

// scoreStrategy is one named pattern matcher in the cascade. Each returns
// (match, true) on success; extraction failures (including unparseable
// captures) report false so the cascade falls through.
type scoreStrategy struct {
	name    string
	re      *regexp.Regexp
	extract func(groups []string, text string) (ScoreMatch, bool)
}

var (
	// "Spurs 120, Lakers 110" or "Lakers 110, Spurs 120".
	directScoreRe = regexp.MustCompile(`(?i)(?:Spurs|San Antonio)\s+(\d+)[,\s]+(\w+(?:\s+\w+)?)\s+(\d+)|(\w+(?:\s+\w+)?)\s+(\d+)[,\s]+(?:Spurs|San Antonio)\s+(\d+)`)

	// "Final Score: Clippers 122-117 Spurs" or "Final Score: Spurs 117-122 Clippers".
	finalScoreRe = regexp.MustCompile(`(?i)final\s+score:?\s+(?:(\w+(?:\s+\w+)?)\s+(\d+)[-–]\s*(\d+)\s+(?:Spurs|San Antonio)|(?:Spurs|San Antonio)\s+(\d+)[-–]\s*(\d+)\s+(\w+(?:\s+\w+)?))`)

	// "Clippers to a 122-117 win over the Spurs". This form only ever encodes
	// an opponent win, so the first number is always the opponent's.
	winStatementRe = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)?)\s+to\s+a\s+(\d+)[-–]\s*(\d+)\s+win\s+(?:\w+\s+){0,2}(?:over|against)\s+(?:the\s+)?(?:Spurs|San Antonio)`)

	// "Spurs vs. Clippers: 117-122" or "Clippers vs. Spurs: 122-117".
	titleScoreRe = regexp.MustCompile(`(?i)(?:Spurs|San Antonio)\s+(?:vs\.?|versus|@|at)\s+(\w+(?:\s+\w+)?)[^0-9]*(\d+)[-–]\s*(\d+)|(\w+(?:\s+\w+)?)\s+(?:vs\.?|versus|@|at)\s+(?:Spurs|San Antonio)[^0-9]*(\d+)[-–]\s*(\d+)`)
)

// scoreStrategies is evaluated in order with early termination. The order is
// a tie-break policy; a later pattern never overrides an earlier match.
var scoreStrategies = []scoreStrategy{
	{name: "direct-score", re: directScoreRe, extract: extractDirectScore},
	{name: "final-score", re: finalScoreRe, extract: extractFinalScore},
	{name: "win-statement", re: winStatementRe, extract: extractWinStatement},
	{name: "title-score", re: titleScoreRe, extract: extractTitleScore},
}

// MatchScore tries the score pattern cascade against text (plain article body
// with the title appended) and returns the first match.
func MatchScore(text string) (ScoreMatch, bool) {
	for _, strategy := range scoreStrategies {
		groups := strategy.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		match, ok := strategy.extract(groups, text)
		if !ok {
			continue
		}
		match.Strategy = strategy.name
		match.Opponent = NormalizeTeam(match.OpponentRaw)
		return match, true
	}
	return ScoreMatch{}, false
}

func extractDirectScore(groups []string, _ string) (ScoreMatch, bool) {
	if groups[1] != "" {
		// "Spurs 120, Lakers 110"
		own, err1 := strconv.Atoi(groups[1])
		opp, err2 := strconv.Atoi(groups[3])
		if err1 != nil || err2 != nil {
			return ScoreMatch{}, false
		}
		return ScoreMatch{OwnScore: own, OpponentScore: opp, OpponentRaw: strings.TrimSpace(groups[2])}, true
	}
	// "Lakers 110, Spurs 120"
	opp, err1 := strconv.Atoi(groups[5])
	own, err2 := strconv.Atoi(groups[6])
	if err1 != nil || err2 != nil {
		return ScoreMatch{}, false
	}
	return ScoreMatch{OwnScore: own, OpponentScore: opp, OpponentRaw: strings.TrimSpace(groups[4])}, true
}

func extractFinalScore(groups []string, _ string) (ScoreMatch, bool) {
	if groups[1] != "" {
		// "Final Score: Clippers 122-117 Spurs"
		opp, err1 := strconv.Atoi(groups[2])
		own, err2 := strconv.Atoi(groups[3])
		if err1 != nil || err2 != nil {
			return ScoreMatch{}, false
		}
		return ScoreMatch{OwnScore: own, OpponentScore: opp, OpponentRaw: strings.TrimSpace(groups[1])}, true
	}
	// "Final Score: Spurs 117-122 Clippers"
	own, err1 := strconv.Atoi(groups[4])
	opp, err2 := strconv.Atoi(groups[5])
	if err1 != nil || err2 != nil {
		return ScoreMatch{}, false
	}
	return ScoreMatch{OwnScore: own, OpponentScore: opp, OpponentRaw: strings.TrimSpace(groups[6])}, true
}

func extractWinStatement(groups []string, _ string) (ScoreMatch, bool) {
	opp, err1 := strconv.Atoi(groups[2])
	own, err2 := strconv.Atoi(groups[3])
	if err1 != nil || err2 != nil {
		return ScoreMatch{}, false
	}
	return ScoreMatch{OwnScore: own, OpponentScore: opp, OpponentRaw: strings.TrimSpace(groups[1])}, true
}

// extractTitleScore handles "Team vs Team ... N-M" fragments. When the text
// contains an explicit "spurs win"/"spurs loss" phrase the larger or smaller
// number goes to the Spurs accordingly. Without one, the forward branch
// assigns the first number to the Spurs while the mirrored branch assigns it
// to the opponent. The asymmetry is inherited behavior kept on purpose; see
// the matching test before touching either branch.
func extractTitleScore(groups []string, text string) (ScoreMatch, bool) {
	textLower := strings.ToLower(text)
	spursWin := strings.Contains(textLower, "win") && strings.Contains(textLower, "spurs win")
	spursLoss := strings.Contains(textLower, "loss") && strings.Contains(textLower, "spurs loss")

	if groups[1] != "" {
		// "Spurs vs. Clippers: 117-122"
		first, err1 := strconv.Atoi(groups[2])
		second, err2 := strconv.Atoi(groups[3])
		if err1 != nil || err2 != nil {
			return ScoreMatch{}, false
		}
		match := ScoreMatch{OpponentRaw: strings.TrimSpace(groups[1])}
		switch {
		case spursWin:
			match.OwnScore, match.OpponentScore = maxInt(first, second), minInt(first, second)
		case spursLoss:
			match.OwnScore, match.OpponentScore = minInt(first, second), maxInt(first, second)
		default:
			match.OwnScore, match.OpponentScore = first, second
		}
		return match, true
	}

	// "Clippers vs. Spurs: 122-117"
	first, err1 := strconv.Atoi(groups[5])
	second, err2 := strconv.Atoi(groups[6])
	if err1 != nil || err2 != nil {
		return ScoreMatch{}, false
	}
	match := ScoreMatch{OpponentRaw: strings.TrimSpace(groups[4])}
	switch {
	case spursWin:
		match.OwnScore, match.OpponentScore = maxInt(first, second), minInt(first, second)
	case spursLoss:
		match.OwnScore, match.OpponentScore = minInt(first, second), maxInt(first, second)
	default:
		match.OpponentScore, match.OwnScore = first, second
	}
	return match, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
