package extract

import (
	"regexp"
	"strings"
)

// Inference holds what the keyword fallback could recover when no score
// pattern matched. Empty fields mean the fact stayed unresolved.
type Inference struct {
	Opponent string
	Result   string
}

// vsOpponentRe pulls the non-Spurs side out of a generic matchup phrase.
var vsOpponentRe = regexp.MustCompile(`(?i)(?:Spurs|San Antonio)\s+(?:vs\.?|versus|against|at|@)\s+(\w+(?:\s+\w+)?)|(\w+(?:\s+\w+)?)\s+(?:vs\.?|versus|against|at|@)\s+(?:Spurs|San Antonio)`)

var spursWinIndicators = []string{
	"spurs win", "spurs defeat", "spurs beat", "spurs down",
	"san antonio win", "san antonio defeat", "san antonio beat",
}

var spursLossIndicators = []string{
	"spurs lose", "spurs fall", "spurs lost", "defeated by",
	"beaten by", "fall to", "lose to", "win over spurs",
	"victory over spurs", "over the spurs",
}

// InferFallback scans text for an opponent and a win/loss signal when the
// score cascade found nothing. Each opponent step short-circuits on its first
// hit; the result keyword scan runs independently of opponent resolution.
func InferFallback(text string) Inference {
	var inf Inference

	// Registry-order team name scan.
	for _, team := range NBATeams {
		if team != OwnTeam && containsFold(text, team) {
			inf.Opponent = team
			break
		}
	}

	// City scan, with mention counting for the two-team Los Angeles case.
	if inf.Opponent == "" {
		for _, tc := range TeamCities {
			if tc.City == OwnCity || !containsFold(text, tc.City) {
				continue
			}
			inf.Opponent = pickCityTeam(text, tc.Teams)
			break
		}
	}

	// Generic "vs/at" syntax.
	if inf.Opponent == "" {
		if groups := vsOpponentRe.FindStringSubmatch(text); groups != nil {
			raw := groups[1]
			if raw == "" {
				raw = groups[2]
			}
			if raw != "" {
				inf.Opponent = NormalizeTeam(strings.TrimSpace(raw))
			}
		}
	}

	textLower := strings.ToLower(text)
	for _, indicator := range spursWinIndicators {
		if strings.Contains(textLower, indicator) {
			inf.Result = ResultWin
			break
		}
	}
	if inf.Result == "" {
		for _, indicator := range spursLossIndicators {
			if strings.Contains(textLower, indicator) {
				inf.Result = ResultLoss
				break
			}
		}
	}

	return inf
}

// pickCityTeam resolves a city hit to a team. For a multi-team city: if every
// team is mentioned, the one with the most mentions wins (ties break toward
// list order); if only some are mentioned, the first mentioned wins; if none
// are, the list default wins.
func pickCityTeam(text string, teams []string) string {
	if len(teams) == 1 {
		return teams[0]
	}

	mentioned := 0
	for _, team := range teams {
		if containsFold(text, team) {
			mentioned++
		}
	}

	switch {
	case mentioned == len(teams):
		best := teams[0]
		bestCount := countFold(text, best)
		for _, team := range teams[1:] {
			if count := countFold(text, team); count > bestCount {
				best, bestCount = team, count
			}
		}
		return best
	case mentioned > 0:
		for _, team := range teams {
			if containsFold(text, team) {
				return team
			}
		}
	}
	return teams[0]
}
