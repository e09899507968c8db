package extract

import (
	"regexp"
	"strings"
)

const (
	LocationHome = "Home"
	LocationAway = "Away"
)

// locationPatterns is scanned in order; the first match decides. Whether a
// match means Home or Away is classified afterwards by homePhrases.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:played|playing|game)\s+at\s+home`),
	regexp.MustCompile(`(?i)(?:played|playing|game)\s+on\s+the\s+road`),
	regexp.MustCompile(`(?i)in\s+San\s+Antonio`),
	regexp.MustCompile(`(?i)at\s+the\s+(?:AT&T|Frost\s+Bank)\s+Center`),
	regexp.MustCompile(`(?i)away\s+game`),
	regexp.MustCompile(`(?i)host(?:s|ing|ed)\s+the`),
	regexp.MustCompile(`(?i)visit(?:s|ing|ed)\s+the`),
}

var homePhrases = []string{"at home", "in san antonio", "at the", "host"}

// ResolveLocation infers Home/Away from phrase patterns, falling back to
// schedule "@" notation when an opponent is known. Unmatched text resolves
// to Unknown.
func ResolveLocation(text, opponent string) string {
	for _, pattern := range locationPatterns {
		matched := pattern.FindString(text)
		if matched == "" {
			continue
		}
		matchedLower := strings.ToLower(matched)
		for _, phrase := range homePhrases {
			if strings.Contains(matchedLower, phrase) {
				return LocationHome
			}
		}
		return LocationAway
	}

	if opponent != "" && opponent != Unknown {
		escaped := regexp.QuoteMeta(opponent)
		awayRe := regexp.MustCompile(`(?i)(?:Spurs|San Antonio)\s+@\s+` + escaped)
		homeRe := regexp.MustCompile(`(?i)` + escaped + `\s+@\s+(?:Spurs|San Antonio)`)
		if awayRe.MatchString(text) {
			return LocationAway
		}
		if homeRe.MatchString(text) {
			return LocationHome
		}
	}

	return Unknown
}
