package extract

import (
	"regexp"
	"strings"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
)

// Mention is one article sentence referencing a player.
type Mention struct {
	Text         string `json:"text"`
	ArticleTitle string `json:"article_title"`
	ArticleLink  string `json:"article_link"`
}

// PlayerInfo aggregates everything recovered about one player.
type PlayerInfo struct {
	Name     string            `json:"name"`
	Stats    map[string]string `json:"stats"`
	Mentions []Mention         `json:"mentions"`
}

// SpursPlayers is the roster searched for in article text. Entries that are
// nicknames rather than full names are listed in playerNicknames instead of
// feeding the last-name map.
var SpursPlayers = []string{
	"Victor Wembanyama", "Wemby", "Devin Vassell", "Jeremy Sochan",
	"Keldon Johnson", "Tre Jones", "Julian Champagnie", "Zach Collins",
	"Malaki Branham", "Blake Wesley", "Sandro Mamukelashvili", "Dominick Barlow",
	"Charles Bassey", "Harrison Barnes", "Stephon Castle", "Chris Paul", "CP3",
}

var playerNicknames = map[string]bool{"Wemby": true, "CP3": true}

// nameVariation maps an alternate search term (last name or nickname) to the
// player's full name. Ordered so scans stay deterministic.
type nameVariation struct {
	term     string
	fullName string
}

func buildNameVariations() []nameVariation {
	var variations []nameVariation
	for _, player := range SpursPlayers {
		if playerNicknames[player] {
			continue
		}
		parts := strings.Fields(player)
		if len(parts) >= 2 {
			variations = append(variations, nameVariation{term: parts[len(parts)-1], fullName: player})
		}
	}
	variations = append(variations,
		nameVariation{term: "Wemby", fullName: "Victor Wembanyama"},
		nameVariation{term: "CP3", fullName: "Chris Paul"},
	)
	return variations
}

var nameVariations = buildNameVariations()

// wordBoundaryRe compiles a case-insensitive whole-word pattern for term.
func wordBoundaryRe(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// IndexPlayers scans articles for roster mentions. A player found by full
// name in an article is not re-indexed there under a last name or nickname.
func IndexPlayers(articles []blog.Article) map[string]*PlayerInfo {
	players := make(map[string]*PlayerInfo)

	for _, article := range articles {
		text := article.Body()
		if text == "" {
			continue
		}

		found := make(map[string]bool)

		for _, player := range SpursPlayers {
			if playerNicknames[player] {
				continue
			}
			if wordBoundaryRe(player).MatchString(text) {
				recordMentions(players, player, player, text, article)
				found[player] = true
			}
		}

		for _, variation := range nameVariations {
			if found[variation.fullName] {
				continue
			}
			if wordBoundaryRe(variation.term).MatchString(text) {
				recordMentions(players, variation.fullName, variation.term, text, article)
				found[variation.fullName] = true
			}
		}
	}

	return players
}

// recordMentions collects every sentence of text containing term under the
// player's full name.
func recordMentions(players map[string]*PlayerInfo, player, term, text string, article blog.Article) {
	info := players[player]
	if info == nil {
		info = &PlayerInfo{Name: player, Stats: map[string]string{}}
		players[player] = info
	}

	re := wordBoundaryRe(term)
	for _, sentence := range splitSentences(text) {
		if re.MatchString(sentence) {
			info.Mentions = append(info.Mentions, Mention{
				Text:         strings.TrimSpace(sentence),
				ArticleTitle: article.Title,
				ArticleLink:  article.Link,
			})
		}
	}
}

// splitSentences breaks text after ./!/? followed by whitespace, keeping the
// terminator with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n' || runes[i+1] == '\r' {
				sentences = append(sentences, string(runes[start:i+1]))
				j := i + 1
				for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\n' || runes[j] == '\r') {
					j++
				}
				start = j
				i = j - 1
			}
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
