package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
)

const snippetContext = 100

// SearchResult pairs a matching article with a highlighted snippet.
type SearchResult struct {
	Article blog.Article `json:"article"`
	Snippet string       `json:"snippet"`
}

// SearchArticles finds articles containing keyword in title or body.
//
// Multi-word keywords match as an exact phrase first (with a contextual
// snippet), then degrade to all-words-present. Single words match on word
// boundaries. Results are sorted by relevance: title matches first, then by
// occurrence count.
func SearchArticles(articles []blog.Article, keyword string) []SearchResult {
	keywordLower := strings.ToLower(keyword)
	words := strings.Fields(keywordLower)
	if len(words) == 0 {
		return nil
	}

	var results []SearchResult

	for _, article := range articles {
		combined := strings.ToLower(article.Title + " " + article.Body())

		if len(words) > 1 {
			if idx := strings.Index(combined, keywordLower); idx >= 0 {
				snippet := snippetAround(combined, idx, len(keywordLower))
				snippet = strings.ReplaceAll(snippet, keywordLower, "**"+keywordLower+"**")
				results = append(results, SearchResult{Article: article, Snippet: snippet})
			} else if containsAllWords(combined, words) {
				results = append(results, SearchResult{Article: article, Snippet: "Multiple keyword matches found in article"})
			}
			continue
		}

		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		loc := re.FindStringIndex(combined)
		if loc == nil {
			continue
		}
		snippet := snippetAround(combined, loc[0], loc[1]-loc[0])
		snippet = re.ReplaceAllStringFunc(snippet, func(m string) string {
			return "**" + m + "**"
		})
		results = append(results, SearchResult{Article: article, Snippet: snippet})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return relevanceLess(results[j].Article, results[i].Article, keywordLower)
	})

	return results
}

// relevanceLess orders a below b: title matches rank above body-only matches,
// then higher occurrence counts rank first.
func relevanceLess(a, b blog.Article, keywordLower string) bool {
	aTitle := strings.Contains(strings.ToLower(a.Title), keywordLower)
	bTitle := strings.Contains(strings.ToLower(b.Title), keywordLower)
	if aTitle != bTitle {
		return !aTitle
	}
	aCount := countFold(a.Title+" "+a.Body(), keywordLower)
	bCount := countFold(b.Title+" "+b.Body(), keywordLower)
	return aCount < bCount
}

func containsAllWords(text string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

// snippetAround extracts up to snippetContext bytes of context on each side
// of a match, with ellipses when the text continues past the cut.
func snippetAround(text string, start, length int) string {
	from := start - snippetContext
	if from < 0 {
		from = 0
	}
	to := start + length + snippetContext
	if to > len(text) {
		to = len(text)
	}

	snippet := text[from:to]
	if from > 0 {
		snippet = "..." + snippet
	}
	if to < len(text) {
		snippet = snippet + "..."
	}
	return snippet
}
