package extract

import (
	"strings"
	"testing"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
)

func TestSearchArticles_SingleWord(t *testing.T) {
	articles := []blog.Article{{
		Title:       "Notebook",
		Description: "Wembanyama dominated.",
	}}

	results := SearchArticles(articles, "wembanyama")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if want := "notebook **wembanyama** dominated."; results[0].Snippet != want {
		t.Errorf("snippet = %q, want %q", results[0].Snippet, want)
	}
}

func TestSearchArticles_WordBoundary(t *testing.T) {
	articles := []blog.Article{{
		Title:       "Notebook",
		Description: "A winning streak is building.",
	}}

	if results := SearchArticles(articles, "win"); len(results) != 0 {
		t.Errorf("got %d results, want 0: winning must not match win", len(results))
	}
}

func TestSearchArticles_PhraseMatch(t *testing.T) {
	articles := []blog.Article{{
		Title:       "Recap",
		Description: "They owned the fourth quarter from the jump.",
	}}

	results := SearchArticles(articles, "fourth quarter")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !strings.Contains(results[0].Snippet, "**fourth quarter**") {
		t.Errorf("snippet %q missing highlighted phrase", results[0].Snippet)
	}
}

func TestSearchArticles_AllWordsFallback(t *testing.T) {
	articles := []blog.Article{{
		Title:       "Recap",
		Description: "The quarter ended badly. A fourth foul changed everything.",
	}}

	results := SearchArticles(articles, "fourth quarter")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if want := "Multiple keyword matches found in article"; results[0].Snippet != want {
		t.Errorf("snippet = %q, want %q", results[0].Snippet, want)
	}
}

func TestSearchArticles_RelevanceOrder(t *testing.T) {
	articles := []blog.Article{
		{Title: "Game notes", Description: "Wembanyama sat out."},
		{Title: "Wembanyama watch", Description: "No news today."},
		{Title: "Practice report", Description: "Wembanyama practiced. Wembanyama spoke after."},
	}

	results := SearchArticles(articles, "wembanyama")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantOrder := []string{"Wembanyama watch", "Practice report", "Game notes"}
	for i, want := range wantOrder {
		if results[i].Article.Title != want {
			t.Errorf("result %d = %q, want %q", i, results[i].Article.Title, want)
		}
	}
}

func TestSearchArticles_LongBodySnippetEllipses(t *testing.T) {
	body := strings.Repeat("padding words here. ", 20) + "Wembanyama took over." + strings.Repeat(" more trailing text", 20)
	articles := []blog.Article{{Title: "Recap", Description: body}}

	results := SearchArticles(articles, "wembanyama")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	snippet := results[0].Snippet
	if !strings.HasPrefix(snippet, "...") || !strings.HasSuffix(snippet, "...") {
		t.Errorf("snippet %q missing ellipses on both sides", snippet)
	}
	if !strings.Contains(snippet, "**wembanyama**") {
		t.Errorf("snippet %q missing highlight", snippet)
	}
}

func TestSearchArticles_NoMatchAndEmptyKeyword(t *testing.T) {
	articles := []blog.Article{{Title: "Recap", Description: "Nothing relevant."}}

	if results := SearchArticles(articles, "zubac"); len(results) != 0 {
		t.Errorf("got %d results for unmatched keyword, want 0", len(results))
	}
	if results := SearchArticles(articles, "   "); results != nil {
		t.Errorf("got %v for blank keyword, want nil", results)
	}
}
