package blog

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	// DefaultFeedURL is the Pounding The Rock Atom feed.
	DefaultFeedURL = "https://www.poundingtherock.com/rss/current.xml"
	// DefaultUserAgent identifies this service to the blog.
	DefaultUserAgent = "spurs-blog-assistant/1.0"

	descriptionRunes = 200
)

// Fetcher retrieves and parses the blog feed into Article records.
type Fetcher struct {
	feedURL   string
	userAgent string
	parser    *gofeed.Parser
	filler    *ContentFiller
}

// NewFetcher creates a feed fetcher with the given HTTP timeout. A nil filler
// disables full-content extraction for entries without a body.
func NewFetcher(feedURL, userAgent string, timeout time.Duration, filler *ContentFiller) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &Fetcher{
		feedURL:   feedURL,
		userAgent: userAgent,
		parser:    parser,
		filler:    filler,
	}
}

// Fetch downloads the feed and returns its articles in feed order.
func (f *Fetcher) Fetch(ctx context.Context) ([]Article, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.feedURL, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		content := item.Content
		if content == "" {
			content = item.Description
		}

		article := Article{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
			GUID:      item.GUID,
			Content:   content,
		}
		if article.GUID == "" {
			article.GUID = item.Link
		}

		article.Text = StripHTML(content)
		article.Description = truncate(article.Text, descriptionRunes)

		articles = append(articles, article)
	}

	if f.filler != nil {
		f.filler.FillMissing(ctx, articles)
	}

	log.Printf("Fetched feed, found %d articles", len(articles))
	return articles, nil
}

// truncate shortens text to at most n runes, appending an ellipsis when cut.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
