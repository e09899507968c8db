package blog

import (
	"context"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const fillWorkers = 5

// ContentFiller fetches full article pages for feed entries that arrived
// without a body, extracting readable text from the page itself.
type ContentFiller struct {
	timeout time.Duration
	extract func(url string, timeout time.Duration) (readability.Article, error)
}

// NewContentFiller creates a filler with the given per-page timeout.
func NewContentFiller(timeout time.Duration) *ContentFiller {
	return &ContentFiller{
		timeout: timeout,
		extract: func(url string, timeout time.Duration) (readability.Article, error) {
			return readability.FromURL(url, timeout)
		},
	}
}

// FillMissing populates Content/Text for articles whose feed entry had no
// body, using a small worker pool. Extraction failures are logged and the
// article is left empty; downstream extraction skips empty articles.
func (cf *ContentFiller) FillMissing(ctx context.Context, articles []Article) {
	indexes := make(chan int, len(articles))
	var wg sync.WaitGroup

	for w := 0; w < fillWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					return
				}
				cf.fill(&articles[i])
			}
		}()
	}

	for i := range articles {
		if articles[i].Content == "" && articles[i].Link != "" {
			indexes <- i
		}
	}
	close(indexes)

	wg.Wait()
}

func (cf *ContentFiller) fill(article *Article) {
	page, err := cf.extract(article.Link, cf.timeout)
	if err != nil {
		log.Printf("readability extraction failed for %s: %v", article.Link, err)
		return
	}

	article.Content = page.Content
	article.Text = page.TextContent
	article.Description = truncate(article.Text, descriptionRunes)
}
