// Package blog fetches and models articles from the Pounding The Rock feed.
package blog

// Article represents a single blog article from the feed.
//
// Published is kept verbatim in the feed's own format; nothing downstream
// reparses it. Content holds the raw entry body (usually HTML) and Text holds
// the markup-stripped version used by the extraction heuristics.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Published   string `json:"published"`
	GUID        string `json:"guid"`
	Content     string `json:"content,omitempty"`
	Text        string `json:"-"`
}

// Body returns the plain text of the article, falling back to the
// description when the feed entry carried no content.
func (a Article) Body() string {
	if a.Text != "" {
		return a.Text
	}
	return a.Description
}
