package models

// NewsArticle is one result from the external news search service. Field
// names mirror the upstream response.
type NewsArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	PubDate     string `json:"pubDate,omitempty"`
	SourceID    string `json:"source_id,omitempty"`
}
