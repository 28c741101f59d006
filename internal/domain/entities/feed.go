package entities

// FeedItem is one entry of the remote news feed. The first item returned
// by the feed is the most recent one.
type FeedItem struct {
	Teaser string `json:"teaser"`
	Title  string `json:"title,omitempty"`
	Link   string `json:"link,omitempty"`
}
