package output

import (
	"context"

	"feedskill/internal/domain/entities"
)

// FeedFetcher retrieves the current list of news feed items.
// The returned list may be empty; errors wrap domain.ErrFeedFetch.
type FeedFetcher interface {
	FetchFeeds(ctx context.Context) ([]entities.FeedItem, error)
}
