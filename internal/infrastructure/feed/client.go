package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"feedskill/internal/domain"
	"feedskill/internal/domain/entities"
	"feedskill/internal/ports/output"
)

const (
	// DefaultURL is the news feed endpoint the skill reads from.
	DefaultURL = "https://mmetting-xjgjgwu35npdekfvycwbkama-demos-dev.mbaas2.tom.redhatmobile.com/feeds"

	// Upper bound for a single request, independent of the caller's deadline.
	httpTimeout = 10 * time.Second

	maxFeedResponseSize = 1 << 20
)

var _ output.FeedFetcher = (*Client)(nil)

type feedResponse struct {
	Data []entities.FeedItem `json:"data"`
}

// Client performs a single GET against the feed endpoint per call.
// There is no retry and no caching.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(url string, log *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		log: log,
	}
}

// FetchFeeds returns the feed items in the order the endpoint lists them.
func (c *Client) FetchFeeds(ctx context.Context) ([]entities.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrFeedFetch, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("feed request failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("feed endpoint returned error status", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrFeedFetch, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedResponseSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrFeedFetch, err)
	}

	c.log.Debug("feeds fetched", "count", len(payload.Data), "items", payload.Data)
	return payload.Data, nil
}
