package adapter

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

// NaukriAdapter reads the Naukri job-feed RSS. The feed is fetched through
// the shared HTTP helper (not gofeed's own client) so that non-2xx statuses
// degrade to an empty contribution the same way the page adapters do.
type NaukriAdapter struct {
	cfg    config.FeedSourceConfig
	client *http.Client
	parser *gofeed.Parser
}

var _ model.SourceAdapter = (*NaukriAdapter)(nil)

// NewNaukriAdapter creates the adapter for the configured feed URL.
func NewNaukriAdapter(cfg config.FeedSourceConfig, client *http.Client) *NaukriAdapter {
	return &NaukriAdapter{cfg: cfg, client: client, parser: gofeed.NewParser()}
}

func (a *NaukriAdapter) Name() string { return "naukri" }

// Fetch downloads and parses the feed; each entry yields one candidate.
// Absent entry fields fall back to empty strings.
func (a *NaukriAdapter) Fetch(ctx context.Context) ([]model.RawCandidate, error) {
	body, err := fetchBytes(ctx, a.client, a.Name(), a.cfg.FeedURL)
	if err != nil {
		return nil, err
	}

	feed, err := a.parser.ParseString(string(body))
	if err != nil {
		return nil, &model.ParseError{Source: a.Name(), Err: err}
	}

	out := make([]model.RawCandidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		out = append(out, model.RawCandidate{
			Source:      a.Name(),
			Title:       collapse(item.Title),
			Description: item.Description,
			Link:        item.Link,
			PostedAt:    item.Published,
		})
	}

	return out, nil
}
