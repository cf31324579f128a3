package adapter

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

// WellfoundAdapter scrapes the Wellfound startup-jobs listing page. The page
// has no stable per-item company or link markup, so candidates carry the
// listing text as title and link back to the listing page itself; company
// and location come from source-level defaults during normalization.
type WellfoundAdapter struct {
	cfg    config.PageSourceConfig
	client *http.Client
}

var _ model.SourceAdapter = (*WellfoundAdapter)(nil)

// NewWellfoundAdapter creates the adapter for the configured listing URL.
func NewWellfoundAdapter(cfg config.PageSourceConfig, client *http.Client) *WellfoundAdapter {
	return &WellfoundAdapter{cfg: cfg, client: client}
}

func (a *WellfoundAdapter) Name() string { return "wellfound" }

// Fetch downloads the listing page and extracts one candidate per listing block.
func (a *WellfoundAdapter) Fetch(ctx context.Context) ([]model.RawCandidate, error) {
	doc, err := fetchDocument(ctx, a.client, a.Name(), a.cfg.URL)
	if err != nil {
		return nil, err
	}

	var out []model.RawCandidate
	// CSS-module class names carry a build hash suffix; match on the prefix.
	doc.Find("div[class^='styles_jobListing']").Each(func(_ int, listing *goquery.Selection) {
		title := collapse(listing.Text())
		if title == "" {
			return
		}

		out = append(out, model.RawCandidate{
			Source: a.Name(),
			Title:  title,
			Link:   a.cfg.URL,
		})
	})

	return out, nil
}
