package adapter

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

// LinkedInAdapter scrapes the public LinkedIn job search page. Each result
// card yields one raw candidate; cards missing required sub-elements are
// skipped rather than failing the page.
type LinkedInAdapter struct {
	cfg    config.PageSourceConfig
	client *http.Client
}

var _ model.SourceAdapter = (*LinkedInAdapter)(nil)

// NewLinkedInAdapter creates the adapter for the configured search URL.
func NewLinkedInAdapter(cfg config.PageSourceConfig, client *http.Client) *LinkedInAdapter {
	return &LinkedInAdapter{cfg: cfg, client: client}
}

func (a *LinkedInAdapter) Name() string { return "linkedin" }

// Fetch downloads the search page and extracts one candidate per result card.
func (a *LinkedInAdapter) Fetch(ctx context.Context) ([]model.RawCandidate, error) {
	doc, err := fetchDocument(ctx, a.client, a.Name(), a.cfg.URL)
	if err != nil {
		return nil, err
	}

	var out []model.RawCandidate
	doc.Find("div.base-card").Each(func(_ int, card *goquery.Selection) {
		title := collapse(card.Find("h3").First().Text())
		company := collapse(card.Find("h4").First().Text())
		location := collapse(card.Find(".job-search-card__location").First().Text())
		href, ok := card.Find("a").First().Attr("href")

		if title == "" || !ok {
			// Card markup changed or is a promo tile; skip just this item.
			return
		}

		out = append(out, model.RawCandidate{
			Source:   a.Name(),
			Title:    title,
			Company:  company,
			Location: location,
			Link:     resolveLink(a.cfg.URL, href),
		})
	})

	return out, nil
}
