package adapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobsentry/jobsentry/internal/model"
)

// Listing pages serve different (often empty) markup to non-browser agents.
const userAgent = "Mozilla/5.0"

// fetchBytes GETs rawURL with a browser User-Agent and returns the body.
// Network failures and non-2xx statuses come back as *model.FetchError.
func fetchBytes(ctx context.Context, client *http.Client, source, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &model.FetchError{Source: source, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &model.FetchError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.FetchError{Source: source, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.FetchError{Source: source, Err: err}
	}
	return body, nil
}

// fetchDocument fetches rawURL and parses it into a goquery document.
func fetchDocument(ctx context.Context, client *http.Client, source, rawURL string) (*goquery.Document, error) {
	body, err := fetchBytes(ctx, client, source, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &model.ParseError{Source: source, Err: err}
	}
	return doc, nil
}

// resolveLink makes href absolute against base. Already-absolute links and
// unparseable inputs pass through unchanged.
func resolveLink(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// collapse trims and collapses internal whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
