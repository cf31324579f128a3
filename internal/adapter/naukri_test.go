package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

const naukriFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Software Engineer Fresher Jobs</title>
    <item>
      <title>Java Developer - Fresher</title>
      <link>https://example.com/job/1</link>
      <description>Entry level Java and MySQL role</description>
      <pubDate>Mon, 02 Feb 2026 09:00:00 +0530</pubDate>
    </item>
    <item>
      <title>React Developer</title>
      <link>https://example.com/job/2</link>
    </item>
  </channel>
</rss>`

func TestNaukriFetch_ParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(naukriFeed))
	}))
	defer srv.Close()

	a := NewNaukriAdapter(config.FeedSourceConfig{FeedURL: srv.URL + "/rss"}, srv.Client())

	raws, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("candidates = %d, want 2", len(raws))
	}

	first := raws[0]
	if first.Title != "Java Developer - Fresher" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Link != "https://example.com/job/1" {
		t.Errorf("link = %q", first.Link)
	}
	if first.Description != "Entry level Java and MySQL role" {
		t.Errorf("description = %q", first.Description)
	}
	if first.PostedAt == "" {
		t.Error("expected published date to be carried through")
	}
	if first.Source != "naukri" {
		t.Errorf("source = %q, want naukri", first.Source)
	}

	// Absent fields fall back to empty strings.
	if raws[1].Description != "" || raws[1].PostedAt != "" {
		t.Errorf("missing fields should be empty, got desc=%q posted=%q", raws[1].Description, raws[1].PostedAt)
	}
}

func TestNaukriFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := NewNaukriAdapter(config.FeedSourceConfig{FeedURL: srv.URL}, srv.Client())

	_, err := a.Fetch(context.Background())
	var fetchErr *model.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *model.FetchError", err)
	}
}

func TestNaukriFetch_MalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml at all"))
	}))
	defer srv.Close()

	a := NewNaukriAdapter(config.FeedSourceConfig{FeedURL: srv.URL}, srv.Client())

	_, err := a.Fetch(context.Background())
	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *model.ParseError", err)
	}
}
