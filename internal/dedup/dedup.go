// Package dedup collapses repeated postings across sources.
package dedup

import "github.com/jobsentry/jobsentry/internal/model"

// Key identifies a posting across sources. Comparison is case-sensitive
// over the normalized company and title.
type Key struct {
	Company string
	Title   string
}

// Dedupe returns postings with at most one entry per (company, title) key.
// Single stable pass: the first occurrence wins and input order is kept, so
// earlier sources take priority on collisions.
func Dedupe(postings []model.Posting) []model.Posting {
	seen := make(map[Key]struct{}, len(postings))
	out := make([]model.Posting, 0, len(postings))
	for _, p := range postings {
		k := Key{Company: p.Company, Title: p.Title}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}
