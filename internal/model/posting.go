package model

import "context"

// Category is the track a posting is classified into. Every posting gets
// exactly one category; there is no "unknown".
type Category string

const (
	CategoryFullTime   Category = "full-time"
	CategoryInternship Category = "internship"
)

// RawCandidate is the per-source shape a posting has before normalization.
// Adapters produce these; only the normalizer consumes them.
type RawCandidate struct {
	Source      string // adapter name
	Title       string
	Company     string // may be empty when the source has no per-item company
	Location    string
	Description string // free-form summary text, empty for bare listing pages
	Link        string // absolute URL (adapters resolve relative hrefs)
	PostedAt    string // raw posted-date string, empty when unknown
}

// Posting is the canonical job record flowing through the pipeline.
// Title and Company are never empty; the normalizer drops violators.
type Posting struct {
	Source    string
	Company   string
	Title     string
	Location  string
	SkillTags []string
	Link      string
	PostedAt  string // "Recent" when the source gave no date
	Category  Category
}

// SourceAdapter translates one external site or feed into raw candidates.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context) ([]RawCandidate, error)
}

// Notifier delivers one rendered payload to one channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, text string) error
}
