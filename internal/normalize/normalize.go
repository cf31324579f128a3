// Package normalize converts per-source raw candidates into canonical
// postings, applying source-level constant fill-ins and dropping records
// that would violate the non-empty title/company invariant.
package normalize

import (
	"strings"

	"github.com/jobsentry/jobsentry/internal/model"
)

// UnknownDate is the sentinel used when a source provides no posted date.
const UnknownDate = "Recent"

// Defaults are the source-level constants filled into postings when the
// source provides no per-item value.
type Defaults struct {
	Company   string
	Location  string
	SkillTags []string
}

// Normalizer is a pure converter; it holds only per-source defaults.
type Normalizer struct {
	defaults map[string]Defaults
}

// New builds a normalizer keyed by adapter name.
func New(defaults map[string]Defaults) *Normalizer {
	return &Normalizer{defaults: defaults}
}

// Normalize converts raw into a canonical posting. ok is false when the
// record is invalid (empty title or company after fill-ins); such records
// must be dropped, never passed downstream with blank fields.
func (n *Normalizer) Normalize(raw model.RawCandidate) (model.Posting, bool) {
	d := n.defaults[raw.Source]

	title := collapse(raw.Title)
	company := collapse(raw.Company)
	if company == "" {
		company = d.Company
	}
	location := collapse(raw.Location)
	if location == "" {
		location = d.Location
	}
	posted := strings.TrimSpace(raw.PostedAt)
	if posted == "" {
		posted = UnknownDate
	}

	if title == "" || company == "" {
		return model.Posting{}, false
	}

	return model.Posting{
		Source:    raw.Source,
		Company:   company,
		Title:     title,
		Location:  location,
		SkillTags: d.SkillTags,
		Link:      strings.TrimSpace(raw.Link),
		PostedAt:  posted,
	}, true
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
