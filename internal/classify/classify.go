// Package classify tags postings as internship-track or full-time based on
// entry-level markers in the title.
package classify

import (
	"strings"

	"github.com/jobsentry/jobsentry/internal/model"
)

// Classifier maps every title to exactly one category.
type Classifier struct {
	markers []string
}

// New lowercases the internship marker set once at construction.
func New(markers []string) *Classifier {
	lowered := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			lowered = append(lowered, m)
		}
	}
	return &Classifier{markers: lowered}
}

// Classify returns CategoryInternship when the lowercased title contains
// any configured marker, CategoryFullTime otherwise.
func (c *Classifier) Classify(title string) model.Category {
	t := strings.ToLower(title)
	for _, m := range c.markers {
		if strings.Contains(t, m) {
			return model.CategoryInternship
		}
	}
	return model.CategoryFullTime
}
