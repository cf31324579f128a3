package filter

import "strings"

// Engine decides whether a posting is relevant to the interest profile.
// Matching is case-insensitive substring over title+description. Exclusion
// terms dominate: any hit rejects the posting regardless of inclusions.
// Otherwise at least one inclusion term must be present; the inclusion set
// is not optional.
type Engine struct {
	include []string
	exclude []string
}

// NewEngine lowercases both keyword sets once at construction.
func NewEngine(include, exclude []string) *Engine {
	return &Engine{
		include: lowerAll(include),
		exclude: lowerAll(exclude),
	}
}

// Relevant reports whether a posting with the given title and description
// passes the keyword policy.
func (e *Engine) Relevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)

	for _, kw := range e.exclude {
		if strings.Contains(text, kw) {
			return false
		}
	}

	for _, kw := range e.include {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
